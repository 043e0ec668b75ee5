package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rentmag/constants"
	"rentmag/models"
	"rentmag/services/logger"
	"rentmag/services/notification"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Family{},
		&models.Member{},
		&models.RoomFamilyHistory{},
		&models.Invoice{},
	))
	return db
}

func newTestLedger() *LedgerService {
	return NewLedgerService(LedgerServiceOptions{
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func newTestFamilyService(db *gorm.DB, notifier notification.Notifier) *FamilyService {
	return NewFamilyService(FamilyServiceOptions{
		DB:       db,
		Logger:   logger.NewDefaultLogger(logger.ErrorLevel),
		Ledger:   newTestLedger(),
		Notifier: notifier,
	})
}

func createTestRoom(t *testing.T, db *gorm.DB, name string, price float64) *models.Room {
	t.Helper()
	room := models.Room{
		Name:   name,
		Price:  price,
		Status: constants.RoomStatusEmpty,
	}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func createTestFamily(t *testing.T, db *gorm.DB, name string) *models.Family {
	t.Helper()
	family := models.Family{
		Name:           name,
		SourceOfIncome: "Employment",
		Status:         constants.FamilyStatusActive,
	}
	require.NoError(t, db.Create(&family).Error)
	return &family
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

// insertStay seeds a history row with explicit timestamps, bypassing the
// ledger, so tests can shape occupancy spans precisely.
func insertStay(t *testing.T, db *gorm.DB, roomID, familyID uint, amount float64, from time.Time, until *time.Time) *models.RoomFamilyHistory {
	t.Helper()
	entry := models.RoomFamilyHistory{
		RoomID:    roomID,
		FamilyID:  familyID,
		Amount:    amount,
		CreatedAt: from,
	}
	if until != nil {
		entry.DeletedAt = gorm.DeletedAt{Time: *until, Valid: true}
	}
	require.NoError(t, db.Create(&entry).Error)
	return &entry
}

func countActiveHistories(t *testing.T, db *gorm.DB, where string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.RoomFamilyHistory{}).Where(where, args...).Count(&count).Error)
	return count
}
