package services

import (
	"context"
	"testing"
	"time"

	"rentmag/constants"
	"rentmag/errors"
	"rentmag/models"
	"rentmag/services/logger"
	"rentmag/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestInvoiceService(db *gorm.DB, recorder *notification.Recorder) *InvoiceService {
	return NewInvoiceService(InvoiceServiceOptions{
		DB:       db,
		Logger:   logger.NewDefaultLogger(logger.ErrorLevel),
		Ledger:   newTestLedger(),
		Notifier: recorder,
	})
}

func TestComputeAmountProratesPartialStay(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	room := createTestRoom(t, db, "Room A", 3000)
	family := createTestFamily(t, db, "Smith")

	// 30-day period, occupied for the first 15 days at 3000 per month.
	periodStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 0, 30)
	insertStay(t, db, room.ID, family.ID, 3000, periodStart, ptrTime(periodStart.AddDate(0, 0, 15)))

	total, lines, err := svc.ComputeAmount(db, family, periodStart, periodEnd)
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, total, 0.001)
	require.Len(t, lines, 1)
	assert.Equal(t, room.ID, lines[0].RoomID)
	assert.InDelta(t, 1500.0, lines[0].Amount, 0.001)
}

func TestComputeAmountFullPeriod(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	room := createTestRoom(t, db, "Room A", 3000)
	family := createTestFamily(t, db, "Smith")

	periodStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 0, 30)
	// Stay started before the period and is still active.
	insertStay(t, db, room.ID, family.ID, 3000, periodStart.AddDate(0, -2, 0), nil)

	total, lines, err := svc.ComputeAmount(db, family, periodStart, periodEnd)
	require.NoError(t, err)
	assert.InDelta(t, 3000.0, total, 0.001)
	require.Len(t, lines, 1)
	// The span is clipped to the period.
	assert.True(t, lines[0].From.Equal(periodStart))
	assert.True(t, lines[0].To.Equal(periodEnd))
}

func TestComputeAmountAdditiveOverSubPeriods(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	room := createTestRoom(t, db, "Room A", 3000)
	family := createTestFamily(t, db, "Smith")

	a := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	b := a.AddDate(0, 0, 11)
	c := a.AddDate(0, 0, 30)
	insertStay(t, db, room.ID, family.ID, 3000, a.AddDate(0, -1, 0), nil)

	whole, _, err := svc.ComputeAmount(db, family, a, c)
	require.NoError(t, err)
	left, _, err := svc.ComputeAmount(db, family, a, b)
	require.NoError(t, err)
	right, _, err := svc.ComputeAmount(db, family, b, c)
	require.NoError(t, err)

	assert.InDelta(t, whole, left+right, 0.001)
}

func TestComputeAmountMultipleStays(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	roomA := createTestRoom(t, db, "Room A", 3000)
	roomB := createTestRoom(t, db, "Room B", 6000)
	family := createTestFamily(t, db, "Smith")

	periodStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 0, 30)

	// 10 days in room A, then 20 days in room B.
	mid := periodStart.AddDate(0, 0, 10)
	insertStay(t, db, roomA.ID, family.ID, 3000, periodStart, ptrTime(mid))
	insertStay(t, db, roomB.ID, family.ID, 6000, mid, nil)

	total, lines, err := svc.ComputeAmount(db, family, periodStart, periodEnd)
	require.NoError(t, err)
	// 3000*10/30 + 6000*20/30 = 1000 + 4000.
	assert.InDelta(t, 5000.0, total, 0.001)
	assert.Len(t, lines, 2)
}

func TestComputeAmountNoHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	family := createTestFamily(t, db, "Smith")

	periodStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	total, lines, err := svc.ComputeAmount(db, family, periodStart, periodStart.AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, lines)
}

func TestGenerateInvoiceIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	room := createTestRoom(t, db, "Room A", 3000)
	family := createTestFamily(t, db, "Smith")

	periodStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)
	insertStay(t, db, room.ID, family.ID, 3000, periodStart, nil)

	first, err := svc.GenerateInvoice(family, periodStart, periodEnd)
	require.NoError(t, err)
	assert.Equal(t, constants.InvoiceStatusPending, first.Status)

	second, err := svc.GenerateInvoice(family, periodStart, periodEnd)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Where("family_id = ?", family.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGenerateMonthlyInvoices(t *testing.T) {
	db := newTestDB(t)
	recorder := &notification.Recorder{}
	svc := newTestInvoiceService(db, recorder)

	roomA := createTestRoom(t, db, "Room A", 3000)
	roomB := createTestRoom(t, db, "Room B", 4500)
	smith := createTestFamily(t, db, "Smith")
	jones := createTestFamily(t, db, "Jones")

	now := time.Date(2026, 6, 18, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	insertStay(t, db, roomA.ID, smith.ID, 3000, monthStart, nil)
	insertStay(t, db, roomB.ID, jones.ID, 4500, monthStart, nil)

	require.NoError(t, svc.GenerateMonthlyInvoices(now))

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	// Invoice mail was submitted once per generated invoice.
	assert.Len(t, recorder.Invoices, 2)

	// A second run of the same cycle creates nothing new.
	require.NoError(t, svc.GenerateMonthlyInvoices(now))
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
	assert.Len(t, recorder.Invoices, 2)
}

func TestUpdateInvoiceStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	family := createTestFamily(t, db, "Smith")
	invoice := models.Invoice{
		FamilyID:  family.ID,
		Amount:    3000,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:    constants.InvoiceStatusPending,
	}
	require.NoError(t, db.Create(&invoice).Error)

	updated, err := svc.UpdateInvoiceStatus(context.Background(), invoice.ID, constants.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, constants.InvoiceStatusPaid, updated.Status)

	// Reverting to PENDING is allowed.
	updated, err = svc.UpdateInvoiceStatus(context.Background(), invoice.ID, constants.InvoiceStatusPending)
	require.NoError(t, err)
	assert.Equal(t, constants.InvoiceStatusPending, updated.Status)
}

func TestUpdateInvoiceStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	_, err := svc.UpdateInvoiceStatus(context.Background(), 999, constants.InvoiceStatusPaid)
	assert.ErrorIs(t, err, errors.ErrInvoiceNotFound)
}

func TestUpdateInvoiceStatusInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := newTestInvoiceService(db, &notification.Recorder{})

	_, err := svc.UpdateInvoiceStatus(context.Background(), 1, "CANCELLED")
	assert.ErrorIs(t, err, errors.ErrInvalidInvoiceStatus)
}
