package services

import (
	"time"

	"rentmag/constants"
	"rentmag/errors"
	"rentmag/models"
	"rentmag/services/logger"

	"gorm.io/gorm"
)

// LedgerService is the single source of truth for which family occupies which
// room and when. Every mutating method takes the caller's transaction handle
// so the three effects of a move (history row, room status, family pointer)
// commit or roll back together.
type LedgerService struct {
	logger logger.Logger
}

type LedgerServiceOptions struct {
	Logger logger.Logger
}

func NewLedgerService(opts LedgerServiceOptions) *LedgerService {
	return &LedgerService{
		logger: opts.Logger,
	}
}

// RecordOccupancy moves family into room at the given rent rate. The room must
// be empty.
func (s *LedgerService) RecordOccupancy(tx *gorm.DB, room *models.Room, family *models.Family, rate float64) (*models.RoomFamilyHistory, error) {
	if room.IsOccupied() {
		return nil, errors.ErrRoomOccupied
	}

	entry := models.RoomFamilyHistory{
		RoomID:   room.ID,
		FamilyID: family.ID,
		Amount:   rate,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}

	room.Status = constants.RoomStatusOccupied
	if err := tx.Save(room).Error; err != nil {
		return nil, err
	}

	family.RoomID = &room.ID
	family.Amount = rate
	if err := tx.Save(family).Error; err != nil {
		return nil, err
	}

	s.logger.Info("family %d moved into room %d at rate %.2f", family.ID, room.ID, rate)
	return &entry, nil
}

// EndOccupancy closes the active stay of family in room. The history row is
// soft-deleted so the stay remains visible to invoicing.
func (s *LedgerService) EndOccupancy(tx *gorm.DB, room *models.Room, family *models.Family) error {
	var entry models.RoomFamilyHistory
	err := tx.Where("room_id = ? AND family_id = ?", room.ID, family.ID).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return errors.ErrNoActiveOccupancy
	}
	if err != nil {
		return err
	}

	if err := tx.Delete(&entry).Error; err != nil {
		return err
	}

	room.Status = constants.RoomStatusEmpty
	if err := tx.Save(room).Error; err != nil {
		return err
	}

	family.RoomID = nil
	if err := tx.Model(family).Update("room_id", nil).Error; err != nil {
		return err
	}

	s.logger.Info("family %d moved out of room %d", family.ID, room.ID)
	return nil
}

// ActiveOccupant returns the family currently occupying room, or nil.
func (s *LedgerService) ActiveOccupant(db *gorm.DB, room *models.Room) (*models.Family, error) {
	var entry models.RoomFamilyHistory
	err := db.Where("room_id = ?", room.ID).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var family models.Family
	if err := db.First(&family, entry.FamilyID).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

// HistoryForFamily returns the family's stays overlapping [from, to], most
// recent first. Zero times disable the range filter. Ended stays are included,
// so the query bypasses the soft-delete scope.
func (s *LedgerService) HistoryForFamily(db *gorm.DB, familyID uint, from, to time.Time) ([]models.RoomFamilyHistory, error) {
	q := db.Unscoped().Where("family_id = ?", familyID)
	if !to.IsZero() {
		q = q.Where("created_at <= ?", to)
	}
	if !from.IsZero() {
		q = q.Where("(deleted_at IS NULL OR deleted_at >= ?)", from)
	}

	var entries []models.RoomFamilyHistory
	if err := q.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
