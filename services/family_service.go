package services

import (
	"time"

	"rentmag/constants"
	"rentmag/dto"
	"rentmag/errors"
	"rentmag/models"
	"rentmag/services/logger"
	"rentmag/services/notification"

	"gorm.io/gorm"
)

// FamilyService owns family lifecycle and room assignment. Every mutating
// operation runs in a single transaction; no partial move is ever visible.
// Concurrent assignments against the same room are resolved by the store's
// isolation, not by in-process locking, so multiple instances behind a load
// balancer stay correct.
type FamilyService struct {
	db       *gorm.DB
	logger   logger.Logger
	ledger   *LedgerService
	notifier notification.Notifier
}

type FamilyServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Ledger   *LedgerService
	Notifier notification.Notifier
}

func NewFamilyService(opts FamilyServiceOptions) *FamilyService {
	return &FamilyService{
		db:       opts.DB,
		logger:   opts.Logger,
		ledger:   opts.Ledger,
		notifier: opts.Notifier,
	}
}

func parseBirthDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func buildFamily(attrs dto.CreateFamilyRequest) (*models.Family, error) {
	family := models.Family{
		Name:           attrs.Name,
		SourceOfIncome: attrs.SourceOfIncome,
		Status:         constants.FamilyStatusActive,
	}
	for _, m := range attrs.MembersList {
		birthDay, err := parseBirthDay(m.BirthDay)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid birthDay: "+m.BirthDay, err)
		}
		family.Members = append(family.Members, models.Member{
			Name:     m.Name,
			Email:    m.Email,
			Mobile:   m.Mobile,
			BirthDay: birthDay,
		})
	}
	return &family, nil
}

// CreateFamily creates a family together with its member list atomically.
func (s *FamilyService) CreateFamily(attrs dto.CreateFamilyRequest) (*models.Family, error) {
	family, err := buildFamily(attrs)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(family).Error; err != nil {
		return nil, err
	}
	return family, nil
}

// AssignRoom gives a roomless family its first room.
func (s *FamilyService) AssignRoom(familyID, roomID uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var family models.Family
	if err := tx.First(&family, familyID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return errors.ErrFamilyNotFound
		}
		return err
	}

	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRoomNotFound
		}
		return err
	}

	if room.IsOccupied() {
		tx.Rollback()
		return errors.ErrRoomOccupied
	}

	if family.RoomID != nil {
		tx.Rollback()
		return errors.ErrFamilyAlreadyAssigned
	}

	if _, err := s.ledger.RecordOccupancy(tx, &room, &family, room.Price); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// ChangeRoom moves a family from its current room to newRoomID. Vacating and
// occupying happen in one transaction so a crash can not leave the two rooms
// inconsistent with the ledger.
func (s *FamilyService) ChangeRoom(familyID, newRoomID uint) (*models.Family, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var family models.Family
	if err := tx.First(&family, familyID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFamilyNotFound
		}
		return nil, err
	}

	if family.RoomID != nil && *family.RoomID == newRoomID {
		tx.Rollback()
		return nil, errors.ErrFamilyAlreadyInRoom
	}

	var newRoom models.Room
	if err := tx.First(&newRoom, newRoomID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, err
	}

	if newRoom.IsOccupied() {
		tx.Rollback()
		return nil, errors.ErrRoomOccupied
	}

	if family.RoomID == nil {
		tx.Rollback()
		return nil, errors.ErrNoActiveOccupancy
	}

	var currentRoom models.Room
	if err := tx.First(&currentRoom, *family.RoomID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := s.ledger.EndOccupancy(tx, &currentRoom, &family); err != nil {
		tx.Rollback()
		return nil, err
	}

	if _, err := s.ledger.RecordOccupancy(tx, &newRoom, &family, newRoom.Price); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.FetchFamily(familyID)
}

// AddFamilyToRoom creates a family with its members and moves it into the
// room in the same transaction. Welcome mail goes out only after commit.
func (s *FamilyService) AddFamilyToRoom(roomID uint, attrs dto.CreateFamilyRequest) (*models.Family, error) {
	family, err := buildFamily(attrs)
	if err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, err
	}

	if room.IsOccupied() {
		tx.Rollback()
		return nil, errors.ErrRoomOccupied
	}

	if err := tx.Create(family).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if _, err := s.ledger.RecordOccupancy(tx, &room, family, room.Price); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	for _, member := range family.Members {
		s.notifier.NotifyWelcome(member)
	}

	return family, nil
}

// FetchFamily loads one family with members, room and invoices.
func (s *FamilyService) FetchFamily(familyID uint) (*models.Family, error) {
	var family models.Family
	err := s.db.
		Preload("Members").
		Preload("Room").
		Preload("Invoices").
		Preload("Histories", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped().Order("created_at DESC")
		}).
		First(&family, familyID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrFamilyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &family, nil
}

// FetchFamilies lists all families with their members.
func (s *FamilyService) FetchFamilies() ([]models.Family, error) {
	var families []models.Family
	if err := s.db.Preload("Members").Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}
