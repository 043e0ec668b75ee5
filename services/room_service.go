package services

import (
	"context"
	"time"

	"rentmag/constants"
	"rentmag/dto"
	"rentmag/errors"
	"rentmag/models"
	"rentmag/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	roomListCacheKey = "rooms:all"
	roomListCacheTTL = 5 * time.Minute
)

type RoomService struct {
	db     *gorm.DB
	logger logger.Logger
	redis  *redis.Client
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Redis  *redis.Client
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	return &RoomService{
		db:     opts.DB,
		logger: opts.Logger,
		redis:  opts.Redis,
	}
}

func (s *RoomService) invalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.redis, roomListCacheKey); err != nil {
		s.logger.Error("failed to invalidate room cache: %v", err)
	}
}

// CreateRoom creates a new empty room.
func (s *RoomService) CreateRoom(ctx context.Context, attrs dto.RoomRequest) (*models.Room, error) {
	room := models.Room{
		Name:        attrs.Name,
		Description: attrs.Description,
		Price:       attrs.Price,
		Status:      constants.RoomStatusEmpty,
	}
	if err := s.db.Create(&room).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return &room, nil
}

// FetchAllRooms lists rooms, serving from the Redis cache when warm.
func (s *RoomService) FetchAllRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room

	if s.redis != nil {
		if err := GetFromRedis(ctx, s.redis, roomListCacheKey, &rooms); err != nil {
			s.logger.Error("failed to read room cache: %v", err)
		} else if len(rooms) > 0 {
			return rooms, nil
		}
	}

	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, err
	}

	if s.redis != nil && len(rooms) > 0 {
		if err := SetToRedis(ctx, s.redis, roomListCacheKey, rooms, roomListCacheTTL); err != nil {
			s.logger.Error("failed to write room cache: %v", err)
		}
	}
	return rooms, nil
}

// FetchRoom loads one room with its occupying family, members and history.
func (s *RoomService) FetchRoom(roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.db.
		Preload("Family.Members").
		Preload("Histories", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped().Order("created_at DESC")
		}).
		First(&room, roomID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoom updates name, description and price. Status stays under ledger
// control.
func (s *RoomService) UpdateRoom(ctx context.Context, roomID uint, attrs dto.RoomRequest) (*models.Room, error) {
	var room models.Room
	err := s.db.First(&room, roomID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	room.Name = attrs.Name
	room.Description = attrs.Description
	room.Price = attrs.Price
	if err := s.db.Save(&room).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return &room, nil
}

// DeleteRoom soft-deletes an empty room; its history stays queryable.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uint) error {
	var room models.Room
	err := s.db.First(&room, roomID).Error
	if err == gorm.ErrRecordNotFound {
		return errors.ErrRoomNotFound
	}
	if err != nil {
		return err
	}

	if room.IsOccupied() {
		return errors.ErrRoomOccupied
	}

	if err := s.db.Delete(&room).Error; err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}
