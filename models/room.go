package models

import (
	"fmt"
	"time"

	"rentmag/constants"

	"gorm.io/gorm"
)

type Room struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Name        string              `json:"name" gorm:"size:255;not null"`
	Description string              `json:"description" gorm:"size:255"`
	Price       float64             `json:"price" gorm:"type:decimal(8,2);not null"`
	Status      string              `json:"status" gorm:"type:varchar(10);default:EMPTY"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`
	Family      *Family             `json:"family,omitempty" gorm:"foreignKey:RoomID"`
	Histories   []RoomFamilyHistory `json:"histories,omitempty" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status != constants.RoomStatusEmpty && r.Status != constants.RoomStatusOccupied {
		return fmt.Errorf("invalid room status: %q", r.Status)
	}
	return nil
}

// IsOccupied reports whether the room currently has an occupying family.
func (r *Room) IsOccupied() bool {
	return r.Status == constants.RoomStatusOccupied
}
