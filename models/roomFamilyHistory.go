package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomFamilyHistory is one stay of a family in a room. The row is created when
// the family moves in and soft-deleted when it moves out, so an active stay is
// a row whose DeletedAt is not set.
type RoomFamilyHistory struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	RoomID    uint           `json:"roomId" gorm:"not null;index"`
	FamilyID  uint           `json:"familyId" gorm:"not null;index"`
	Amount    float64        `json:"amount" gorm:"type:decimal(8,2);not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
	Room      *Room          `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Family    *Family        `json:"family,omitempty" gorm:"foreignKey:FamilyID"`
}

// OccupancySpan is the domain view of a stay. Active spans have no Until; the
// nullable deleted_at column stays a persistence detail.
type OccupancySpan struct {
	Active bool      `json:"active"`
	Since  time.Time `json:"since"`
	Until  time.Time `json:"until,omitempty"`
}

// Span converts the row's timestamps into an OccupancySpan.
func (h *RoomFamilyHistory) Span() OccupancySpan {
	if !h.DeletedAt.Valid {
		return OccupancySpan{Active: true, Since: h.CreatedAt}
	}
	return OccupancySpan{Since: h.CreatedAt, Until: h.DeletedAt.Time}
}
