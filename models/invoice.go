package models

import (
	"time"
)

type Invoice struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FamilyID  uint      `json:"familyId" gorm:"not null;index"`
	Amount    float64   `json:"amount" gorm:"type:decimal(8,2);not null"`
	StartDate time.Time `json:"startDate" gorm:"not null"`
	EndDate   time.Time `json:"endDate" gorm:"not null"`
	Status    string    `json:"status" gorm:"type:varchar(10);default:PENDING"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Family    *Family   `json:"family,omitempty" gorm:"foreignKey:FamilyID"`
}
