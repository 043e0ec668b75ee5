package models

import (
	"time"

	"gorm.io/gorm"
)

type Family struct {
	ID             uint                `json:"id" gorm:"primaryKey"`
	RoomID         *uint               `json:"roomId"`
	Name           string              `json:"name" gorm:"size:255;not null"`
	SourceOfIncome string              `json:"sourceOfIncome" gorm:"size:255;not null"`
	Status         string              `json:"status" gorm:"type:varchar(10);default:ACTIVE"`
	Amount         float64             `json:"amount" gorm:"type:decimal(8,2);default:0"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`
	Members        []Member            `json:"members,omitempty" gorm:"foreignKey:FamilyID;constraint:OnDelete:CASCADE"`
	Room           *Room               `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Histories      []RoomFamilyHistory `json:"histories,omitempty" gorm:"foreignKey:FamilyID"`
	Invoices       []Invoice           `json:"invoices,omitempty" gorm:"foreignKey:FamilyID"`
}

type Member struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FamilyID  uint      `json:"familyId" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     *string   `json:"email,omitempty" gorm:"size:255"`
	Mobile    *string   `json:"mobile,omitempty" gorm:"size:20"`
	BirthDay  time.Time `json:"birthDay"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
