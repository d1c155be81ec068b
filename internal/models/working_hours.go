package models

import (
	"time"

	"github.com/google/uuid"
)

type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_working_hours_barber_weekday" json:"barber_id"`
	Barber   Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday int `gorm:"uniqueIndex:idx_working_hours_barber_weekday" json:"weekday"`

	OpenTime  string `gorm:"size:5" json:"open_time"`  // HH:MM
	CloseTime string `gorm:"size:5" json:"close_time"` // HH:MM
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
