package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	BarberID uuid.UUID `gorm:"type:uuid;index;not null" json:"barber_id"`
	Barber   Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// nulo em bloqueios manuais
	ServiceID *uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Service   *Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	// snapshot do serviço no momento da reserva: edições posteriores
	// não movem end_time nem mudam o faturamento histórico
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
