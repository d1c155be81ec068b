package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AvailabilityInput struct {
	BarberID    uuid.UUID
	Date        time.Time
	DurationMin int
}

// ===============================
// Domain Actions
// ===============================

// Transition aplica a mudança de status validada pela máquina de estados
// e registra o timestamp correspondente.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}
