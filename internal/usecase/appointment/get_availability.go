package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute materializa os inícios reserváveis do dia, em ordem crescente.
// Snapshot: o horário pode ser consumido por outro cliente antes do
// commit — quem decide é a constraint na criação.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]time.Time, error) {

	if in.DurationMin <= 0 {
		return nil, domain.ErrValidation("invalid_duration", "Duração deve ser positiva.")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, err
	}

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil {
		// sem expediente cadastrado ⇒ dia sem disponibilidade
		if domain.IsNotFound(err) {
			return []time.Time{}, nil
		}
		return nil, err
	}

	open, close, ok := domain.WindowOnDate(wh, in.Date)
	if !ok {
		return []time.Time{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	// ocupados: confirmados, concluídos e bloqueios pesam igual
	occupied, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(occupied))
	for _, ap := range occupied {
		busy = append(busy, domain.Interval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	duration := time.Duration(in.DurationMin) * time.Minute

	return domain.BuildSlots(open, close, duration, busy, timezone.Now()), nil
}
