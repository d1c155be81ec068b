package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/notify"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Identidade sintética dos bloqueios administrativos.
const blockCustomerName = "Bloqueio de agenda"

type CreateBlockInput struct {
	BarberID    uuid.UUID
	Date        string // YYYY-MM-DD
	Time        string // HH:mm
	DurationMin int
}

type CreateBlock struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCreateBlock(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
) *CreateBlock {
	return &CreateBlock{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

// Execute cria o bloqueio pelo MESMO caminho de insert da reserva
// pública: um Appointment com status=blocked e serviço nulo. Assim a
// constraint de exclusão impede bloqueio sobre reserva e vice-versa
// sem segundo código de conflito.
func (uc *CreateBlock) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateBlockInput,
) (*models.Appointment, error) {

	if !actor.CanManage(in.BarberID) {
		return nil, domain.ErrValidation("forbidden", "Sem permissão para esta agenda.")
	}

	if in.DurationMin <= 0 {
		return nil, domain.ErrValidation("invalid_duration", "Duração deve ser positiva.")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, domain.ErrValidation("invalid_date_or_time", "Data ou hora inválida.")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(in.DurationMin) * time.Minute)

	ap := &models.Appointment{
		BarberID:     in.BarberID,
		ServiceID:    nil,
		CustomerName: blockCustomerName,
		StartTime:    start,
		EndTime:      end,
		DurationMin:  in.DurationMin,
		Status:       string(domain.StatusBlocked),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "block_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notify.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		Action:        "blocked",
	})

	return ap, nil
}
