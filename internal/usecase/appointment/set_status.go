package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/notify"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type SetStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewSetStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

// Execute aplica uma transição do lado do barbeiro
// (concluir, cancelar, remover bloqueio). Cancelamento devolve o
// intervalo à geração de horários.
func (uc *SetStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uuid.UUID,
	target domain.Status,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(target) {
		return nil, domain.ErrValidation("invalid_status", "Status desconhecido.")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(ap.BarberID) {
		return nil, domain.ErrValidation("forbidden", "Sem permissão para esta agenda.")
	}

	from := domain.Status(ap.Status)

	if err := domain.Transition(ap, target, timezone.Now()); err != nil {
		return nil, err
	}

	// guarda otimista: se outra transição escreveu primeiro, esta falha
	// em vez de sobrescrever
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
		return nil, err
	}

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_" + string(target),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notify.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		Action:        string(target),
	})

	return ap, nil
}
