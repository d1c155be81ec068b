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
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicAppointmentInput struct {
	BarberID  uuid.UUID
	ServiceID uuid.UUID

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCreatePublicAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

// Execute é o caminho de commit da reserva. A arbitragem de corrida é
// inteiramente delegada ao insert: sob commits concorrentes sobre o
// mesmo intervalo, o store aceita exatamente um e os demais recebem
// ErrSlotTaken. Nunca sobrescreve, nunca repete em silêncio.
func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validação de entrada (antes de tocar o store)
	// --------------------------------------------------
	if in.CustomerName == "" {
		return nil, domain.ErrValidation("missing_customer_name", "Nome do cliente é obrigatório.")
	}

	if !validators.IsEmailValid(in.CustomerEmail) {
		return nil, domain.ErrValidation("invalid_customer_email", "E-mail do cliente inválido.")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, domain.ErrValidation("invalid_date_or_time", "Data ou hora inválida.")
	}

	if start.Before(timezone.Now()) {
		return nil, domain.ErrValidation("time_in_past", "Não é possível reservar no passado.")
	}

	// --------------------------------------------------
	// 2. Serviço → snapshot de duração e preço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if service.DurationMin <= 0 {
		return nil, domain.ErrValidation("invalid_duration", "Serviço com duração inválida.")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 3. Barbeiro
	// --------------------------------------------------
	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Commit — a constraint de exclusão decide a corrida
	// --------------------------------------------------
	serviceID := service.ID
	ap := &models.Appointment{
		BarberID:      in.BarberID,
		ServiceID:     &serviceID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		StartTime:     start,
		EndTime:       end,
		DurationMin:   service.DurationMin,
		Price:         service.Price,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Auditoria + feed de mudanças (melhor esforço)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notify.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		Action:        "created",
	})

	return ap, nil
}
