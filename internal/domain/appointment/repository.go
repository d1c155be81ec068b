package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Repository é o contrato do store consumido pelos use cases.
// Toda chamada carrega timeout; erros chegam já traduzidos para a
// taxonomia do pacote (ErrSlotTaken, NotFoundError, TransientError).
type Repository interface {
	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		barberID uuid.UUID,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Appointment (create / conflict) --------
	//
	// CreateAppointment depende da constraint de exclusão do store:
	// sob commits concorrentes sobre intervalos sobrepostos do mesmo
	// barbeiro, exatamente um insert é aceito; os demais retornam
	// ErrSlotTaken.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (leitura / transição) --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus escreve a transição com guarda otimista:
	// só aplica se o status persistido ainda for `from`. Quem perde a
	// corrida entre leitura e escrita recebe invalid_state em vez de
	// sobrescrever a transição vencedora.
	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	// ListAppointmentsForDay devolve os intervalos ocupados do dia
	// (status ≠ cancelled), ordenados por início.
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// ListAppointmentsForPeriod devolve todos os status, com o
	// serviço carregado, para a agenda.
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
