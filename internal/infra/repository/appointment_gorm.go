package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// SQLSTATEs que significam "o intervalo já foi consumido"
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

type AppointmentGormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewAppointmentGormRepository(db *gorm.DB, timeout time.Duration) *AppointmentGormRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AppointmentGormRepository{db: db, timeout: timeout}
}

func (r *AppointmentGormRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// translate converte erro cru do store para a taxonomia do domínio.
// Nada de SQLSTATE escapa desta camada.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation {
			return domain.ErrSlotTaken
		}
	}

	// timeout, conexão caída, e qualquer outra falha do store:
	// repetível do zero, nunca assumido parcialmente aplicado
	return domain.ErrTransient(err)
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uuid.UUID,
) (*models.Barber, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&barber).Error; err != nil {
		return nil, translate(err, "barber")
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&service).Error; err != nil {
		return nil, translate(err, "service")
	}
	return &service, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uuid.UUID,
	weekday int,
) (*models.WorkingHours, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error; err != nil {
		return nil, translate(err, "working_hours")
	}

	return &wh, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment é o ponto único de arbitragem de corrida.
// O insert só é atômico porque a constraint appointments_no_overlap
// rejeita qualquer intervalo sobreposto não-cancelado do mesmo barbeiro.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return translate(err, "appointment")
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, translate(err, "appointment")
	}

	return &ap, nil
}

// UpdateAppointmentStatus condiciona a escrita ao status lido antes da
// validação. Zero linhas afetadas significa que outra transição venceu
// a corrida; a perdedora nunca sobrescreve.
func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(from)).
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
		})
	if res.Error != nil {
		return translate(res.Error, "appointment")
	}

	if res.RowsAffected == 0 {
		return domain.ErrValidation("invalid_state", "O agendamento mudou de estado. Recarregue e tente novamente.")
	}

	return nil
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time", "status").
		Where(
			"barber_id = ? AND status <> 'cancelled' AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, "appointment")
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, "appointment")
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
