package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// memoryRepo reproduz em memória a garantia da constraint de exclusão:
// a sequência checa-e-insere roda sob mutex, então commits concorrentes
// sobre intervalos sobrepostos do mesmo barbeiro aceitam exatamente um.
type memoryRepo struct {
	mu sync.Mutex

	barbers      map[uuid.UUID]models.Barber
	services     map[uuid.UUID]models.Service
	workingHours map[string]models.WorkingHours
	appointments map[uuid.UUID]models.Appointment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		barbers:      make(map[uuid.UUID]models.Barber),
		services:     make(map[uuid.UUID]models.Service),
		workingHours: make(map[string]models.WorkingHours),
		appointments: make(map[uuid.UUID]models.Appointment),
	}
}

func whKey(barberID uuid.UUID, weekday int) string {
	return fmt.Sprintf("%s|%d", barberID, weekday)
}

func (r *memoryRepo) addBarber(name string) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.barbers[id] = models.Barber{ID: id, Name: name, Role: domain.RoleBarber, Active: true}
	return id
}

func (r *memoryRepo) addService(name string, durationMin int, price float64) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.services[id] = models.Service{
		ID: id, Name: name, DurationMin: durationMin, Price: price, Active: true,
	}
	return id
}

func (r *memoryRepo) setWorkingHours(barberID uuid.UUID, weekday int, open, close string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workingHours[whKey(barberID, weekday)] = models.WorkingHours{
		BarberID: barberID, Weekday: weekday,
		OpenTime: open, CloseTime: close, Active: true,
	}
}

// --------------------------------------------------
// domain.Repository
// --------------------------------------------------

func (r *memoryRepo) GetBarber(_ context.Context, id uuid.UUID) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.barbers[id]
	if !ok {
		return nil, domain.ErrNotFound("barber")
	}
	return &b, nil
}

func (r *memoryRepo) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok || !s.Active {
		return nil, domain.ErrNotFound("service")
	}
	return &s, nil
}

func (r *memoryRepo) GetWorkingHours(_ context.Context, barberID uuid.UUID, weekday int) (*models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wh, ok := r.workingHours[whKey(barberID, weekday)]
	if !ok {
		return nil, domain.ErrNotFound("working_hours")
	}
	return &wh, nil
}

func (r *memoryRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.BarberID != ap.BarberID {
			continue
		}
		if !domain.Occupies(domain.Status(existing.Status)) {
			continue
		}
		iv := domain.Interval{Start: existing.StartTime, End: existing.EndTime}
		if iv.Overlaps(ap.StartTime, ap.EndTime) {
			return domain.ErrSlotTaken
		}
	}

	ap.ID = uuid.New()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *memoryRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound("appointment")
	}
	return &ap, nil
}

func (r *memoryRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment, from domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound("appointment")
	}

	// mesma guarda otimista do store real: o status persistido precisa
	// continuar sendo o lido antes da transição
	if existing.Status != string(from) {
		return domain.ErrValidation("invalid_state", "O agendamento mudou de estado. Recarregue e tente novamente.")
	}

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *memoryRepo) ListAppointmentsForDay(
	_ context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !domain.Occupies(domain.Status(ap.Status)) {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	return out, nil
}

func (r *memoryRepo) ListAppointmentsForPeriod(
	_ context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		if ap.ServiceID != nil {
			if svc, ok := r.services[*ap.ServiceID]; ok {
				svcCopy := svc
				ap.Service = &svcCopy
			}
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	return out, nil
}

var _ domain.Repository = (*memoryRepo)(nil)
