package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

// ======================================================
// OUTPUT
// ======================================================

type AgendaItem struct {
	ID            uuid.UUID `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	ServiceName   string    `json:"service_name"`
	Price         float64   `json:"price"`
}

type AgendaSummary struct {
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

// ======================================================
// USE CASE
// ======================================================

// Agenda é leitura derivada, nunca fonte de verdade de ocupação —
// a disponibilidade sempre recomputa direto dos agendamentos.
type Agenda struct {
	repo domain.Repository
}

func NewAgenda(repo domain.Repository) *Agenda {
	return &Agenda{repo: repo}
}

func (uc *Agenda) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	from time.Time,
	to time.Time,
) ([]AgendaItem, AgendaSummary, error) {

	if !to.After(from) {
		return nil, AgendaSummary{}, domain.ErrValidation("invalid_range", "Período inválido.")
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, from, to)
	if err != nil {
		return nil, AgendaSummary{}, err
	}

	items := make([]AgendaItem, 0, len(appointments))
	summary := AgendaSummary{}

	for _, ap := range appointments {
		item := AgendaItem{
			ID:            ap.ID,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			Status:        ap.Status,
			CustomerName:  ap.CustomerName,
			CustomerEmail: ap.CustomerEmail,
			CustomerPhone: ap.CustomerPhone,
			Price:         ap.Price,
		}
		if ap.Service != nil {
			item.ServiceName = ap.Service.Name
		}
		items = append(items, item)

		status := domain.Status(ap.Status)

		if status != domain.StatusBlocked {
			summary.Appointments++
		}

		// faturamento estimado usa o preço congelado na reserva
		if status != domain.StatusCancelled && status != domain.StatusBlocked {
			summary.Revenue += ap.Price
		}
	}

	return items, summary, nil
}
