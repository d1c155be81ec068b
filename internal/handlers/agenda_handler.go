package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

type AgendaHandler struct {
	agendaUC *ucAppointment.Agenda
}

func NewAgendaHandler(agendaUC *ucAppointment.Agenda) *AgendaHandler {
	return &AgendaHandler{agendaUC: agendaUC}
}

// List devolve a agenda do período + resumo (contagem e faturamento
// estimado). Sem from/to, assume o dia de hoje.
func (h *AgendaHandler) List(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	if barberIDStr == "" {
		httperr.BadRequest(c, "missing_barber_id", "Barbeiro obrigatório.")
		return
	}

	barberID, err := uuid.Parse(barberIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	actor := middleware.ActorFrom(c)
	if !actor.CanManage(barberID) {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta agenda.")
		return
	}

	var from, to time.Time

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err = parseDate(fromStr); err != nil {
			httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
			return
		}
	} else {
		from = startOfDay(timezone.Now())
	}

	if toStr := c.Query("to"); toStr != "" {
		parsed, err := parseDate(toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Data final inválida.")
			return
		}
		to = parsed.Add(24 * time.Hour) // inclusivo
	} else {
		to = from.Add(24 * time.Hour)
	}

	items, summary, err := h.agendaUC.Execute(c.Request.Context(), barberID, from, to)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   items,
		"summary": summary,
	})
}
