package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	setStatusUC   *ucAppointment.SetStatus
	createBlockUC *ucAppointment.CreateBlock
}

func NewAppointmentHandler(
	setStatusUC *ucAppointment.SetStatus,
	createBlockUC *ucAppointment.CreateBlock,
) *AppointmentHandler {
	return &AppointmentHandler{
		setStatusUC:   setStatusUC,
		createBlockUC: createBlockUC,
	}
}

// ======================================================
// STATUS
// ======================================================

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.setStatusUC.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		appointmentID,
		domain.Status(req.Status),
	)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// BLOCKS
// ======================================================

type CreateBlockRequest struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	DurationMin int    `json:"duration_min" binding:"required"`
}

func (h *AppointmentHandler) CreateBlock(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createBlockUC.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		ucAppointment.CreateBlockInput{
			BarberID:    barberID,
			Date:        req.Date,
			Time:        req.Time,
			DurationMin: req.DurationMin,
		},
	)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.Created(c, ap)
}
