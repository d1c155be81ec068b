package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreatePublicAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreatePublicAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookRequest struct {
	ServiceID     string `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
}

////////////////////////////////////////////////////////
// CATÁLOGO
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("price ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	durationStr := c.Query("duration")
	if dateStr == "" || durationStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e duração obrigatórias.")
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:    barberID,
			Date:        date,
			DurationMin: duration,
		},
	)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format(time.RFC3339))
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": out,
	})
}

////////////////////////////////////////////////////////
// BOOK
////////////////////////////////////////////////////////

func (h *PublicHandler) Book(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var req PublicBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	// checagem de DNS fica na borda HTTP; o use case valida só formato
	if !validators.IsEmailDomainValid(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_customer_email", "Domínio de e-mail inválido.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreatePublicAppointmentInput{
			BarberID:      barberID,
			ServiceID:     serviceID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          req.Time,
		},
	)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.Created(c, gin.H{"appointment_id": ap.ID, "appointment": ap})
}
