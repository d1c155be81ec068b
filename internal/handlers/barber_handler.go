package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// HANDLER (admin)
// ======================================================

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: auditDispatcher}
}

type BarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	role := req.Role
	if role == "" {
		role = domain.RoleBarber
	}
	if role != domain.RoleAdmin && role != domain.RoleBarber {
		httperr.BadRequest(c, "invalid_role", "Papel inválido.")
		return
	}

	barber := models.Barber{
		Name:      req.Name,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Role:      role,
		Active:    true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	actorID := middleware.ActorFrom(c).ID
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.Where("id = ?", barberID).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Bio       *string `json:"bio"`
		AvatarURL *string `json:"avatar_url"`
		Active    *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Bio != nil {
		barber.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		barber.AvatarURL = *req.AvatarURL
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	httpresp.OK(c, barber)
}

// Delete remove o barbeiro. É o ÚNICO caminho que apaga agendamentos
// fisicamente: o FK em cascata leva junto expediente e agendamentos
// (futuros e históricos) do barbeiro removido.
func (h *BarberHandler) Delete(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.Where("id = ?", barberID).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	if err := h.db.Delete(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	actorID := middleware.ActorFrom(c).ID
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &barberID,
		Metadata: gin.H{"deleted_at": timezone.Now().Format(time.RFC3339)},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
