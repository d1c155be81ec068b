package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID := middleware.ActorFrom(c).ID

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar expediente.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update grava a grade semanal do próprio barbeiro. Toda a validação
// acontece ANTES de qualquer escrita: uma janela malformada rejeita a
// requisição inteira sem tocar o banco.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID := middleware.ActorFrom(c).ID

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, d := range req.Days {
		// janela malformada nunca é persistida, nem em dia inativo;
		// inativo sem horários é o único caso dispensado
		if !d.Active && d.OpenTime == "" && d.CloseTime == "" {
			continue
		}
		if err := domain.ValidateWindow(d.OpenTime, d.CloseTime); err != nil {
			httperr.FromDomain(c, err)
			return
		}
	}

	toSave := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		toSave = append(toSave, models.WorkingHours{
			BarberID:  barberID,
			Weekday:   d.Weekday,
			Active:    d.Active,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
		})
	}

	if len(toSave) > 0 {
		// exatamente uma linha por (barbeiro, dia da semana)
		if err := h.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "barber_id"},
				{Name: "weekday"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"open_time", "close_time", "active", "updated_at",
			}),
		}).Create(&toSave).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UpsertDay grava um único dia de outro barbeiro (admin) ou o próprio.
func (h *WorkingHoursHandler) UpsertDay(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	if !middleware.ActorFrom(c).CanManage(barberID) {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta agenda.")
		return
	}

	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil || weekday < 0 || weekday > 6 {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	var req struct {
		Active    bool   `json:"active"`
		OpenTime  string `json:"open_time"`
		CloseTime string `json:"close_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Active || req.OpenTime != "" || req.CloseTime != "" {
		if err := domain.ValidateWindow(req.OpenTime, req.CloseTime); err != nil {
			httperr.FromDomain(c, err)
			return
		}
	}

	wh := models.WorkingHours{
		BarberID:  barberID,
		Weekday:   weekday,
		Active:    req.Active,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "barber_id"},
			{Name: "weekday"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"open_time", "close_time", "active", "updated_at",
		}),
	}).Create(&wh).Error; err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
		return
	}

	c.JSON(http.StatusOK, wh)
}
