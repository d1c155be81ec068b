package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/notify"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	storeTimeout := time.Duration(cfg.StoreTimeoutSec) * time.Second
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db, storeTimeout)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var publisher notify.Publisher = notify.NoopPublisher{}
	if rdb != nil {
		publisher = notify.NewRedisPublisher(rdb)
	}
	notifyDispatcher := notify.NewDispatcher(publisher)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createPublicUC := ucAppointment.NewCreatePublicAppointment(
		appointmentRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	createBlockUC := ucAppointment.NewCreateBlock(
		appointmentRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	setStatusUC := ucAppointment.NewSetStatus(
		appointmentRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	agendaUC := ucAppointment.NewAgenda(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createPublicUC)
	appointmentHandler := handlers.NewAppointmentHandler(setStatusUC, createBlockUC)
	agendaHandler := handlers.NewAgendaHandler(agendaUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	eventsHandler := handlers.NewEventsHandler(rdb)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers/:id/availability", publicHandler.Availability)
			publicAPI.POST("/barbers/:id/appointments", publicHandler.Book)
			publicAPI.GET("/events", eventsHandler.Stream)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)
			secured.PUT("/barbers/:id/working-hours/:weekday", workingHoursHandler.UpsertDay)

			secured.POST("/barbers/:id/blocks", appointmentHandler.CreateBlock)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

			secured.GET("/agenda", agendaHandler.List)

			// ------------------------------
			// GESTÃO (admin)
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/barbers", barberHandler.List)
				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.DELETE("/barbers/:id", barberHandler.Delete)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
