package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/cache"
	"github.com/barberbook/barbershop-api/internal/config"
	"github.com/barberbook/barbershop-api/internal/directory"
	"github.com/barberbook/barbershop-api/internal/handlers"
	"github.com/barberbook/barbershop-api/internal/identity"
	infraRepo "github.com/barberbook/barbershop-api/internal/infra/repository"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/notify"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
	ucSchedule "github.com/barberbook/barbershop-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	existenceCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, directory cache disabled", zap.Error(err))
		existenceCache = nil
	}

	dir := directory.NewGormDirectory(db, existenceCache)

	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	notifier := notify.New(cfg.NotifyProvider, cfg.NotifyWebhookURL, log)
	notifyDispatcher := notify.NewDispatcher(notifier, log)

	verifier := identity.NewJWTVerifier(cfg.JWTSecret)

	// ======================================================
	// USE CASES — SCHEDULES
	// ======================================================
	createScheduleUC := ucSchedule.NewCreateSchedule(scheduleRepo, dir, auditDispatcher)
	getScheduleUC := ucSchedule.NewGetSchedule(scheduleRepo)
	listSchedulesUC := ucSchedule.NewListSchedules(scheduleRepo)
	updateScheduleUC := ucSchedule.NewUpdateSchedule(scheduleRepo, auditDispatcher)
	deleteScheduleUC := ucSchedule.NewDeleteSchedule(scheduleRepo, auditDispatcher)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		bookingRepo,
		dir,
		auditDispatcher,
		notifyDispatcher,
	)
	getAppointmentUC := ucAppointment.NewGetAppointment(bookingRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(bookingRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(bookingRepo, dir, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(db, dir, log)
	meHandler := handlers.NewMeHandler(db, log)
	barberHandler := handlers.NewBarberHandler(db, log)
	serviceHandler := handlers.NewServiceHandler(db, dir, log)

	scheduleHandler := handlers.NewScheduleHandler(
		createScheduleUC,
		getScheduleUC,
		listSchedulesUC,
		updateScheduleUC,
		deleteScheduleUC,
		log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		log,
	)

	threadHandler := handlers.NewThreadHandler(db, log)
	messageHandler := handlers.NewMessageHandler(db, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/users", userHandler.Create)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.Auth(verifier))
		{
			secured.GET("/users", userHandler.List)
			secured.GET("/users/me", meHandler.GetMe)
			secured.GET("/users/:id", userHandler.Get)
			secured.PUT("/users/:id", userHandler.Update)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			secured.POST("/barbers", barberHandler.Create)
			secured.GET("/barbers", barberHandler.List)
			secured.GET("/barbers/:id", barberHandler.Get)

			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.POST("/schedules", scheduleHandler.Create)
			secured.GET("/schedules", scheduleHandler.List)
			secured.GET("/schedules/:id", scheduleHandler.Get)
			secured.PUT("/schedules/:id", scheduleHandler.Update)
			secured.PATCH("/schedules/:id", scheduleHandler.Update)
			secured.DELETE("/schedules/:id", scheduleHandler.Delete)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.POST("/threads", threadHandler.Create)
			secured.GET("/threads", threadHandler.List)

			secured.POST("/messages", messageHandler.Create)
			secured.PATCH("/messages/:id/active", messageHandler.UpdateActive)
		}
	}
}
