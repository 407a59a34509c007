package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbearia-cta/agenda-api/internal/audit"
	"github.com/barbearia-cta/agenda-api/internal/cache"
	"github.com/barbearia-cta/agenda-api/internal/config"
	"github.com/barbearia-cta/agenda-api/internal/handlers"
	infraRepo "github.com/barbearia-cta/agenda-api/internal/infra/repository"
	"github.com/barbearia-cta/agenda-api/internal/middleware"
	ucBooking "github.com/barbearia-cta/agenda-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	bookedTimes := cache.New(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		bookedTimes,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		auditDispatcher,
		bookedTimes,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
		bookedTimes,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(bookingRepo)
	authHandler := handlers.NewAuthHandler(bookingRepo, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookingRepo,
		bookedTimes,
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (formulário de agendamento)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/booked-times/:date", appointmentHandler.BookedTimes)
		api.POST("/schedule", appointmentHandler.Create)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// 🔐 ADMIN (token exigido só com ADMIN_AUTH_REQUIRED)
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/:id", appointmentHandler.Get)
			admin.PUT("/appointments/:id", appointmentHandler.Update)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
