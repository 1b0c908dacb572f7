package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/cannaconscious/booking-api/internal/audit"
	"github.com/cannaconscious/booking-api/internal/config"
	"github.com/cannaconscious/booking-api/internal/handlers"
	infraRepo "github.com/cannaconscious/booking-api/internal/infra/repository"
	"github.com/cannaconscious/booking-api/internal/mail"
	"github.com/cannaconscious/booking-api/internal/middleware"
	ucAppointment "github.com/cannaconscious/booking-api/internal/usecase/appointment"
	ucContact "github.com/cannaconscious/booking-api/internal/usecase/contact"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *logrus.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	contactRepo := infraRepo.NewContactGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	mailClient := mail.NewClient(cfg)
	notifier := mail.NewSMTPNotifier(mailClient)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		notifier,
		auditDispatcher,
		cfg.RecipientEmail,
		log,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		notifier,
		auditDispatcher,
		cfg.RecipientEmail,
		cfg.BusinessTimezone,
		log,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	submitContactUC := ucContact.NewSubmitContact(
		contactRepo,
		notifier,
		auditDispatcher,
		cfg.RecipientEmail,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		bookUC,
		cancelUC,
		availabilityUC,
		log,
	)

	contactHandler := handlers.NewContactHandler(
		contactRepo,
		submitContactUC,
		log,
	)

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	adminAuth := middleware.AdminAuth(cfg, log)

	formGuard := func(c *gin.Context) { c.Next() }
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("invalid REDIS_URL")
		}
		limiter := middleware.NewRateLimiter(
			redis.NewClient(opts),
			cfg.RateLimit,
			cfg.RateWindowSecs,
			log,
		)
		formGuard = limiter.Middleware()
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "API is running"})
		})

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		appointments := api.Group("/appointments")
		{
			appointments.POST("", formGuard, appointmentHandler.Create)
			appointments.GET("/availability/:date", appointmentHandler.Availability)
			appointments.DELETE("/:id", appointmentHandler.Cancel)

			appointments.GET("", adminAuth, appointmentHandler.List)
			appointments.GET("/:id", adminAuth, appointmentHandler.Get)
			appointments.PUT("/:id", adminAuth, appointmentHandler.Update)
		}

		// ------------------------------
		// CONTACT
		// ------------------------------
		contact := api.Group("/contact")
		{
			contact.POST("", formGuard, contactHandler.Create)

			contact.GET("", adminAuth, contactHandler.List)
			contact.GET("/:id", adminAuth, contactHandler.Get)
			contact.PUT("/:id", adminAuth, contactHandler.Update)
		}
	}
}
