package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/adapter/cache"
	"github.com/edustaff/staffhub/internal/adapter/http/fiber/handlers"
	"github.com/edustaff/staffhub/internal/adapter/http/fiber/middleware"
	"github.com/edustaff/staffhub/internal/adapter/queue"
	"github.com/edustaff/staffhub/internal/adapter/storage/postgres"
	"github.com/edustaff/staffhub/internal/adapter/vault"
	wsAdapter "github.com/edustaff/staffhub/internal/adapter/websocket"
	"github.com/edustaff/staffhub/internal/observability/telemetry"
	"github.com/edustaff/staffhub/internal/service/attendance"
	"github.com/edustaff/staffhub/internal/service/auth"
	"github.com/edustaff/staffhub/internal/service/dashboard"
	"github.com/edustaff/staffhub/internal/service/email"
	"github.com/edustaff/staffhub/internal/service/extraction"
	"github.com/edustaff/staffhub/internal/service/health"
	"github.com/edustaff/staffhub/internal/service/schedule"
	"github.com/edustaff/staffhub/internal/service/staff"
	"github.com/edustaff/staffhub/internal/service/template"
	"github.com/edustaff/staffhub/internal/service/voice"
	"github.com/edustaff/staffhub/pkg/config"
)

const (
	serviceName    = "staffhub"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting StaffHub",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Resolve secrets from Vault when enabled; config values are the fallback
	if cfg.Vault.Enabled {
		secrets, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
		if err != nil {
			logger.Warn("Vault unavailable, using config values", zap.Error(err))
		} else {
			if dsn, err := secrets.GetDatabaseCredentials(); err == nil && dsn != "" {
				cfg.Database.URL = dsn
			}
			if secret, err := secrets.GetJWTSecret(); err == nil && secret != "" {
				cfg.JWT.Secret = secret
			}
			if key, err := secrets.GetSendGridAPIKey(); err == nil && key != "" {
				cfg.Email.APIKey = key
			}
		}
	}

	// 4. Initialize Tracer
	if cfg.OpenTelemetry.Enabled {
		tp, err := telemetry.InitTracer(cfg.OpenTelemetry.ServiceName, cfg.OpenTelemetry.Jaeger.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 5. Connect to PostgreSQL
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer postgres.Close(db)

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	if cfg.Seed.Enabled {
		if err := postgres.Seed(context.Background(), db, logger); err != nil {
			logger.Warn("Failed to seed demo data", zap.Error(err))
		}
	}

	// 6. Connect to Redis; fall back to the in-process cache when unreachable
	appCache, err := cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, using in-process cache", zap.Error(err))
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// 7. Connect to the message broker
	var messageQueue queue.MessageQueue
	switch cfg.Queue.Driver {
	case "rabbitmq":
		messageQueue, err = queue.NewRabbitMQQueue(cfg.RabbitMQ.URL, logger)
	default:
		messageQueue, err = queue.NewNATSQueue(cfg.NATS.URL, logger)
	}
	if err != nil {
		logger.Fatal("Failed to connect to message broker",
			zap.String("driver", cfg.Queue.Driver), zap.Error(err))
	}
	defer messageQueue.Close()

	// 8. Initialize Repositories
	staffRepo := postgres.NewStaffRepository(db, logger)
	scheduleRepo := postgres.NewScheduleRepository(db, logger)
	attendanceRepo := postgres.NewAttendanceRepository(db, logger)
	templateRepo := postgres.NewTemplateRepository(db, logger)
	submissionRepo := postgres.NewSubmissionRepository(db, logger)
	transcriptionRepo := postgres.NewTranscriptionRepository(db, logger)
	conversionRepo := postgres.NewConversionRepository(db, logger)
	taskRepo := postgres.NewTaskRepository(db, logger)
	activityRepo := postgres.NewActivityRepository(db, logger)
	announcementRepo := postgres.NewAnnouncementRepository(db, logger)
	userRepo := postgres.NewUserRepository(db, logger)

	// 9. Initialize Services
	staffService := staff.NewService(staffRepo, appCache, logger)
	scheduleService := schedule.NewService(scheduleRepo, messageQueue, logger)
	attendanceService := attendance.NewService(attendanceRepo, logger)
	templateService := template.NewService(templateRepo, submissionRepo, appCache, logger)
	authService := auth.NewService(userRepo, appCache, cfg.JWT.Secret, logger)

	dashboardService := dashboard.NewService(
		taskRepo, activityRepo, announcementRepo,
		scheduleService, attendanceService,
		messageQueue, logger,
	)

	engine := extraction.NewEngine(logger)
	voiceService := voice.NewService(
		transcriptionRepo, conversionRepo, engine,
		dashboardService, messageQueue, logger,
	)

	mailer := newMailer(cfg, logger)

	// 10. Initialize Health Checks
	healthService := health.NewService(&health.Config{
		Version: serviceVersion,
		DB:      db,
		Cache:   appCache,
		Queue:   messageQueue,
	}, logger)

	// 11. Initialize WebSocket Hub
	wsHub := wsAdapter.NewHub()
	go wsHub.Run()

	// 12. Initialize Fiber App
	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	if cfg.RateLimiting.Enabled {
		app.Use(middleware.RateLimit(cfg.RateLimiting))
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	// Health Check Endpoints
	health.NewFiberHandler(healthService).RegisterRoutes(app)

	// Metrics endpoint for Prometheus
	if cfg.Prometheus.Enabled {
		metricsPath := cfg.Prometheus.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		app.Get(metricsPath, func(c *fiber.Ctx) error {
			handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
			handler(c.Context())
			return nil
		})
	}

	// API v1 Routes
	v1 := app.Group("/api/v1")

	// Auth routes (public)
	authHandler := handlers.NewAuthHandler(authService, logger)
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/register", authHandler.Register)
	v1.Post("/auth/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", authHandler.Me)

	// Staff routes
	staffHandler := handlers.NewStaffHandler(staffService, logger)
	protected.Post("/staff", staffHandler.Create)
	protected.Get("/staff", staffHandler.List)
	protected.Get("/staff/:id", staffHandler.Get)
	protected.Put("/staff/:id", staffHandler.Update)
	protected.Delete("/staff/:id", staffHandler.Delete)

	// Schedule routes
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)
	protected.Post("/schedules", scheduleHandler.Create)
	protected.Get("/schedules/staff/:staffId", scheduleHandler.ListByStaff)
	protected.Get("/schedules/staff/:staffId/day/:day", scheduleHandler.ListByDay)
	protected.Get("/schedules/staff/:staffId/stats", scheduleHandler.Stats)
	protected.Get("/schedules/:id", scheduleHandler.Get)
	protected.Put("/schedules/:id", scheduleHandler.Update)
	protected.Patch("/schedules/:id/status", scheduleHandler.UpdateStatus)
	protected.Delete("/schedules/:id", scheduleHandler.Delete)

	// Attendance routes
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, logger)
	protected.Post("/attendance", attendanceHandler.Create)
	protected.Get("/attendance/staff/:staffId", attendanceHandler.ListByStaff)
	protected.Get("/attendance/staff/:staffId/stats", attendanceHandler.Stats)
	protected.Get("/attendance/:id", attendanceHandler.Get)
	protected.Put("/attendance/:id", attendanceHandler.Update)
	protected.Patch("/attendance/:id/students/:studentId", attendanceHandler.UpdateStudentStatus)
	protected.Delete("/attendance/:id", attendanceHandler.Delete)

	// Template and submission routes
	templateHandler := handlers.NewTemplateHandler(templateService, logger)
	protected.Post("/templates", templateHandler.Create)
	protected.Get("/templates", templateHandler.List)
	protected.Get("/templates/:id", templateHandler.Get)
	protected.Delete("/templates/:id", templateHandler.Delete)
	protected.Post("/submissions", templateHandler.CreateSubmission)
	protected.Get("/submissions/staff/:staffId", templateHandler.ListSubmissionsByStaff)
	protected.Get("/submissions/:id", templateHandler.GetSubmission)
	protected.Put("/submissions/:id", templateHandler.UpdateSubmission)
	protected.Delete("/submissions/:id", templateHandler.DeleteSubmission)

	// Voice routes
	voiceHandler := handlers.NewVoiceHandler(voiceService, logger)
	protected.Post("/voice/process-template", voiceHandler.ProcessTemplate)
	protected.Post("/voice/transcriptions", voiceHandler.CreateTranscription)
	protected.Get("/voice/transcriptions/staff/:staffId", voiceHandler.ListTranscriptionsByStaff)
	protected.Get("/voice/transcriptions/:id", voiceHandler.GetTranscription)
	protected.Delete("/voice/transcriptions/:id", voiceHandler.DeleteTranscription)
	protected.Post("/voice/conversions", voiceHandler.CreateConversion)
	protected.Get("/voice/conversions/staff/:staffId", voiceHandler.ListConversionsByStaff)
	protected.Get("/voice/conversions/:id", voiceHandler.GetConversion)
	protected.Delete("/voice/conversions/:id", voiceHandler.DeleteConversion)

	// Dashboard routes
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, staffService, mailer, logger)
	protected.Get("/dashboard/:staffId", dashboardHandler.GetDashboardData)
	protected.Post("/tasks", dashboardHandler.CreateTask)
	protected.Get("/tasks/staff/:staffId", dashboardHandler.ListTasksByStaff)
	protected.Patch("/tasks/:id/complete", dashboardHandler.CompleteTask)
	protected.Post("/activities", dashboardHandler.CreateActivity)
	protected.Get("/activities/staff/:staffId", dashboardHandler.ListRecentActivities)
	protected.Post("/announcements", dashboardHandler.CreateAnnouncement)
	protected.Get("/announcements", dashboardHandler.ListRecentAnnouncements)

	// WebSocket routes
	dictationHandler := wsAdapter.NewDictationStreamHandler(voiceService, logger)
	wsAdapter.SetupRoutes(app, wsHub, dictationHandler)

	// 13. Start Background Workers
	go startEventFanout(messageQueue, wsHub, logger)

	// 14. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 15. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// newMailer builds the email service from config. A broken email setup is
// logged and disables notifications instead of blocking startup.
func newMailer(cfg *config.Config, logger *zap.Logger) *email.Service {
	mailer, err := email.NewService(&email.Config{
		Provider:       cfg.Email.Provider,
		FromEmail:      cfg.Email.From,
		FromName:       cfg.Email.FromName,
		SendGridAPIKey: cfg.Email.APIKey,
		SMTPHost:       cfg.Email.SMTPHost,
		SMTPPort:       cfg.Email.SMTPPort,
		SMTPUsername:   cfg.Email.SMTPUsername,
		SMTPPassword:   cfg.Email.SMTPPassword,
		SMTPUseTLS:     cfg.Email.SMTPUseTLS,
		BaseURL:        cfg.Email.BaseURL,
	}, logger)
	if err != nil {
		logger.Warn("Email service disabled", zap.Error(err))
		return nil
	}
	return mailer
}

// startEventFanout relays broker events to connected websocket clients so
// dashboards update without polling.
func startEventFanout(mq queue.MessageQueue, hub *wsAdapter.Hub, logger *zap.Logger) {
	logger.Info("Starting event fanout worker")

	subjects := map[string]string{
		queue.SubjectVoiceProcessed:      "voice_processed",
		queue.SubjectActivityLogged:      "activity_logged",
		queue.SubjectAnnouncementCreated: "announcement_created",
		queue.SubjectScheduleUpdated:     "schedule_updated",
	}

	type event struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}

	for subject, eventType := range subjects {
		subject, eventType := subject, eventType
		err := mq.Subscribe(subject, func(msg []byte) error {
			envelope, err := json.Marshal(event{Type: eventType, Data: msg})
			if err != nil {
				return err
			}
			hub.Broadcast(envelope)
			return nil
		})
		if err != nil {
			logger.Error("Failed to subscribe", zap.String("subject", subject), zap.Error(err))
		}
	}
}
