package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/config"
	"github.com/profboard/profboard-go-api/internal/database"
	"github.com/profboard/profboard-go-api/internal/handler"
	"github.com/profboard/profboard-go-api/internal/middleware"
	"github.com/profboard/profboard-go-api/internal/models"
	"github.com/profboard/profboard-go-api/internal/repository"
	"github.com/profboard/profboard-go-api/internal/router"
	"github.com/profboard/profboard-go-api/internal/service"
	"github.com/profboard/profboard-go-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Professor{},
		&models.Student{},
		&models.Assignment{},
		&models.AttendanceRecord{},
		&models.ClassSession{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	natsConn, err := database.ConnectNATS(cfg.NATSService)
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}
	if natsConn != nil {
		defer natsConn.Close()
	}

	responder, err := newResponder(cfg, logger)
	if err != nil {
		log.Fatalf("failed to create completion client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	professorRepo := repository.NewProfessorRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	sessionRepo := repository.NewClassSessionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	assistantService := service.NewAssistantService(professorRepo, studentRepo, assignmentRepo, attendanceRepo, responder, logger)
	studentService := service.NewStudentService(studentRepo, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, validate, logger)
	scheduleService := service.NewScheduleService(sessionRepo, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo, redisClient, natsConn, validate, logger)
	dashboardService := service.NewDashboardService(studentRepo, assignmentRepo, sessionRepo, redisClient, cfg.StatsCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AssistantHandler:    handler.NewAssistantHandler(assistantService, validate, logger),
		StudentHandler:      handler.NewStudentHandler(studentService, validate, logger),
		AssignmentHandler:   handler.NewAssignmentHandler(assignmentService, validate, logger),
		ScheduleHandler:     handler.NewScheduleHandler(scheduleService, logger),
		AttendanceHandler:   handler.NewAttendanceHandler(attendanceService, logger),
		NotificationHandler: handler.NewNotificationHandler(notificationService, validate, logger),
		DashboardHandler:    handler.NewDashboardHandler(dashboardService, logger),
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func newResponder(cfg config.Config, logger zerolog.Logger) (ai.Responder, error) {
	if cfg.AIProvider == "anthropic" {
		logger.Warn().Msg("anthropic provider is a stub; completion fallback requests will fail")
		return ai.NewAnthropicResponder(ai.AnthropicConfig{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.AssistantModel,
		})
	}

	return ai.NewOpenAIResponder(ai.OpenAIConfig{
		APIKey:    cfg.OpenAIAPIKey,
		Model:     cfg.AssistantModel,
		MaxTokens: cfg.AssistantMaxToken,
		Logger:    logger,
	})
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
