package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medifriend/config"
	deliveryHttp "medifriend/internal/delivery/http"
	"medifriend/internal/delivery/http/handler"
	"medifriend/internal/delivery/http/middleware"
	"medifriend/internal/infrastructure/cache"
	"medifriend/internal/infrastructure/database"
	"medifriend/internal/infrastructure/gemini"
	"medifriend/internal/repository"
	"medifriend/internal/service"
	"medifriend/internal/usecase"
	"medifriend/pkg/jwt"
	"medifriend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	GeminiClient *gemini.Client
	Server       *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize Gemini
	geminiClient, err := gemini.NewClient(context.Background(), cfg.Gemini, usecase.ChatSystemInstruction)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	app.GeminiClient = geminiClient

	// Initialize all layers
	server, notificationUsecase := initializeServer(cfg, db, redisClient, geminiClient)
	app.Server = server

	// Purge notifications past the retention window once per process start
	if err := notificationUsecase.SweepExpired(context.Background()); err != nil {
		logrus.Warnf("Startup notification sweep failed: %v", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, geminiClient *gemini.Client) (*http.Server, usecase.NotificationUsecase) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientDetailsRepo := repository.NewPatientDetailsRepository(db)
	doctorDetailsRepo := repository.NewDoctorDetailsRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	uploadRepo := repository.NewUploadRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	notificationService := service.NewNotificationService(log, notificationRepo)
	extractionService := service.NewExtractionService(log, geminiClient)
	chatStore := service.NewChatStore(redisClient, cfg.Chat.SessionTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, patientDetailsRepo, doctorDetailsRepo, jwtService, redisClient)
	doctorUsecase := usecase.NewDoctorUsecase(log, userRepo)
	patientAppointmentUsecase := usecase.NewPatientAppointmentUsecase(log, appointmentRepo, userRepo, notificationService)
	doctorAppointmentUsecase := usecase.NewDoctorAppointmentUsecase(log, appointmentRepo, userRepo, notificationService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(log, prescriptionRepo, appointmentRepo, userRepo, notificationService)
	uploadUsecase := usecase.NewUploadUsecase(log, uploadRepo, extractionService)
	notificationUsecase := usecase.NewNotificationUsecase(log, notificationRepo)
	assistantUsecase := usecase.NewAssistantUsecase(log, extractionService, geminiClient, chatStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	patientAppointmentHandler := handler.NewPatientAppointmentHandler(patientAppointmentUsecase, customValidator)
	doctorAppointmentHandler := handler.NewDoctorAppointmentHandler(doctorAppointmentUsecase)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	uploadHandler := handler.NewUploadHandler(uploadUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	assistantHandler := handler.NewAssistantHandler(assistantUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		patientAppointmentHandler,
		doctorAppointmentHandler,
		prescriptionHandler,
		uploadHandler,
		notificationHandler,
		assistantHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, notificationUsecase
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, gemini)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	// Close Gemini client
	if app.GeminiClient != nil {
		app.GeminiClient.Close()
	}
}
