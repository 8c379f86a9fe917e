package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-profile-qr/config"
	deliveryHttp "medical-profile-qr/internal/delivery/http"
	"medical-profile-qr/internal/delivery/http/handler"
	"medical-profile-qr/internal/delivery/http/middleware"
	"medical-profile-qr/internal/delivery/web"
	"medical-profile-qr/internal/infrastructure/database"
	"medical-profile-qr/internal/repository"
	"medical-profile-qr/internal/service"
	"medical-profile-qr/internal/usecase"
	"medical-profile-qr/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	server, err := initializeServer(cfg, db)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires every layer and returns the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) (*http.Server, error) {
	log := logrus.StandardLogger()

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	customValidator := validator.NewValidator()

	profileRepo := repository.NewMedicalProfileRepository()

	identityService := service.NewIdentityService(profileRepo)
	qrService := service.NewQRService(cfg.QR.Dir, log)

	profileUsecase := usecase.NewMedicalProfileUsecase(db, log, profileRepo, identityService)

	profileHandler := handler.NewProfileHandler(profileUsecase, qrService, renderer, customValidator, cfg.App.BaseURL)
	profileAPIHandler := handler.NewProfileAPIHandler(profileUsecase)

	requestLogger := middleware.NewRequestLoggerMiddleware(log)
	recovery := middleware.NewRecoveryMiddleware(log, renderer)
	cors := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(profileHandler, profileAPIHandler, requestLogger, recovery, cors, cfg.QR.Dir)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database connection
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
