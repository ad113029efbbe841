// cmd/docseal-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	v1 "github.com/docseal/docseal/internal/api/rest/v1"
	"github.com/docseal/docseal/internal/app"
	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/domain/sessions"
	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/infrastructure/cryptography"
	"github.com/docseal/docseal/internal/infrastructure/persistence"
	"github.com/docseal/docseal/internal/infrastructure/persistence/models"
	"github.com/docseal/docseal/internal/infrastructure/sessionstore"
	"github.com/docseal/docseal/internal/pkg/config"
	"github.com/docseal/docseal/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	session        sessions.SessionService
	keyPair        signing.KeyPairService
	documentSign   signing.DocumentSignService
	documentVerify signing.DocumentVerifyService
	auditTrail     audit.TrailService
}

// initializeServices sets up all application components
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database for the audit trail
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.AuditRecordModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	auditRepo, err := persistence.NewGormAuditRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit record repository: %w", err)
	}

	// Sessions and key material live in memory only
	sessionStore, err := sessionstore.NewInMemorySessionStore(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	signatureService, err := cryptography.NewRSASignatureService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature service: %w", err)
	}

	sessionService, err := app.NewSessionService(sessionStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	keyPairService, err := app.NewKeyPairService(sessionStore, signatureService, auditRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair service: %w", err)
	}

	documentSignService, err := app.NewDocumentSignService(sessionStore, signatureService, auditRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document sign service: %w", err)
	}

	documentVerifyService, err := app.NewDocumentVerifyService(sessionStore, signatureService, auditRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document verify service: %w", err)
	}

	auditTrailService, err := app.NewAuditTrailService(auditRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit trail service: %w", err)
	}

	return &appServices{
		session:        sessionService,
		keyPair:        keyPairService,
		documentSign:   documentSignService,
		documentVerify: documentVerifyService,
		auditTrail:     auditTrailService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		services.session,
		services.keyPair,
		services.documentSign,
		services.documentVerify,
		services.auditTrail,
	)

	// Serve OpenAPI spec (replaces Swagger)
	r.GET("/api/v1/dss/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/docseal.yaml")
	})

	// Serve the single page web UI
	r.StaticFile("/", filepath.Join(cfg.WebRoot, "index.html"))

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
