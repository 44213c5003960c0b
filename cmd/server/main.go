package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vendor-desk.backend/internal/config"
	"vendor-desk.backend/internal/infrastructure/jobs"
	"vendor-desk.backend/internal/infrastructure/models"
	"vendor-desk.backend/internal/infrastructure/storage"
	"vendor-desk.backend/internal/interfaces/http/handlers"
	"vendor-desk.backend/internal/interfaces/http/middleware"
	"vendor-desk.backend/internal/usecases"
	"vendor-desk.backend/pkg/logger"
	"vendor-desk.backend/pkg/metrics"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		if cfg.Driver == "postgres" {
			return gorm.Open(postgres.New(postgres.Config{
				DSN:                  cfg.URL(),
				PreferSimpleProtocol: true,
			}), &gorm.Config{})
		}
		return gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize metrics
	metrics.Init(cfg.Metrics.Prefix)

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		return fmt.Errorf("failed to migrate storage schema: %w", err)
	}

	// Initialize store
	vendorStore := storage.NewVendorStore(db)

	// Initialize usecases
	vendorUsecase := usecases.NewVendorUsecase(vendorStore)
	transferUsecase := usecases.NewTransferUsecase(vendorStore)
	reportUsecase := usecases.NewReportUsecase(vendorStore)

	// Initialize handlers
	vendorHandler := handlers.NewVendorHandler(vendorUsecase)
	transferHandler := handlers.NewTransferHandler(transferUsecase)
	reportHandler := handlers.NewReportHandler(reportUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewContractExpiryJob(vendorStore)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		vendorHandler:   vendorHandler,
		transferHandler: transferHandler,
		reportHandler:   reportHandler,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("Vendor Desk backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
