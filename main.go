package main

import (
	"context"
	"log"

	"github.com/biblioteca/biblioteca-backend/src/config"
	"github.com/biblioteca/biblioteca-backend/src/db"
	"github.com/biblioteca/biblioteca-backend/src/middleware"
	"github.com/biblioteca/biblioteca-backend/src/reports"
	"github.com/biblioteca/biblioteca-backend/src/routes"
	"github.com/biblioteca/biblioteca-backend/src/seed"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}

	// Database connection
	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.Migrate(database); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Services setup
	clock := services.NewClock(cfg.Location)
	ledger := services.NewInventoryLedger()
	reportService := services.NewReportService(database, reports.NewXLSXExporter(cfg.ReportRowsPerPage))
	bookService := services.NewBookService(database)
	readerService := services.NewReaderService(database, clock, cfg.NationalIDChecksum)
	loanService := services.NewLoanService(database, ledger, reportService, clock)
	managerService := services.NewManagerService(database, []byte(cfg.JWTSecret), cfg.JWTTTL)

	seed.Seed(context.Background(), database, cfg, seed.Services{
		Managers: managerService,
		Books:    bookService,
		Readers:  readerService,
	})

	// Gin router setup
	if cfg.DBDriver == config.DriverPostgres {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.SetupCORS(cfg.AllowedOrigins))

	auth := middleware.AuthMiddleware([]byte(cfg.JWTSecret))
	loginLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.LoginRate), cfg.LoginBurst)

	// Routes setup
	routes.SetupHealthRoutes(router, database)
	routes.SetupManagerRoutes(router, managerService, loginLimiter)
	routes.SetupBookRoutes(router, bookService, auth)
	routes.SetupReaderRoutes(router, readerService, auth)
	routes.SetupLoanRoutes(router, loanService, auth)
	routes.SetupReportRoutes(router, reportService, auth)

	// Server run
	log.Printf("[INFO] Server listening on %s\n", cfg.ServerHost)
	if err := router.Run(cfg.ServerHost); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", cfg.ServerHost, err)
	}
}
