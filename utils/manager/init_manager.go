package main

import (
	"context"
	"log"

	"github.com/biblioteca/biblioteca-backend/src/config"
	"github.com/biblioteca/biblioteca-backend/src/db"
	"github.com/biblioteca/biblioteca-backend/src/services"
)

// Stores or rotates the manager credential from MANAGER_EMAIL and MANAGER_PASSWORD
// without starting the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.ManagerPassword == "" {
		log.Fatalf("MANAGER_PASSWORD must be set")
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.Migrate(database); err != nil {
		log.Fatalf("failed to migrate models: %v", err)
	}

	managers := services.NewManagerService(database, []byte(cfg.JWTSecret), cfg.JWTTTL)
	manager, err := managers.EnsureManager(context.Background(), cfg.ManagerEmail, cfg.ManagerPassword)
	if err != nil {
		log.Fatalf("failed to store manager: %v", err)
	}
	log.Printf("Manager '%s' stored", manager.Email)
}
