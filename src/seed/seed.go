package seed

import (
	"context"
	"log"

	"github.com/biblioteca/biblioteca-backend/src/config"
	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"gorm.io/gorm"
)

const devManagerPassword = "admin123"

// Services groups what the seed writes through, so every row passes the same
// validation as a request would.
type Services struct {
	Managers *services.ManagerService
	Books    *services.BookService
	Readers  *services.ReaderService
}

var demoBooks = []dtos.BookInput{
	{Title: "O Senhor dos Anéis", Author: "J.R.R. Tolkien", Genre: "Fantasia", Copies: 3},
	{Title: "1984", Author: "George Orwell", Genre: "Distopia", Copies: 5},
	{Title: "Dom Casmurro", Author: "Machado de Assis", Genre: "Romance", Copies: 0},
}

var demoReader = dtos.ReaderInput{
	Name:       "Ana Silva",
	NationalID: "529.982.247-25",
	BirthDate:  "1990-05-15",
	Phone:      "(11) 98765-4321",
	Email:      "ana.silva@email.com",
	PostalCode: "01310-100",
	Address:    "Av. Paulista, 1000 - São Paulo/SP",
}

// Seed makes sure the manager credential exists and, when asked, loads a small
// demo catalog into an empty store. Running it twice changes nothing.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config, s Services) {
	// Manager
	switch {
	case cfg.ManagerPassword != "":
		if _, err := s.Managers.EnsureManager(ctx, cfg.ManagerEmail, cfg.ManagerPassword); err != nil {
			log.Printf("[ERROR] Failed to store manager %s: %v\n", cfg.ManagerEmail, err)
		} else {
			log.Printf("[INFO] Manager '%s' ready\n", cfg.ManagerEmail)
		}
	default:
		exists, err := s.Managers.HasManager(ctx, cfg.ManagerEmail)
		if err != nil {
			log.Printf("[ERROR] Failed to look up manager: %v\n", err)
			break
		}
		if exists {
			log.Printf("[INFO] Manager '%s' already exists\n", cfg.ManagerEmail)
			break
		}
		if cfg.DBDriver != config.DriverSQLite {
			log.Printf("[WARN] No manager credential stored and MANAGER_PASSWORD is not set\n")
			break
		}
		if _, err := s.Managers.EnsureManager(ctx, cfg.ManagerEmail, devManagerPassword); err != nil {
			log.Printf("[ERROR] Failed to create manager: %v\n", err)
		} else {
			log.Printf("[WARN] Manager '%s' created with the development password\n", cfg.ManagerEmail)
		}
	}

	if !cfg.SeedDemo {
		return
	}

	// Demo catalog
	var count int64
	if err := db.WithContext(ctx).Model(&models.BookModel{}).Count(&count).Error; err != nil {
		log.Printf("[ERROR] Failed to count books: %v\n", err)
		return
	}
	if count > 0 {
		log.Println("[INFO] Catalog already has books, skipping demo data")
		return
	}

	for _, input := range demoBooks {
		if _, err := s.Books.CreateBook(ctx, input); err != nil {
			log.Printf("[ERROR] Failed to create book '%s': %v\n", input.Title, err)
			continue
		}
		log.Printf("[INFO] Book '%s' created\n", input.Title)
	}

	if _, err := s.Readers.CreateReader(ctx, demoReader); err != nil {
		log.Printf("[ERROR] Failed to create reader '%s': %v\n", demoReader.Name, err)
		return
	}
	log.Printf("[INFO] Reader '%s' created\n", demoReader.Name)
}
