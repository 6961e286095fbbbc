package services

import (
	"context"
	"time"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/biblioteca/biblioteca-backend/src/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReaderService struct {
	db    *gorm.DB
	clock Clock
	// checksum enables the CPF verifier digit check.
	checksum bool
}

// NewReaderService creates a new instance of ReaderService
func NewReaderService(db *gorm.DB, clock Clock, checksum bool) *ReaderService {
	return &ReaderService{db: db, clock: clock, checksum: checksum}
}

func (s *ReaderService) validate(input dtos.ReaderInput) (models.ReaderModel, error) {
	var (
		reader models.ReaderModel
		err    error
	)

	if reader.Name = validation.Text(input.Name); reader.Name == "" {
		return reader, &ValidationError{Field: "name", Reason: "name is required"}
	}
	if reader.NationalID, err = validation.NationalID(input.NationalID, s.checksum); err != nil {
		return reader, invalid("national_id", err)
	}
	birth, err := time.Parse(dtos.DateLayout, input.BirthDate)
	if err != nil {
		return reader, &ValidationError{Field: "birth_date", Reason: "birth date must use YYYY-MM-DD"}
	}
	if err := validation.BirthDate(birth, s.clock.Today()); err != nil {
		return reader, invalid("birth_date", err)
	}
	reader.BirthDate = dateOnly(birth)
	if reader.Phone, err = validation.Phone(input.Phone); err != nil {
		return reader, invalid("phone", err)
	}
	if reader.Email, err = validation.Email(input.Email); err != nil {
		return reader, invalid("email", err)
	}
	if reader.PostalCode, err = validation.PostalCode(input.PostalCode); err != nil {
		return reader, invalid("postal_code", err)
	}
	reader.Address = validation.Text(input.Address)

	return reader, nil
}

// checkUnique looks for another active reader holding the same national id or email.
func checkUnique(tx *gorm.DB, reader *models.ReaderModel) error {
	for _, field := range []struct{ column, value string }{
		{"national_id", reader.NationalID},
		{"email", reader.Email},
	} {
		var count int64
		err := tx.Model(&models.ReaderModel{}).
			Where("status = ? AND id <> ?", models.ReaderActive, reader.ID).
			Where(field.column+" = ?", field.value).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return &DuplicateKeyError{Field: field.column}
		}
	}
	return nil
}

// ListReaders retrieves active readers ordered by name
func (s *ReaderService) ListReaders(ctx context.Context) ([]models.ReaderModel, error) {
	var readers []models.ReaderModel
	err := s.db.WithContext(ctx).
		Where("status = ?", models.ReaderActive).
		Order("name").
		Find(&readers).Error
	if err != nil {
		return nil, err
	}
	return readers, nil
}

// GetReader retrieves a Reader record by its ID
func (s *ReaderService) GetReader(ctx context.Context, id uuid.UUID) (*models.ReaderModel, error) {
	var reader models.ReaderModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&reader).Error; err != nil {
		return nil, notFound(err)
	}
	return &reader, nil
}

// CreateReader validates, normalizes and stores a new reader
func (s *ReaderService) CreateReader(ctx context.Context, input dtos.ReaderInput) (*models.ReaderModel, error) {
	reader, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	reader.ID = uuid.New()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkUnique(tx, &reader); err != nil {
			return err
		}
		return tx.Create(&reader).Error
	})
	if err != nil {
		return nil, uniqueViolation(err, "national_id", "email")
	}
	return &reader, nil
}

// UpdateReader replaces the fields of an active reader
func (s *ReaderService) UpdateReader(ctx context.Context, id uuid.UUID, input dtos.ReaderInput) (*models.ReaderModel, error) {
	changes, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	var reader models.ReaderModel
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND status = ?", id, models.ReaderActive).First(&reader).Error; err != nil {
			return notFound(err)
		}

		changes.ID = reader.ID
		changes.Status = reader.Status
		if err := checkUnique(tx, &changes); err != nil {
			return err
		}

		return tx.Model(&reader).Updates(map[string]interface{}{
			"name":        changes.Name,
			"national_id": changes.NationalID,
			"birth_date":  changes.BirthDate,
			"phone":       changes.Phone,
			"email":       changes.Email,
			"postal_code": changes.PostalCode,
			"address":     changes.Address,
		}).Error
	})
	if err != nil {
		return nil, uniqueViolation(err, "national_id", "email")
	}
	return &changes, nil
}

// RemoveReader soft-removes a reader; its national id and email become free again.
func (s *ReaderService) RemoveReader(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.ReaderModel{}).
		Where("id = ? AND status = ?", id, models.ReaderActive).
		Update("status", models.ReaderRemoved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
