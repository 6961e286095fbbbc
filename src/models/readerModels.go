package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReaderStatus string

const (
	ReaderActive  ReaderStatus = "active"
	ReaderRemoved ReaderStatus = "removed"
)

// ReaderModel keeps national id, phone and postal code as digits only and email lower-cased.
// National id and email are unique among active readers.
type ReaderModel struct {
	ID         uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string       `json:"name" gorm:"type:varchar(255);not null"`
	NationalID string       `json:"nationalId" gorm:"column:national_id;type:varchar(11);not null;index:idx_reader_national_id,unique,where:status = 'active'"`
	BirthDate  time.Time    `json:"birthDate" gorm:"type:date;not null"`
	Phone      string       `json:"phone" gorm:"type:varchar(20)"`
	Email      string       `json:"email" gorm:"type:varchar(255);not null;index:idx_reader_email,unique,where:status = 'active'"`
	PostalCode string       `json:"postalCode" gorm:"column:postal_code;type:varchar(8)"`
	Address    string       `json:"address" gorm:"type:varchar(255)"`
	Status     ReaderStatus `json:"status" gorm:"type:varchar(20);not null;default:active"`
}

func (r *ReaderModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = ReaderActive
	}
	return nil
}
