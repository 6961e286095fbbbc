package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookStatus string

const (
	BookActive  BookStatus = "active"
	BookRemoved BookStatus = "removed"
)

type BookModel struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string     `json:"title" gorm:"type:varchar(255);not null"`
	Author          string     `json:"author" gorm:"type:varchar(255);not null"`
	Genre           string     `json:"genre" gorm:"type:varchar(100)"`
	CopiesAvailable int        `json:"copiesAvailable" gorm:"column:copies_available;not null;default:0;check:copies_available >= 0"`
	Status          BookStatus `json:"status" gorm:"type:varchar(20);not null;default:active;index"`
}

func (b *BookModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookActive
	}
	return nil
}
