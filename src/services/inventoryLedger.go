package services

import (
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryLedger moves copies_available by one unit at a time. Both operations
// must run inside the caller's transaction: they lock the book row until it ends.
type InventoryLedger struct{}

func NewInventoryLedger() *InventoryLedger {
	return &InventoryLedger{}
}

func (l *InventoryLedger) lock(tx *gorm.DB, bookID uuid.UUID) (*models.BookModel, error) {
	var book models.BookModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", bookID).
		First(&book).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &book, nil
}

// Reserve takes one copy of an active book.
func (l *InventoryLedger) Reserve(tx *gorm.DB, bookID uuid.UUID) error {
	book, err := l.lock(tx, bookID)
	if err != nil {
		return err
	}
	if book.Status != models.BookActive {
		return ErrNotFound
	}
	if book.CopiesAvailable <= 0 {
		return ErrOutOfStock
	}

	result := tx.Model(&models.BookModel{}).
		Where("id = ? AND copies_available > 0", bookID).
		Update("copies_available", gorm.Expr("copies_available - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOutOfStock
	}
	return nil
}

// Release gives one copy back. Removed books still take their copies back; there
// is no upper bound on copies_available.
func (l *InventoryLedger) Release(tx *gorm.DB, bookID uuid.UUID) error {
	if _, err := l.lock(tx, bookID); err != nil {
		return err
	}

	return tx.Model(&models.BookModel{}).
		Where("id = ?", bookID).
		Update("copies_available", gorm.Expr("copies_available + 1")).Error
}
