package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanReturned LoanStatus = "returned"
)

// Valid reports whether s is one of the known loan states.
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanPending, LoanReturned:
		return true
	}
	return false
}

type LoanModel struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BookID             uuid.UUID  `json:"bookId" gorm:"column:book_id;type:uuid;not null;index"`
	ReaderID           uuid.UUID  `json:"readerId" gorm:"column:reader_id;type:uuid;not null;index"`
	LoanStart          time.Time  `json:"loanStart" gorm:"column:loan_start;type:date;not null"`
	ExpectedReturnDate time.Time  `json:"expectedReturnDate" gorm:"column:expected_return_date;type:date;not null"`
	ActualReturnDate   *time.Time `json:"actualReturnDate" gorm:"column:actual_return_date;type:date"`
	Status             LoanStatus `json:"status" gorm:"type:varchar(20);not null;index"`
}

func (l *LoanModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
