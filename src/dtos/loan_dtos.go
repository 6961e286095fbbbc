package dtos

import (
	"time"

	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/google/uuid"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = "2006-01-02"

type CreateLoanRequest struct {
	BookID             uuid.UUID `json:"bookId" binding:"required"`
	ReaderID           uuid.UUID `json:"readerId" binding:"required"`
	ExpectedReturnDate string    `json:"expectedReturnDate" binding:"required"`
}

type UpdateLoanRequest struct {
	ExpectedReturnDate string            `json:"expectedReturnDate" binding:"required"`
	Status             models.LoanStatus `json:"status" binding:"required"`
}

// LoanView is a loan joined with the book and reader it references. Title and
// names read "deleted" when the referenced record is gone or soft-removed.
type LoanView struct {
	ID                 uuid.UUID         `json:"id"`
	BookID             uuid.UUID         `json:"bookId"`
	BookTitle          string            `json:"bookTitle"`
	ReaderID           uuid.UUID         `json:"readerId"`
	ReaderName         string            `json:"readerName"`
	ReaderNationalID   string            `json:"readerNationalId"`
	LoanStart          time.Time         `json:"loanStart"`
	ExpectedReturnDate time.Time         `json:"expectedReturnDate"`
	ActualReturnDate   *time.Time        `json:"actualReturnDate,omitempty"`
	Status             models.LoanStatus `json:"status"`
}
