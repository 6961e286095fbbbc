package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/biblioteca/biblioteca-backend/src/session"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type inventoryStep int

const (
	stepNone inventoryStep = iota
	stepReserve
	stepRelease
)

// loanTransitions lists every allowed status change and the single inventory
// operation it drives. Staying in the same status never touches inventory.
var loanTransitions = map[models.LoanStatus]map[models.LoanStatus]inventoryStep{
	models.LoanPending: {
		models.LoanPending:  stepNone,
		models.LoanReturned: stepRelease,
	},
	models.LoanReturned: {
		models.LoanReturned: stepNone,
		models.LoanPending:  stepReserve,
	},
}

type LoanService struct {
	db      *gorm.DB
	ledger  *InventoryLedger
	reports *ReportService
	clock   Clock
}

// NewLoanService creates a new instance of LoanService
func NewLoanService(db *gorm.DB, ledger *InventoryLedger, reports *ReportService, clock Clock) *LoanService {
	return &LoanService{
		db:      db,
		ledger:  ledger,
		reports: reports,
		clock:   clock,
	}
}

// ListLoans retrieves every loan joined with its book and reader
func (s *LoanService) ListLoans(ctx context.Context) ([]dtos.LoanView, error) {
	return s.reports.LoanViews(ctx)
}

// lockLoan reads a loan under a row lock so the transition is picked from the
// status no other transaction can change before commit.
func lockLoan(tx *gorm.DB, id uuid.UUID) (*models.LoanModel, error) {
	var loan models.LoanModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&loan).Error; err != nil {
		return nil, notFound(err)
	}
	return &loan, nil
}

// GetLoan retrieves the joined view of one loan
func (s *LoanService) GetLoan(ctx context.Context, id uuid.UUID) (*dtos.LoanView, error) {
	return s.reports.LoanView(ctx, id)
}

// CreateLoan lends one copy of a book to a reader. The reservation and the loan
// row commit together or not at all.
func (s *LoanService) CreateLoan(ctx context.Context, bookID, readerID uuid.UUID, expectedReturn time.Time) (*models.LoanModel, error) {
	today := s.clock.Today()
	expectedReturn = dateOnly(expectedReturn)
	if !expectedReturn.After(today) {
		return nil, ErrInvalidDate
	}

	loan := models.LoanModel{
		ID:                 uuid.New(),
		BookID:             bookID,
		ReaderID:           readerID,
		LoanStart:          today,
		ExpectedReturnDate: expectedReturn,
		Status:             models.LoanPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) The reader must still be registered
		var reader models.ReaderModel
		if err := tx.Select("id").
			Where("id = ? AND status = ?", readerID, models.ReaderActive).
			First(&reader).Error; err != nil {
			return notFound(err)
		}

		// 2) Take one copy under the book row lock
		if err := s.ledger.Reserve(tx, bookID); err != nil {
			return err
		}

		// 3) Record the loan
		return tx.Create(&loan).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] loan %s created for book %s by %s", loan.ID, bookID, session.Actor(ctx))

	return &loan, nil
}

// UpdateLoan changes the expected return date and status of a loan, moving the
// book's inventory according to loanTransitions.
func (s *LoanService) UpdateLoan(ctx context.Context, id uuid.UUID, expectedReturn time.Time, status models.LoanStatus) (*models.LoanModel, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown loan status %q", status)}
	}
	expectedReturn = dateOnly(expectedReturn)
	today := s.clock.Today()

	var loan models.LoanModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := lockLoan(tx, id)
		if err != nil {
			return err
		}
		loan = *locked
		if !expectedReturn.After(dateOnly(loan.LoanStart)) {
			return ErrInvalidDate
		}

		step, ok := loanTransitions[loan.Status][status]
		if !ok {
			return &ValidationError{Field: "status", Reason: fmt.Sprintf("cannot move a %s loan to %s", loan.Status, status)}
		}

		updates := map[string]interface{}{
			"expected_return_date": expectedReturn,
			"status":               status,
		}

		switch step {
		case stepRelease:
			if err := s.ledger.Release(tx, loan.BookID); err != nil {
				return err
			}
			updates["actual_return_date"] = today
		case stepReserve:
			if err := s.ledger.Reserve(tx, loan.BookID); err != nil {
				if errors.Is(err, ErrOutOfStock) {
					return ErrInvalidReversal
				}
				return err
			}
			updates["actual_return_date"] = nil
		}

		if err := tx.Model(&loan).Updates(updates).Error; err != nil {
			return err
		}

		loan.ExpectedReturnDate = expectedReturn
		loan.Status = status
		switch step {
		case stepRelease:
			loan.ActualReturnDate = &today
		case stepReserve:
			loan.ActualReturnDate = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] loan %s updated to %s by %s", loan.ID, loan.Status, session.Actor(ctx))

	return &loan, nil
}
