package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/biblioteca/biblioteca-backend/src/validation"
	"github.com/google/uuid"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookService struct {
	db *gorm.DB
}

// NewBookService creates a new instance of BookService
func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

func validateBook(input dtos.BookInput) (models.BookModel, error) {
	book := models.BookModel{
		Title:           validation.Text(input.Title),
		Author:          validation.Text(input.Author),
		Genre:           validation.Text(input.Genre),
		CopiesAvailable: input.Copies,
	}
	switch {
	case book.Title == "":
		return book, &ValidationError{Field: "title", Reason: "title is required"}
	case book.Author == "":
		return book, &ValidationError{Field: "author", Reason: "author is required"}
	case book.CopiesAvailable < 0:
		return book, &ValidationError{Field: "copies", Reason: "copies must be zero or more"}
	}
	return book, nil
}

// ListBooks retrieves the catalog ordered by title, optionally only active books
func (s *BookService) ListBooks(ctx context.Context, activeOnly bool) ([]models.BookModel, error) {
	var books []models.BookModel
	query := s.db.WithContext(ctx).Order("title")
	if activeOnly {
		query = query.Where("status = ?", models.BookActive)
	}
	if err := query.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook retrieves a Book record by its ID
func (s *BookService) GetBook(ctx context.Context, id uuid.UUID) (*models.BookModel, error) {
	var book models.BookModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&book).Error; err != nil {
		return nil, notFound(err)
	}
	return &book, nil
}

// CreateBook adds a book to the catalog
func (s *BookService) CreateBook(ctx context.Context, input dtos.BookInput) (*models.BookModel, error) {
	book, err := validateBook(input)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook edits the catalog fields of a book. The copy count is set under the
// same row lock the ledger takes, so it never races with a loan.
func (s *BookService) UpdateBook(ctx context.Context, id uuid.UUID, input dtos.BookInput) (*models.BookModel, error) {
	changes, err := validateBook(input)
	if err != nil {
		return nil, err
	}

	var book models.BookModel
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&book).Error; err != nil {
			return notFound(err)
		}

		if err := tx.Model(&book).Updates(map[string]interface{}{
			"title":            changes.Title,
			"author":           changes.Author,
			"genre":            changes.Genre,
			"copies_available": changes.CopiesAvailable,
		}).Error; err != nil {
			return err
		}

		book.Title = changes.Title
		book.Author = changes.Author
		book.Genre = changes.Genre
		book.CopiesAvailable = changes.CopiesAvailable
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// RemoveBook soft-removes a book. Loans keep their reference and show a placeholder.
func (s *BookService) RemoveBook(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.BookModel{}).
		Where("id = ?", id).
		Update("status", models.BookRemoved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var headerLabels = map[string]bool{
	"title": true, "titulo": true, "título": true, "livro": true,
	"author": true, "autor": true,
	"genre": true, "genero": true, "gênero": true,
	"copies": true, "exemplares": true, "quantidade": true,
}

// isHeaderRow reports whether any cell of row is a column label.
func isHeaderRow(row []string) bool {
	for _, c := range row {
		if headerLabels[strings.ToLower(validation.Text(c))] {
			return true
		}
	}
	return false
}

// ImportBooksFromExcel creates books from the first sheet of an XLSX file with the
// columns title, author, genre, copies. The first line is skipped when it holds
// column labels or a copies cell that is not a number.
func (s *BookService) ImportBooksFromExcel(ctx context.Context, r io.Reader) (*dtos.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheets[0], err)
	}

	result := &dtos.ImportResult{Errors: []string{}}

	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}

		cell := func(n int) string {
			if len(row) > n {
				return strings.TrimSpace(row[n])
			}
			return ""
		}

		if i == 0 && isHeaderRow(row) {
			continue
		}

		copies := 0
		if raw := cell(3); raw != "" {
			copies, err = strconv.Atoi(raw)
			if err != nil {
				if i == 0 {
					continue
				}
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: copies %q is not a number", i+1, raw))
				continue
			}
		}

		input := dtos.BookInput{Title: cell(0), Author: cell(1), Genre: cell(2), Copies: copies}
		if _, err := s.CreateBook(ctx, input); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, errors.New("no book could be imported")
	}

	return result, nil
}
