package services

import (
	"context"
	"time"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeletedPlaceholder stands in for a book or reader that no longer exists.
const DeletedPlaceholder = "deleted"

// LoanReportExporter renders export rows into a document.
type LoanReportExporter interface {
	Export(rows []dtos.LoanView) ([]byte, error)
}

type ReportService struct {
	db       *gorm.DB
	exporter LoanReportExporter
}

// NewReportService creates a new instance of ReportService
func NewReportService(db *gorm.DB, exporter LoanReportExporter) *ReportService {
	return &ReportService{db: db, exporter: exporter}
}

type loanRow struct {
	ID                 uuid.UUID
	BookID             uuid.UUID
	ReaderID           uuid.UUID
	LoanStart          time.Time
	ExpectedReturnDate time.Time
	ActualReturnDate   *time.Time
	Status             models.LoanStatus
	BookTitle          *string `gorm:"column:book_title"`
	ReaderName         *string `gorm:"column:reader_name"`
	ReaderNationalID   *string `gorm:"column:reader_national_id"`
}

func (r loanRow) view() dtos.LoanView {
	v := dtos.LoanView{
		ID:                 r.ID,
		BookID:             r.BookID,
		BookTitle:          DeletedPlaceholder,
		ReaderID:           r.ReaderID,
		ReaderName:         DeletedPlaceholder,
		ReaderNationalID:   DeletedPlaceholder,
		LoanStart:          r.LoanStart,
		ExpectedReturnDate: r.ExpectedReturnDate,
		ActualReturnDate:   r.ActualReturnDate,
		Status:             r.Status,
	}
	if r.BookTitle != nil {
		v.BookTitle = *r.BookTitle
	}
	if r.ReaderName != nil {
		v.ReaderName = *r.ReaderName
	}
	if r.ReaderNationalID != nil {
		v.ReaderNationalID = *r.ReaderNationalID
	}
	return v
}

// joined selects loans with their active book and reader; removed or missing
// ones come back as NULL columns.
func (s *ReportService) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table("loan_models AS l").
		Select(`l.id,
			l.book_id,
			l.reader_id,
			l.loan_start,
			l.expected_return_date,
			l.actual_return_date,
			l.status,
			b.title AS book_title,
			r.name AS reader_name,
			r.national_id AS reader_national_id`).
		Joins("LEFT JOIN book_models b ON b.id = l.book_id AND b.status = ?", models.BookActive).
		Joins("LEFT JOIN reader_models r ON r.id = l.reader_id AND r.status = ?", models.ReaderActive)
}

func (s *ReportService) scan(query *gorm.DB) ([]dtos.LoanView, error) {
	var rows []loanRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]dtos.LoanView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view())
	}
	return views, nil
}

// LoanViews lists every loan, newest first
func (s *ReportService) LoanViews(ctx context.Context) ([]dtos.LoanView, error) {
	return s.scan(s.joined(ctx).Order("l.loan_start DESC").Order("l.id"))
}

// LoanView returns one joined loan
func (s *ReportService) LoanView(ctx context.Context, id uuid.UUID) (*dtos.LoanView, error) {
	views, err := s.scan(s.joined(ctx).Where("l.id = ?", id).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	return &views[0], nil
}

// Summary counts active readers and pending loans
func (s *ReportService) Summary(ctx context.Context) (*dtos.Summary, error) {
	var summary dtos.Summary
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.ReaderModel{}).
		Where("status = ?", models.ReaderActive).
		Count(&summary.TotalReaders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.LoanModel{}).
		Where("status = ?", models.LoanPending).
		Count(&summary.OpenLoans).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// ExportRows returns the loan rows of the report, pending before returned and
// then by expected return date.
func (s *ReportService) ExportRows(ctx context.Context) ([]dtos.LoanView, error) {
	return s.scan(s.joined(ctx).
		Order("l.status ASC").
		Order("l.expected_return_date ASC").
		Order("l.id"))
}

// ExportLoanReport renders the export rows with the configured exporter
func (s *ReportService) ExportLoanReport(ctx context.Context) ([]byte, error) {
	rows, err := s.ExportRows(ctx)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(rows)
}
