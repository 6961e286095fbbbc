package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/biblioteca/biblioteca-backend/src/db"
	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/biblioteca/biblioteca-backend/src/reports"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fakeToday = time.Date(2024, time.July, 10, 15, 30, 0, 0, time.UTC)

type testEnv struct {
	ctx     context.Context
	db      *gorm.DB
	clock   services.Clock
	ledger  *services.InventoryLedger
	books   *services.BookService
	readers *services.ReaderService
	loans   *services.LoanService
	reports *services.ReportService
}

func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))

	clock := services.NewClockFunc(func() time.Time { return fakeToday }, time.UTC)
	ledger := services.NewInventoryLedger()
	reportService := services.NewReportService(gdb, reports.NewXLSXExporter(40))

	return &testEnv{
		ctx:     context.Background(),
		db:      gdb,
		clock:   clock,
		ledger:  ledger,
		books:   services.NewBookService(gdb),
		readers: services.NewReaderService(gdb, clock, false),
		loans:   services.NewLoanService(gdb, ledger, reportService, clock),
		reports: reportService,
	}
}

func (e *testEnv) createBook(t *testing.T, title string, copies int) *models.BookModel {
	t.Helper()
	book, err := e.books.CreateBook(e.ctx, dtos.BookInput{Title: title, Author: "Autor", Genre: "Romance", Copies: copies})
	require.NoError(t, err)
	return book
}

func (e *testEnv) createReader(t *testing.T, name, nationalID, email string) *models.ReaderModel {
	t.Helper()
	reader, err := e.readers.CreateReader(e.ctx, readerInput(name, nationalID, email))
	require.NoError(t, err)
	return reader
}

func readerInput(name, nationalID, email string) dtos.ReaderInput {
	return dtos.ReaderInput{
		Name:       name,
		NationalID: nationalID,
		BirthDate:  "1990-01-01",
		Phone:      "(11) 91234-5678",
		Email:      email,
		PostalCode: "12345-678",
		Address:    "Rua das Flores, 123",
	}
}

func (e *testEnv) copiesOf(t *testing.T, id uuid.UUID) int {
	t.Helper()
	book, err := e.books.GetBook(e.ctx, id)
	require.NoError(t, err)
	return book.CopiesAvailable
}

func (e *testEnv) loanCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.LoanModel{}).Count(&count).Error)
	return count
}

func (e *testEnv) nextWeek() time.Time {
	return e.clock.Today().AddDate(0, 0, 7)
}
