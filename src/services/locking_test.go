package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunPostgres builds statements with the postgres dialect without a server,
// recording every SELECT it would send.
func dryRunPostgres(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=biblioteca dbname=biblioteca sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var selects []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_sql", func(tx *gorm.DB) {
		selects = append(selects, tx.Statement.SQL.String())
	}))
	return db, &selects
}

func lockedSelect(t *testing.T, selects []string, table string) {
	t.Helper()
	require.NotEmpty(t, selects)
	for _, sql := range selects {
		if strings.Contains(sql, `"`+table+`"`) {
			assert.Contains(t, sql, "FOR UPDATE", sql)
			return
		}
	}
	t.Fatalf("no select on %s in %v", table, selects)
}

func Test_InventoryLedger_Reserve_LocksBookRow(t *testing.T) {
	db, selects := dryRunPostgres(t)

	// dry run rows come back empty, so the book looks missing
	err := NewInventoryLedger().Reserve(db, uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	lockedSelect(t, *selects, "book_models")
}

func Test_InventoryLedger_Release_LocksBookRow(t *testing.T) {
	db, selects := dryRunPostgres(t)

	require.NoError(t, NewInventoryLedger().Release(db, uuid.New()))

	lockedSelect(t, *selects, "book_models")
}

func Test_LoanService_UpdateLoan_LocksLoanRow(t *testing.T) {
	db, selects := dryRunPostgres(t)

	_, err := lockLoan(db, uuid.New())

	require.NoError(t, err)
	lockedSelect(t, *selects, "loan_models")
}
