package reports

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_XLSXExporter_Export(t *testing.T) {
	// setup
	rows := []dtos.LoanView{
		{
			ID:                 uuid.New(),
			BookTitle:          "O Senhor dos Anéis",
			ReaderName:         "Ana Silva",
			LoanStart:          date(2024, time.July, 1),
			ExpectedReturnDate: date(2024, time.July, 8),
			Status:             models.LoanPending,
		},
		{
			ID:                 uuid.New(),
			BookTitle:          "deleted",
			ReaderName:         "Bruno Costa",
			LoanStart:          date(2024, time.June, 3),
			ExpectedReturnDate: date(2024, time.June, 17),
			Status:             models.LoanReturned,
		},
	}

	// act
	doc, err := NewXLSXExporter(40).Export(rows)

	// assert
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(doc))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, headers, got[0])
	assert.Equal(t, []string{"O Senhor dos Anéis", "Ana Silva", "01/07/2024", "08/07/2024"}, got[1])
	assert.Equal(t, []string{"deleted", "Bruno Costa", "03/06/2024", "17/06/2024"}, got[2])
}

func Test_XLSXExporter_Export_Paginates(t *testing.T) {
	rows := make([]dtos.LoanView, 0, 7)
	for i := 0; i < 7; i++ {
		rows = append(rows, dtos.LoanView{
			BookTitle:          fmt.Sprintf("Livro %d", i),
			ReaderName:         "Ana Silva",
			LoanStart:          date(2024, time.July, 1),
			ExpectedReturnDate: date(2024, time.July, 10+i),
		})
	}

	doc, err := NewXLSXExporter(3).Export(rows)

	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(doc))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, got, 8)
	assert.Equal(t, "Livro 6", got[7][0])
}

func Test_XLSXExporter_Export_Empty(t *testing.T) {
	doc, err := NewXLSXExporter(0).Export(nil)

	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(doc))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{headers}, got)
}
