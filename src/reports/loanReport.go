// Package reports renders loan records into spreadsheet documents.
package reports

import (
	"fmt"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	excelize "github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Empréstimos"
	DisplayDate = "02/01/2006"
)

var headers = []string{"Livro", "Leitor", "Data de Empréstimo", "Devolução Prevista"}

// XLSXExporter writes one row per loan and inserts a page break every
// RowsPerPage rows; the header row repeats on each printed page.
type XLSXExporter struct {
	RowsPerPage int
}

func NewXLSXExporter(rowsPerPage int) *XLSXExporter {
	if rowsPerPage <= 0 {
		rowsPerPage = 40
	}
	return &XLSXExporter{RowsPerPage: rowsPerPage}
}

func (e *XLSXExporter) Export(rows []dtos.LoanView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", headerStyle); err != nil {
		return nil, err
	}

	for i, row := range rows {
		line := i + 2
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			row.BookTitle,
			row.ReaderName,
			row.LoanStart.Format(DisplayDate),
			row.ExpectedReturnDate.Format(DisplayDate),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, err
		}

		if (i+1)%e.RowsPerPage == 0 && i+1 < len(rows) {
			next, err := excelize.CoordinatesToCellName(1, line+1)
			if err != nil {
				return nil, err
			}
			if err := f.InsertPageBreak(SheetName, next); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 40); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "C", "D", 20); err != nil {
		return nil, err
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: fmt.Sprintf("'%s'!$1:$1", SheetName),
		Scope:    SheetName,
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
