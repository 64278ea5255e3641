package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the rows as a single-sheet spreadsheet with a header
// row, mirroring WriteCSV's layout.
func WriteXLSX[T any](w io.Writer, sheet string, rows []T, columns []Column[T]) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = "Export"
	}
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := make([]any, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for r, row := range rows {
		cells := make([]any, len(columns))
		for i, col := range columns {
			cells[i] = col.Value(row)
		}
		if err := setRow(f, sheet, r+2, cells); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
