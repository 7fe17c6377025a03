// Package output serializes the extracted bill table.
package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/billx-go/pkg/billx/models"
)

// SheetName is the name of the single output worksheet.
const SheetName = "Sheet1"

// BuildXLSX lays the records out under the Columns header row.
// Absent fields are left as empty cells.
func BuildXLSX(records []models.Record) (*excelize.File, error) {
	f := excelize.NewFile()

	header := make([]interface{}, len(models.Columns))
	for i, h := range models.Columns {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, rec := range records {
		for col, v := range rec.Row() {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(SheetName, "C", "C", 12) // date
	_ = f.SetColWidth(SheetName, "D", "D", 48) // description
	return f, nil
}

// WriteXLSX writes the table to path. The file is replaced atomically:
// on failure path is left untouched.
func WriteXLSX(path string, records []models.Record) error {
	f, err := BuildXLSX(records)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	return writeFile(path, func(w io.Writer) error {
		if err := f.Write(w); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		return nil
	})
}
