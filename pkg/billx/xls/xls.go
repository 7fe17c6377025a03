// Package xls reads legacy binary (BIFF) workbooks through
// github.com/yamitzky/xlrd-go and exposes their first sheet as a parser.Sheet.
package xls

import (
	"errors"
	"fmt"
	"io"

	"github.com/yamitzky/xlrd-go/xlrd"

	"github.com/ukaji3/billx-go/pkg/billx/models"
	"github.com/ukaji3/billx-go/pkg/billx/parser"
)

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// Sheet is the first worksheet of an opened .xls workbook.
type Sheet struct {
	book  *xlrd.Book
	sheet *xlrd.Sheet
}

// Open opens path and returns its first sheet.
// Reader diagnostics are discarded; failures come back as errors.
func Open(path string) (s *Sheet, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("open workbook: malformed file: %v", r)
		}
	}()

	book, err := xlrd.OpenWorkbook(path, &xlrd.OpenWorkbookOptions{Logfile: io.Discard})
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	if book.NSheets == 0 {
		return nil, ErrNoSheets
	}
	sheet, err := book.SheetByIndex(0)
	if err != nil {
		return nil, fmt.Errorf("first sheet: %w", err)
	}
	if sheet == nil {
		return nil, ErrNoSheets
	}
	return &Sheet{book: book, sheet: sheet}, nil
}

// NumRows returns the number of rows in the sheet.
func (s *Sheet) NumRows() int { return s.sheet.NRows }

// Date1904 reports whether the workbook was saved with the 1904 date system.
func (s *Sheet) Date1904() bool { return s.book.Datemode == 1 }

// Cell returns the typed cell at (row, col). Positions outside the sheet's
// used range are unreadable.
func (s *Sheet) Cell(row, col int) (c models.Cell, err error) {
	if row < 0 || col < 0 || row >= s.sheet.NRows || col >= s.sheet.NCols {
		return models.Cell{}, parser.UnreadableError(row, col, nil)
	}
	defer func() {
		if r := recover(); r != nil {
			c, err = models.Cell{}, parser.UnreadableError(row, col, fmt.Errorf("%v", r))
		}
	}()

	xc := s.sheet.Cell(row, col)
	if xc == nil {
		return models.Empty(), nil
	}
	return convert(xc.CType, xc.Value), nil
}

// convert maps an xlrd cell type and value onto the Cell variant.
// Formula cells arrive already resolved to the type of their cached result.
func convert(ctype int, value interface{}) models.Cell {
	switch ctype {
	case xlrd.XL_CELL_TEXT:
		text, _ := value.(string)
		if text == "" {
			return models.Empty()
		}
		return models.Text(text)
	case xlrd.XL_CELL_NUMBER:
		if v, ok := number(value); ok {
			return models.Number(v)
		}
	case xlrd.XL_CELL_DATE:
		if v, ok := number(value); ok {
			return models.Date(v)
		}
	case xlrd.XL_CELL_BOOLEAN:
		// TRUE and FALSE read as 1 and 0, as Excel stores them.
		if v, ok := number(value); ok {
			if v != 0 {
				return models.Number(1)
			}
			return models.Number(0)
		}
	case xlrd.XL_CELL_ERROR:
		code, _ := number(value)
		return models.Cell{Kind: models.KindError, Text: errorText(int(code))}
	}
	return models.Empty()
}

func number(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// errorText returns the display text of a BIFF error code.
func errorText(code int) string {
	switch code {
	case 0x00:
		return "#NULL!"
	case 0x07:
		return "#DIV/0!"
	case 0x0F:
		return "#VALUE!"
	case 0x17:
		return "#REF!"
	case 0x1D:
		return "#NAME?"
	case 0x24:
		return "#NUM!"
	case 0x2A:
		return "#N/A"
	}
	return fmt.Sprintf("#ERR%d", code)
}
