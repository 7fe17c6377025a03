// Package parser reads bill fields from a single-sheet workbook laid out on a
// fixed template.
package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/billx-go/pkg/billx/models"
)

// ErrCellUnreadable indicates a cell lookup outside the sheet or into a
// malformed region of it.
var ErrCellUnreadable = errors.New("cell unreadable")

// Sheet is the read surface of the first worksheet of a workbook.
// Rows and columns are 0-based.
type Sheet interface {
	// Cell returns the cell at (row, col) or an error wrapping ErrCellUnreadable.
	Cell(row, col int) (models.Cell, error)
	// NumRows returns the number of rows in the sheet.
	NumRows() int
	// Date1904 reports whether date serials use the 1904 epoch.
	Date1904() bool
}

// UnreadableError builds the error returned for an unreadable cell.
func UnreadableError(row, col int, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: row %d, col %d", ErrCellUnreadable, row, col)
	}
	return fmt.Errorf("%w: row %d, col %d: %v", ErrCellUnreadable, row, col, cause)
}

// readCell returns the cell at (row, col) and whether it could be read.
func readCell(s Sheet, row, col int) (models.Cell, bool) {
	c, err := s.Cell(row, col)
	if err != nil {
		return models.Empty(), false
	}
	return c, true
}
