package parser

import (
	"strings"

	"github.com/ukaji3/billx-go/pkg/billx/models"
)

// ReadFields reads every field of the template from s.
// Unreadable cells leave their field absent; the returned record has no
// serial number or source set.
func ReadFields(s Sheet, t Template) models.Record {
	var rec models.Record

	if c, ok := readCell(s, t.BillNo.Row, t.BillNo.Col); ok {
		rec.BillNo, _ = verbatim(c)
	}
	if c, ok := readCell(s, t.Section.Row, t.Section.Col); ok {
		rec.Section, _ = verbatim(c)
	}
	if c, ok := readCell(s, t.Date.Row, t.Date.Col); ok {
		if d, ok := FormatDate(c, s.Date1904()); ok {
			rec.Date = &d
		}
	}
	if d, ok := ReadDescription(s, t.Description); ok {
		rec.Description = &d
	}
	if a, ok := ReadAmount(s, t.Amount, t.AmountScanStart); ok {
		rec.Amount = a
	}
	return rec
}

// ReadDescription collects the contiguous non-blank cells going down from
// start and joins them with ", ". When the start cell is blank or unreadable
// the block is taken to begin one row lower.
func ReadDescription(s Sheet, start Coord) (string, bool) {
	row := start.Row
	if c, ok := readCell(s, row, start.Col); !ok || c.IsBlank() {
		row++
	}

	var lines []string
	for ; ; row++ {
		c, ok := readCell(s, row, start.Col)
		if !ok || c.IsBlank() {
			break
		}
		lines = append(lines, strings.TrimSpace(c.String()))
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, ", "), true
}

// ReadAmount cleans the cell at primary. If that yields nothing, the column is
// scanned from scanStart to the last row and the first cleanable value wins.
func ReadAmount(s Sheet, primary Coord, scanStart int) (interface{}, bool) {
	if c, ok := readCell(s, primary.Row, primary.Col); ok {
		if v, ok := CleanNumber(c); ok {
			return v, true
		}
	}
	for row := scanStart; row < s.NumRows(); row++ {
		c, ok := readCell(s, row, primary.Col)
		if !ok {
			continue
		}
		if v, ok := CleanNumber(c); ok {
			return v, true
		}
	}
	return nil, false
}
