package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/billx-go/pkg/billx/models"
	"github.com/xuri/excelize/v2"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// CleanNumber normalizes a raw cell into a number.
// Numeric cells are returned unchanged as float64; text is cleaned with
// CleanNumberText. Empty and error cells are absent.
func CleanNumber(c models.Cell) (interface{}, bool) {
	switch c.Kind {
	case models.KindNumber, models.KindDate:
		return c.Number, true
	case models.KindText:
		return CleanNumberText(c.Text)
	}
	return nil, false
}

// CleanNumberText strips currency symbols, separators and any other non-numeric
// characters from s and parses what remains.
// Returns int64 when there is no decimal point, float64 otherwise.
func CleanNumberText(s string) (interface{}, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	s = nonNumeric.ReplaceAllString(s, "")
	switch s {
	case "", ".", "-", "-.", "-0":
		return nil, false
	}
	return parseValue(s)
}

// parseValue parses an already stripped numeric string.
func parseValue(s string) (interface{}, bool) {
	if !strings.Contains(s, ".") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

// FormatDate converts a raw date cell to an ISO 8601 date string.
// Date serials and positive numbers go through the workbook epoch; a serial the
// epoch conversion rejects falls back to its plain string form.
// Text is trimmed. Empty, error and whitespace-only cells are absent.
func FormatDate(c models.Cell, date1904 bool) (string, bool) {
	switch c.Kind {
	case models.KindDate, models.KindNumber:
		if c.Kind == models.KindDate || c.Number > 0 {
			t, err := excelize.ExcelDateToTime(c.Number, date1904)
			if err != nil {
				return c.String(), true
			}
			return t.Format("2006-01-02"), true
		}
		return c.String(), true
	case models.KindText:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return "", false
		}
		return s, true
	}
	return "", false
}

// verbatim returns the raw cell payload, treating empty text as absent.
func verbatim(c models.Cell) (interface{}, bool) {
	v := c.Value()
	if v == nil || v == "" {
		return nil, false
	}
	return v, true
}
