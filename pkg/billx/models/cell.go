// Package models defines data structures for bill extraction.
package models

import (
	"strconv"
	"strings"
)

// Kind is the type tag carried alongside a raw cell value.
type Kind int

const (
	// KindEmpty is a missing or blank cell.
	KindEmpty Kind = iota
	// KindNumber is a plain numeric cell.
	KindNumber
	// KindText is a string cell.
	KindText
	// KindDate is a numeric cell formatted as a date (the value is the date serial).
	KindDate
	// KindError is an error or otherwise unusable cell.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	case KindError:
		return "error"
	}
	return "unknown"
}

// Cell is a single raw cell value read from a sheet.
type Cell struct {
	// Kind tells which payload field is meaningful.
	Kind Kind
	// Number holds the value for KindNumber and KindDate.
	Number float64
	// Text holds the value for KindText.
	Text string
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{Kind: KindEmpty} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: KindNumber, Number: v} }

// Date returns a date-serial cell.
func Date(serial float64) Cell { return Cell{Kind: KindDate, Number: serial} }

// Text returns a string cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// IsNumeric reports whether the cell carries a number (plain or date serial).
func (c Cell) IsNumeric() bool {
	return c.Kind == KindNumber || c.Kind == KindDate
}

// IsBlank reports whether the cell is empty or stringifies to whitespace only.
func (c Cell) IsBlank() bool {
	return strings.TrimSpace(c.String()) == ""
}

// String renders the cell value as text. Integral numbers render without a
// fractional part.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber, KindDate:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return ""
}

// Value returns the payload as a plain Go value: string, float64, or nil for
// empty and error cells.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber, KindDate:
		return c.Number
	}
	return nil
}
