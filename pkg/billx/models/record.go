package models

// Columns is the fixed output schema, in order.
var Columns = []string{"Sr No", "Bill No", "Date", "Description", "Section", "Amount"}

// Record represents one extracted bill. Nil fields are absent.
type Record struct {
	// SrNo is the 1-based serial number in discovery order.
	SrNo int `json:"sr_no"`
	// BillNo is the raw bill number cell value (string or float64).
	BillNo interface{} `json:"bill_no"`
	// Date is the ISO 8601 calendar date, or the raw text when not a date.
	Date *string `json:"date"`
	// Description is the comma-joined multi-row description.
	Description *string `json:"description"`
	// Section is the raw classification code cell value (string or float64).
	Section interface{} `json:"section"`
	// Amount is the cleaned amount (int64 or float64).
	Amount interface{} `json:"amount"`
	// Source is the input file the record was read from.
	Source string `json:"-"`
}

// Empty reports whether every extracted field is absent.
func (r Record) Empty() bool {
	return r.BillNo == nil && r.Date == nil && r.Description == nil &&
		r.Section == nil && r.Amount == nil
}

// Row returns the record as a table row matching Columns. Absent fields are nil.
func (r Record) Row() []interface{} {
	row := []interface{}{r.SrNo, r.BillNo, nil, nil, r.Section, r.Amount}
	if r.Date != nil {
		row[2] = *r.Date
	}
	if r.Description != nil {
		row[3] = *r.Description
	}
	return row
}
