package parser

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/xuri/excelize/v2"
)

// Coord is a 0-based (row, column) cell position.
type Coord struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// String returns the A1-style reference of the coordinate.
func (c Coord) String() string {
	name, err := excelize.CoordinatesToCellName(c.Col+1, c.Row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", c.Row, c.Col)
	}
	return name
}

// Template holds the cell positions of every field of a bill sheet.
type Template struct {
	// BillNo is the bill number cell.
	BillNo Coord
	// Date is the bill date cell.
	Date Coord
	// Section is the classification code cell.
	Section Coord
	// Description is the first description row; when blank the next row is used.
	Description Coord
	// Amount is the primary amount cell.
	Amount Coord
	// AmountScanStart is the first row of the fallback scan down the Amount column.
	AmountScanStart int
}

// DefaultTemplate returns the positions used by the bill sheets in circulation.
func DefaultTemplate() Template {
	return Template{
		BillNo:          Coord{Row: 1, Col: 8},  // I2
		Date:            Coord{Row: 10, Col: 8}, // I11
		Section:         Coord{Row: 17, Col: 1}, // B18
		Description:     Coord{Row: 19, Col: 1}, // B20
		Amount:          Coord{Row: 36, Col: 8}, // I37
		AmountScanStart: 19,
	}
}

// Validate rejects negative positions.
func (t Template) Validate() error {
	fields := map[string]Coord{
		"bill_no":     t.BillNo,
		"date":        t.Date,
		"section":     t.Section,
		"description": t.Description,
		"amount":      t.Amount,
	}
	for name, c := range fields {
		if c.Row < 0 || c.Col < 0 {
			return fmt.Errorf("template %s: negative coordinate (%d, %d)", name, c.Row, c.Col)
		}
	}
	if t.AmountScanStart < 0 {
		return fmt.Errorf("template amount_scan_start: negative row %d", t.AmountScanStart)
	}
	return nil
}

type coordOverride struct {
	Row *int `yaml:"row"`
	Col *int `yaml:"col"`
}

func (o *coordOverride) apply(c *Coord) {
	if o == nil {
		return
	}
	if o.Row != nil {
		c.Row = *o.Row
	}
	if o.Col != nil {
		c.Col = *o.Col
	}
}

type templateFile struct {
	BillNo          *coordOverride `yaml:"bill_no"`
	Date            *coordOverride `yaml:"date"`
	Section         *coordOverride `yaml:"section"`
	Description     *coordOverride `yaml:"description"`
	Amount          *coordOverride `yaml:"amount"`
	AmountScanStart *int           `yaml:"amount_scan_start"`
}

// ParseTemplate overlays the YAML document data on DefaultTemplate.
// Keys left out keep their default positions; unknown keys are an error.
func ParseTemplate(data []byte) (Template, error) {
	t := DefaultTemplate()
	var tf templateFile
	if err := yaml.UnmarshalWithOptions(data, &tf, yaml.Strict()); err != nil {
		return t, fmt.Errorf("parse template: %w", err)
	}
	tf.BillNo.apply(&t.BillNo)
	tf.Date.apply(&t.Date)
	tf.Section.apply(&t.Section)
	tf.Description.apply(&t.Description)
	tf.Amount.apply(&t.Amount)
	if tf.AmountScanStart != nil {
		t.AmountScanStart = *tf.AmountScanStart
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// LoadTemplate reads a YAML template override from path.
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTemplate(), fmt.Errorf("read template: %w", err)
	}
	return ParseTemplate(data)
}
