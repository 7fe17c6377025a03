// Package billx extracts bill records from a directory of legacy .xls bill
// sheets and consolidates them into one table.
package billx

import (
	"log/slog"

	"github.com/ukaji3/billx-go/pkg/billx/parser"
	"github.com/ukaji3/billx-go/pkg/billx/xls"
)

// Extension is the file extension of the input workbooks.
const Extension = ".xls"

// OpenFunc opens an input workbook and returns its first sheet.
type OpenFunc func(path string) (parser.Sheet, error)

// Options configures extraction behavior.
type Options struct {
	// Recursive descends into subdirectories of the root. Archive uploads
	// unpack into nested trees and need this.
	Recursive bool
	// KeepEmpty keeps a row for files whose fields are all absent.
	KeepEmpty bool
	// Template holds the field positions. If nil, DefaultTemplate is used.
	Template *parser.Template
	// Open opens input workbooks. If nil, files are read as .xls.
	Open OpenFunc
	// Logger receives progress and per-file diagnostics. If nil, slog.Default is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Recursive: true,
	}
}

func (o Options) template() parser.Template {
	if o.Template != nil {
		return *o.Template
	}
	return parser.DefaultTemplate()
}

func (o Options) open() OpenFunc {
	if o.Open != nil {
		return o.Open
	}
	return openXLS
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func openXLS(path string) (parser.Sheet, error) {
	s, err := xls.Open(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
