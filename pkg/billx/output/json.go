package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/billx-go/pkg/billx/models"
)

// WriteJSON writes the table as a JSON array of records. An empty table is
// written as [].
func WriteJSON(w io.Writer, records []models.Record, pretty bool) error {
	if records == nil {
		records = []models.Record{}
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(records)
}

// WriteJSONFile writes the table to path as JSON. Like WriteXLSX it replaces
// path atomically.
func WriteJSONFile(path string, records []models.Record, pretty bool) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteJSON(w, records, pretty)
	})
}
