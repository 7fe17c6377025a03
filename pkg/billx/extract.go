package billx

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ukaji3/billx-go/pkg/billx/models"
	"github.com/ukaji3/billx-go/pkg/billx/output"
	"github.com/ukaji3/billx-go/pkg/billx/parser"
)

// Summary describes one extraction run.
type Summary struct {
	// Found is the number of input files discovered.
	Found int `json:"found"`
	// Extracted is the number of records in the output table.
	Extracted int `json:"extracted"`
	// Skipped counts files whose fields were all absent.
	Skipped int `json:"skipped"`
	// Failed counts files that could not be opened or read.
	Failed int `json:"failed"`
	// Output is the path of the written table, if any.
	Output string `json:"output,omitempty"`
}

// Extract discovers the input files under root and reads one record from each.
// Per-file failures are logged and counted, never returned; the error is
// non-nil only when root cannot be listed.
func Extract(root string, opts Options) ([]models.Record, Summary, error) {
	files, err := Discover(root, opts.Recursive)
	if err != nil {
		return nil, Summary{}, err
	}
	records, summary := ExtractFiles(files, opts)
	return records, summary, nil
}

// ExtractFiles reads the given files in order. Serial numbers start at 1 and
// advance only when a record is appended.
func ExtractFiles(files []InputFile, opts Options) ([]models.Record, Summary) {
	logger := opts.logger()
	tmpl := opts.template()
	open := opts.open()

	summary := Summary{Found: len(files)}
	if len(files) == 0 {
		logger.Warn("extract.no_files")
	} else {
		logger.Info("extract.files_found", "count", len(files))
	}

	records := make([]models.Record, 0, len(files))
	srNo := 1
	for _, file := range files {
		rec, err := extractFile(open, file, tmpl)
		if err != nil {
			summary.Failed++
			logger.Warn("extract.file.error", "path", file.Path, "error", err)
			continue
		}
		logger.Debug("extract.file.fields",
			"file", file.Name,
			"bill_no", rec.BillNo,
			"date", deref(rec.Date),
			"section", rec.Section,
			"description", deref(rec.Description),
			"amount", rec.Amount,
		)
		if rec.Empty() && !opts.KeepEmpty {
			summary.Skipped++
			logger.Info("extract.file.empty", "file", file.Name)
			continue
		}
		rec.SrNo = srNo
		srNo++
		records = append(records, rec)
	}

	summary.Extracted = len(records)
	return records, summary
}

// extractFile opens one workbook and reads its fields.
func extractFile(open OpenFunc, file InputFile, tmpl parser.Template) (rec models.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewFileError(file.Path, "read", fmt.Errorf("%v", r))
		}
	}()

	sheet, err := open(file.Path)
	if err != nil {
		return models.Record{}, NewFileError(file.Path, "open", err)
	}
	rec = parser.ReadFields(sheet, tmpl)
	rec.Source = file.Path
	return rec, nil
}

// Run extracts every record under root and writes the table to outPath as
// XLSX. The output is written even when no files were found.
func Run(root, outPath string, opts Options) (Summary, error) {
	start := time.Now()
	logger := opts.logger()

	records, summary, err := Extract(root, opts)
	if err != nil {
		return summary, err
	}
	if err := output.WriteXLSX(outPath, records); err != nil {
		return summary, fmt.Errorf("write output: %w", err)
	}
	summary.Output = outPath

	logger.Info("extract.ok",
		slog.Int("found", summary.Found),
		slog.Int("extracted", summary.Extracted),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.String("output", outPath),
		slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return summary, nil
}

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
