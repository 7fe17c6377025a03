// Package main provides the CLI entry point for billx.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/billx-go/internal/config"
	"github.com/ukaji3/billx-go/internal/server"
	"github.com/ukaji3/billx-go/pkg/billx"
	"github.com/ukaji3/billx-go/pkg/billx/models"
	"github.com/ukaji3/billx-go/pkg/billx/output"
	"github.com/ukaji3/billx-go/pkg/billx/parser"
)

var (
	outputPath   string
	format       string
	pretty       bool
	recursive    bool
	keepEmpty    bool
	templatePath string
	verbose      bool
	addr         string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "billx",
		Short: "Consolidate legacy .xls bill sheets into one table",
		Long: `billx reads bill number, date, description, section and amount from
fixed cells of every .xls bill sheet under a directory and writes them as
one table.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file field values")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "", "YAML file overriding field cell positions")

	extractCmd := &cobra.Command{
		Use:   "extract [dir]",
		Short: "Extract bills under a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "extracted_output.xlsx", "Output file path (- for stdout with --format json)")
	extractCmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx, json")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	extractCmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "Descend into subdirectories")
	extractCmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "Keep rows for files with no extracted fields")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload form and extraction endpoints",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from BILLX_ADDR)")

	rootCmd.AddCommand(extractCmd, serveCmd)
	return rootCmd
}

func loadTemplate(path string) (*parser.Template, error) {
	if path == "" {
		return nil, nil
	}
	tmpl, err := parser.LoadTemplate(path)
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputDir := args[0]

	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return err
	}
	opts := billx.Options{
		Recursive: recursive,
		KeepEmpty: keepEmpty,
		Template:  tmpl,
	}

	switch format {
	case "xlsx":
		summary, err := billx.Run(inputDir, outputPath, opts)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d of %d files to %s\n", summary.Extracted, summary.Found, summary.Output)
		return nil
	case "json":
		records, _, err := billx.Extract(inputDir, opts)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		return writeJSON(cmd, records)
	default:
		return fmt.Errorf("invalid format: %s (must be xlsx or json)", format)
	}
}

func writeJSON(cmd *cobra.Command, records []models.Record) error {
	if outputPath == "-" {
		return output.WriteJSON(cmd.OutOrStdout(), records, pretty)
	}
	if err := output.WriteJSONFile(outputPath, records, pretty); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if addr != "" {
		cfg.Addr = addr
	}
	if templatePath == "" {
		templatePath = cfg.TemplatePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return err
	}
	opts := billx.Options{KeepEmpty: cfg.KeepEmpty, Template: tmpl}

	srv := server.New(cfg, opts, slog.Default()).HTTPServer()
	slog.Info("server.listen", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("cannot start server: %w", err)
	}
	return nil
}
