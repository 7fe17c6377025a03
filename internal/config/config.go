// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Addr is the listen address of the upload server.
	Addr string
	// TempDir is the parent of the per-request working directories.
	TempDir string
	// MaxUploadMB bounds the size of one upload request.
	MaxUploadMB int64
	// TemplatePath is an optional YAML template override.
	TemplatePath string
	// KeepEmpty keeps rows for files whose fields are all absent.
	KeepEmpty bool
	// OutputName is the download file name of the extracted table.
	OutputName string
}

// Load reads .env files (a missing file is fine) and then the environment.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("config.dotenv", "error", err)
	}
	return &Config{
		Addr:         getEnv("BILLX_ADDR", ":5000"),
		TempDir:      getEnv("BILLX_TEMP_DIR", os.TempDir()),
		MaxUploadMB:  getEnvAsInt64("BILLX_MAX_UPLOAD_MB", 100),
		TemplatePath: getEnv("BILLX_TEMPLATE", ""),
		KeepEmpty:    getEnvAsBool("BILLX_KEEP_EMPTY", false),
		OutputName:   getEnv("BILLX_OUTPUT_NAME", "extracted_output.xlsx"),
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("BILLX_ADDR is required")
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("BILLX_MAX_UPLOAD_MB must be positive")
	}
	if !strings.HasSuffix(strings.ToLower(c.OutputName), ".xlsx") {
		return errors.New("BILLX_OUTPUT_NAME must end in .xlsx")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
