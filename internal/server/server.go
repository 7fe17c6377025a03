// Package server exposes bill extraction over HTTP uploads.
package server

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ukaji3/billx-go/internal/config"
	"github.com/ukaji3/billx-go/pkg/billx"
)

//go:embed web/index.html
var indexHTML []byte

// TokenCookie is the cookie echoing the caller's download token.
const TokenCookie = "downloadToken"

// Server serves the upload form and turns uploaded bill sheets into one
// extracted table per request. Each request works in its own directory
// under cfg.TempDir.
type Server struct {
	cfg    *config.Config
	opts   billx.Options
	logger *slog.Logger
}

// New creates a Server. opts.Recursive is set per route.
func New(cfg *config.Config, opts billx.Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, opts: opts, logger: logger}
}

// HTTPServer wraps the routes in an http.Server listening on cfg.Addr.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.RegisterRoutes(),
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// run is the isolated working directory of one request.
type run struct {
	id     string
	dir    string
	input  string
	output string
}

func (s *Server) newRun() (*run, error) {
	id := uuid.NewString()
	dir := filepath.Join(s.cfg.TempDir, "billx-"+id)
	input := filepath.Join(dir, "input")
	if err := os.MkdirAll(input, 0o700); err != nil {
		return nil, err
	}
	return &run{id: id, dir: dir, input: input, output: filepath.Join(dir, s.cfg.OutputName)}, nil
}

func (r *run) cleanup() error {
	return os.RemoveAll(r.dir)
}
