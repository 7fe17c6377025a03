package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ukaji3/billx-go/pkg/billx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegisterRoutes returns the router serving the upload form, the health
// check and both upload endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.home)
	r.Get("/health", s.healthHandler)
	r.Post("/upload-folder", s.UploadFolder)
	r.Post("/upload-zip", s.UploadZip)

	return r
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) bool {
	limit := s.cfg.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Upload too large", http.StatusRequestEntityTooLarge)
			return false
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			http.Error(w, "Failed to parse upload: "+err.Error(), http.StatusBadRequest)
			return false
		}
	}
	return true
}

// UploadFolder extracts the .xls files posted under the "folder" field.
// Other files are ignored; directory parts of the names are dropped.
func (s *Server) UploadFolder(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File["folder"]
	}
	if len(headers) == 0 {
		http.Error(w, "No folder uploaded", http.StatusBadRequest)
		return
	}

	rn, err := s.newRun()
	if err != nil {
		s.logger.Error("upload.workdir", "error", err)
		http.Error(w, "Failed to prepare upload", http.StatusInternalServerError)
		return
	}
	defer s.finish(rn)

	saved := 0
	for _, h := range headers {
		name := filepath.Base(h.Filename)
		if !billx.IsInputName(name) {
			continue
		}
		if err := saveUpload(h, filepath.Join(rn.input, name)); err != nil {
			s.logger.Error("upload.save", "run_id", rn.id, "file", name, "error", err)
			http.Error(w, "Failed to store upload", http.StatusInternalServerError)
			return
		}
		saved++
	}
	s.logger.Info("upload.folder", "run_id", rn.id, "files", len(headers), "saved", saved)

	s.extractAndSend(w, r, rn, false)
}

// UploadZip extracts the .xls files inside the archive posted as "zipfile".
func (s *Server) UploadZip(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	file, header, err := r.FormFile("zipfile")
	if err != nil {
		http.Error(w, "No zip uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rn, err := s.newRun()
	if err != nil {
		s.logger.Error("upload.workdir", "error", err)
		http.Error(w, "Failed to prepare upload", http.StatusInternalServerError)
		return
	}
	defer s.finish(rn)

	archive := filepath.Join(rn.dir, "upload.zip")
	if err := saveUpload(header, archive); err != nil {
		s.logger.Error("upload.save", "run_id", rn.id, "error", err)
		http.Error(w, "Failed to store upload", http.StatusInternalServerError)
		return
	}
	n, err := Unzip(archive, rn.input, s.cfg.MaxUploadMB<<20)
	if err != nil {
		s.logger.Warn("upload.unzip", "run_id", rn.id, "error", err)
		http.Error(w, "Invalid zip archive: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.logger.Info("upload.zip", "run_id", rn.id, "archive", header.Filename, "entries", n)

	s.extractAndSend(w, r, rn, true)
}

func (s *Server) extractAndSend(w http.ResponseWriter, r *http.Request, rn *run, recursive bool) {
	opts := s.opts
	opts.Recursive = recursive
	opts.Logger = s.logger.With("run_id", rn.id)

	if _, err := billx.Run(rn.input, rn.output, opts); err != nil {
		s.logger.Error("upload.extract", "run_id", rn.id, "error", err)
		http.Error(w, "Extraction failed", http.StatusInternalServerError)
		return
	}

	out, err := os.Open(rn.output)
	if err != nil {
		s.logger.Error("upload.output", "run_id", rn.id, "error", err)
		http.Error(w, "Extraction failed", http.StatusInternalServerError)
		return
	}
	defer out.Close()
	info, err := out.Stat()
	if err != nil {
		http.Error(w, "Extraction failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: TokenCookie, Value: r.FormValue(TokenCookie), Path: "/"})
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.OutputName))
	http.ServeContent(w, r, s.cfg.OutputName, info.ModTime(), out)
}

func (s *Server) finish(rn *run) {
	if err := rn.cleanup(); err != nil {
		s.logger.Warn("upload.cleanup", "run_id", rn.id, "error", err)
	}
}

func saveUpload(h *multipart.FileHeader, dest string) error {
	src, err := h.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
