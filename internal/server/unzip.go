package server

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsafePath indicates an archive entry that would land outside the destination.
	ErrUnsafePath = errors.New("archive entry escapes destination")
	// ErrArchiveTooLarge indicates the archive expands past the size limit.
	ErrArchiveTooLarge = errors.New("archive expands past size limit")
)

// Unzip extracts every entry of the archive at src under dest, keeping its
// directory structure. At most maxBytes are written in total.
// Returns the number of files written.
func Unzip(src, dest string, maxBytes int64) (int, error) {
	zr, err := zip.OpenReader(src)
	if errors.Is(err, zip.ErrInsecurePath) {
		zr.Close()
		return 0, fmt.Errorf("%w: %v", ErrUnsafePath, err)
	}
	if err != nil {
		return 0, err
	}
	defer zr.Close()

	root, err := filepath.Abs(dest)
	if err != nil {
		return 0, err
	}

	written := int64(0)
	files := 0
	for _, f := range zr.File {
		target := filepath.Join(root, filepath.FromSlash(f.Name))
		if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return files, fmt.Errorf("%w: %s", ErrUnsafePath, f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o700); err != nil {
				return files, err
			}
			continue
		}
		if !f.Mode().IsRegular() {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
			return files, err
		}
		n, err := extractEntry(f, target, maxBytes-written)
		written += n
		if err != nil {
			return files, fmt.Errorf("%s: %w", f.Name, err)
		}
		files++
	}
	return files, nil
}

func extractEntry(f *zip.File, target string, budget int64) (int64, error) {
	rc, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, io.LimitReader(rc, budget+1))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}
	if n > budget {
		return n, ErrArchiveTooLarge
	}
	return n, nil
}
