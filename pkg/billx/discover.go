package billx

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// InputFile is one workbook found under the extraction root.
type InputFile struct {
	// Path is the absolute path of the file.
	Path string
	// Name is the base file name; it is the sort key.
	Name string
}

// IsInputName reports whether name carries the input extension (case-insensitive).
func IsInputName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), Extension)
}

// Discover collects the .xls files under root and orders them by natural
// sort of their base names. Files with equal sort keys keep their walk order.
// When recursive is false only the top level of root is listed.
func Discover(root string, recursive bool) ([]InputFile, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotDirectory, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var files []InputFile
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// unreadable subtree: skip it, keep walking
			if d != nil && d.IsDir() && path != abs {
				return filepath.SkipDir
			}
			return walkErr
		}
		if d.IsDir() {
			if path != abs && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !IsInputName(d.Name()) {
			return nil
		}
		files = append(files, InputFile{Path: path, Name: d.Name()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	slices.SortStableFunc(files, func(a, b InputFile) int {
		return compareNatural(a.Name, b.Name)
	})
	return files, nil
}
