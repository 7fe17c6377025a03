package billx

import (
	"errors"
	"fmt"
)

// ErrNotDirectory indicates the extraction root is missing or not a directory.
var ErrNotDirectory = errors.New("not a directory")

// FileError represents a failure to process one input file.
type FileError struct {
	Path  string
	Stage string // "open", "read"
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Stage, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(path, stage string, err error) *FileError {
	return &FileError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
