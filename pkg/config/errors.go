package config

import (
	"fmt"
	"io/fs"
	"strings"
)

// FileNotFoundError is returned when the config file does not exist.
type FileNotFoundError struct {
	// Path is the absolute path that was looked up.
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("dao repo generation config file not found: %s", e.Path)
}

// Unwrap lets errors.Is(err, fs.ErrNotExist) match.
func (e *FileNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// UnsupportedFormatError is returned when no codec is registered for a
// file's extension.
type UnsupportedFormatError struct {
	// Extension is the extension as it appeared in the path.
	Extension string

	// Supported lists the registered extensions.
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Extension
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported file extension, must be one of (%s) but was: %s",
		strings.Join(e.Supported, ", "), ext)
}
