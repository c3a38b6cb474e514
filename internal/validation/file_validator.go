// Package validation checks the files the command line tool reads and writes
// before any parsing happens.
package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxInputBytes caps the size of a period input file
const DefaultMaxInputBytes int64 = 10 << 20

var (
	// ErrNotAFile is returned when a path names a directory
	ErrNotAFile = errors.New("not a regular file")

	// ErrUnsupportedExtension is returned for input files the reader cannot parse
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrTemporaryFile is returned for spreadsheet lock files such as ~$books.xlsx
	ErrTemporaryFile = errors.New("temporary spreadsheet file")

	// ErrFileTooLarge is returned when an input file exceeds the size limit
	ErrFileTooLarge = errors.New("file too large")

	// ErrEmptyFile is returned for zero-byte input files
	ErrEmptyFile = errors.New("file is empty")
)

// InputExtensions lists the extensions accepted for period input files
var InputExtensions = []string{".json", ".yaml", ".yml", ".xlsx"}

// FileValidator validates input and output paths for the command line tool
type FileValidator struct {
	logger   *slog.Logger
	maxBytes int64
}

// NewFileValidator creates a new file validator. maxBytes <= 0 selects DefaultMaxInputBytes.
func NewFileValidator(logger *slog.Logger, maxBytes int64) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	return &FileValidator{
		logger:   logger,
		maxBytes: maxBytes,
	}
}

// ValidateInputFile checks that path is a readable, non-empty period file of a
// supported type and within the size limit
func (v *FileValidator) ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		v.logger.Error("Input file not accessible",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("input file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input file %s: %w", path, ErrNotAFile)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !hasExtension(InputExtensions, ext) {
		return fmt.Errorf("input file %s: %w %q (want one of %s)",
			path, ErrUnsupportedExtension, ext, strings.Join(InputExtensions, ", "))
	}
	if strings.HasPrefix(filepath.Base(path), "~$") {
		v.logger.Warn("Skipping temporary Excel file", slog.String("file", path))
		return fmt.Errorf("input file %s: %w", path, ErrTemporaryFile)
	}

	switch {
	case info.Size() == 0:
		return fmt.Errorf("input file %s: %w", path, ErrEmptyFile)
	case info.Size() > v.maxBytes:
		return fmt.Errorf("input file %s: %w (%d bytes, limit %d)", path, ErrFileTooLarge, info.Size(), v.maxBytes)
	}

	// Opening surfaces permission problems before parsing starts
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("input file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("Input file validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputFile ensures the parent directory of path exists, creating it
// if needed, and that path does not name a directory
func (v *FileValidator) ValidateOutputFile(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output file %s: %w", path, ErrNotAFile)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	v.logger.Debug("Output file validated", slog.String("file", path))
	return nil
}

func hasExtension(allowed []string, ext string) bool {
	for _, a := range allowed {
		if a == ext {
			return true
		}
	}
	return false
}
