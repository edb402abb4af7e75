package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/studiowebux/docpeek/internal/config"
	"github.com/studiowebux/docpeek/internal/types"
)

// Fetcher retrieves the text content of a file identifier
type Fetcher interface {
	Fetch(ctx context.Context, file types.FileID) (string, error)
}

// StatusError is returned when the source answers with a non-success status
type StatusError struct {
	File       types.FileID
	Status     int
	StatusText string
}

func (e *StatusError) Error() string {
	if e.StatusText != "" {
		return fmt.Sprintf("%s: %s", e.File, e.StatusText)
	}
	return fmt.Sprintf("%s: status %d", e.File, e.Status)
}

// NotFound reports whether the source had no such file
func (e *StatusError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// Options configures fetcher construction
type Options struct {
	// Timeout of zero keeps the transport defaults
	Timeout time.Duration
	// Client overrides the HTTP client (tests)
	Client *http.Client
}

// New picks an HTTP fetcher for http(s) sources and a directory fetcher otherwise
func New(source string, opts Options) (Fetcher, error) {
	if config.IsRemote(source) {
		return NewHTTP(source, opts)
	}

	dir, err := config.ResolveSource(source)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open source %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", dir)
	}

	return NewDir(os.DirFS(dir)), nil
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.2fKB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.2fMB", float64(bytes)/(1024.0*1024.0))
}
