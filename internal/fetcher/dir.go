package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/studiowebux/docpeek/internal/types"
)

// DirFetcher reads files from a directory tree.
// Missing files map to a 404 StatusError so callers see one failure shape.
type DirFetcher struct {
	fsys fs.FS
}

// NewDir creates a fetcher over fsys
func NewDir(fsys fs.FS) *DirFetcher {
	return &DirFetcher{fsys: fsys}
}

// FS exposes the underlying file system (directory scans, serve mode)
func (f *DirFetcher) FS() fs.FS {
	return f.fsys
}

// Fetch reads the file named by the identifier
func (f *DirFetcher) Fetch(ctx context.Context, file types.FileID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, ok := CleanPath(file)
	if !ok {
		return "", badRequest(file)
	}

	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &StatusError{File: file, Status: http.StatusNotFound, StatusText: "404 Not Found"}
		}
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}

	return string(data), nil
}

// CleanPath turns a relative identifier into an fs.FS path.
// Identifiers escaping the root are rejected.
func CleanPath(file types.FileID) (string, bool) {
	name := strings.TrimPrefix(file, "./")
	name = strings.TrimPrefix(name, "/")
	name = path.Clean(name)
	if !fs.ValidPath(name) || name == "." {
		return "", false
	}
	return name, true
}

func badRequest(file types.FileID) *StatusError {
	return &StatusError{File: file, Status: http.StatusBadRequest, StatusText: "400 Bad Request"}
}
