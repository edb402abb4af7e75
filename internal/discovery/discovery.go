// Package discovery finds the file controls a session works with: from a
// YAML manifest, from the copy/view buttons of an index page, or from a
// directory scan.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/studiowebux/docpeek/internal/config"
	"github.com/studiowebux/docpeek/internal/fetcher"
	"github.com/studiowebux/docpeek/internal/types"
)

// Origin names where the controls came from
type Origin string

const (
	OriginManifest Origin = "manifest"
	OriginIndex    Origin = "index"
	OriginGlob     Origin = "glob"
)

// Result is the outcome of discovery
type Result struct {
	Origin   Origin
	Path     string // manifest or index path, empty for a scan
	Controls []types.Control
}

// Files returns the unique identifiers in first-seen order
func (r *Result) Files() []types.FileID {
	return UniqueFiles(r.Controls)
}

// fsProvider is implemented by fetchers backed by a local directory
type fsProvider interface {
	FS() fs.FS
}

// Load discovers controls with precedence manifest, index page, directory
// scan. A missing index page on a local source falls back to the scan.
func Load(ctx context.Context, cfg *config.Config, f fetcher.Fetcher) (*Result, error) {
	if cfg.Manifest != "" {
		text, err := f.Fetch(ctx, cfg.Manifest)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", cfg.Manifest, err)
		}
		controls, err := FromManifest(strings.NewReader(text))
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", cfg.Manifest, err)
		}
		return &Result{Origin: OriginManifest, Path: cfg.Manifest, Controls: controls}, nil
	}

	provider, local := f.(fsProvider)

	if cfg.Index != "" {
		text, err := f.Fetch(ctx, cfg.Index)
		switch {
		case err == nil:
			controls, err := FromHTML(strings.NewReader(text))
			if err != nil {
				return nil, fmt.Errorf("failed to parse index %s: %w", cfg.Index, err)
			}
			return &Result{Origin: OriginIndex, Path: cfg.Index, Controls: controls}, nil
		case local && isNotFound(err):
			// scan below
		default:
			return nil, fmt.Errorf("failed to read index %s: %w", cfg.Index, err)
		}
	}

	if !local {
		return nil, fmt.Errorf("remote source %s needs an index page or a manifest", cfg.Source)
	}

	controls, err := FromGlob(provider.FS(), cfg.Include)
	if err != nil {
		return nil, err
	}
	return &Result{Origin: OriginGlob, Controls: controls}, nil
}

func isNotFound(err error) bool {
	var statusErr *fetcher.StatusError
	return errors.As(err, &statusErr) && statusErr.NotFound()
}

// UniqueFiles collects the identifiers referenced by controls, without
// duplicates, in first-seen order
func UniqueFiles(controls []types.Control) []types.FileID {
	seen := make(map[types.FileID]bool, len(controls))
	files := make([]types.FileID, 0, len(controls))
	for _, c := range controls {
		if c.File == "" || seen[c.File] {
			continue
		}
		seen[c.File] = true
		files = append(files, c.File)
	}
	return files
}

// Rows aggregates controls into one FileInfo per file, in first-seen order
func Rows(controls []types.Control) []types.FileInfo {
	index := make(map[types.FileID]int, len(controls))
	var rows []types.FileInfo

	for _, c := range controls {
		if c.File == "" {
			continue
		}
		i, ok := index[c.File]
		if !ok {
			index[c.File] = len(rows)
			rows = append(rows, types.FileInfo{
				File:  c.File,
				Label: c.Label,
				Mode:  types.Classify(c.File),
			})
			i = len(rows) - 1
		}
		row := &rows[i]
		if row.Label == "" {
			row.Label = c.Label
		}
		if !row.Has(c.Kind) {
			row.Kinds = append(row.Kinds, c.Kind)
		}
	}
	return rows
}
