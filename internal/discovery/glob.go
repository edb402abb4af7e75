package discovery

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/studiowebux/docpeek/internal/types"
)

// FromGlob scans fsys for files matching any of the doublestar patterns
// and returns a copy and a view control for each, sorted by path
func FromGlob(fsys fs.FS, patterns []string) ([]types.Control, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to scan %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)

	controls := make([]types.Control, 0, len(files)*2)
	for _, f := range files {
		controls = append(controls,
			types.Control{Kind: types.ControlCopy, File: f},
			types.Control{Kind: types.ControlView, File: f},
		)
	}
	return controls, nil
}
