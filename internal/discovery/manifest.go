package discovery

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/studiowebux/docpeek/internal/types"
)

// Manifest lists files explicitly
//
//	files:
//	  - path: algo_theory.md
//	    label: Big O notation
//	  - path: parser.rs
//	    view: false
type Manifest struct {
	Files []ManifestEntry `yaml:"files"`
}

// ManifestEntry is one file. Copy and View default to true.
type ManifestEntry struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label,omitempty"`
	Copy  *bool  `yaml:"copy,omitempty"`
	View  *bool  `yaml:"view,omitempty"`
}

func enabled(b *bool) bool {
	return b == nil || *b
}

// FromManifest reads a YAML manifest into controls, copy before view for
// each entry
func FromManifest(r io.Reader) ([]types.Control, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	var controls []types.Control
	for i, e := range m.Files {
		if e.Path == "" {
			return nil, fmt.Errorf("manifest entry %d has no path", i+1)
		}
		if enabled(e.Copy) {
			controls = append(controls, types.Control{Kind: types.ControlCopy, File: e.Path, Label: e.Label})
		}
		if enabled(e.View) {
			controls = append(controls, types.Control{Kind: types.ControlView, File: e.Path, Label: e.Label})
		}
	}
	return controls, nil
}
