package types

import "strings"

// FileID names a retrievable text resource by its relative path.
// It doubles as the cache key and the modal title.
type FileID = string

// ControlKind identifies what an activatable control does with its file
type ControlKind string

const (
	ControlCopy ControlKind = "copy" // Copy raw text to the clipboard
	ControlView ControlKind = "view" // Open the file in the viewer modal
)

// Control is one activatable element discovered at startup
type Control struct {
	Kind  ControlKind `json:"kind" yaml:"kind"`
	File  FileID      `json:"file" yaml:"file"`
	Label string      `json:"label,omitempty" yaml:"label,omitempty"`
}

// DisplayMode is how a file is formatted in the viewer.
// It is always derived from the identifier, never stored.
type DisplayMode string

const (
	ModeTheory DisplayMode = "theory" // Narrative text rendered as markdown
	ModeCode   DisplayMode = "code"   // Source code, optionally highlighted
)

// theoryMarker is the naming convention that flags narrative files
const theoryMarker = "theory"

// Classify derives the display mode of a file from its name
func Classify(file FileID) DisplayMode {
	if strings.Contains(file, theoryMarker) {
		return ModeTheory
	}
	return ModeCode
}

// Selection is the file currently shown in the viewer
type Selection struct {
	File    FileID      `json:"file"`
	Content string      `json:"content"`
	Mode    DisplayMode `json:"mode"`
}

// Empty reports whether nothing has been selected yet
func (s *Selection) Empty() bool {
	return s == nil || s.File == ""
}

// StatusKind styles a status line message
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// FileInfo is a row in the file list: one file and the controls that
// reference it
type FileInfo struct {
	File    FileID        `json:"file"`
	Label   string        `json:"label,omitempty"`
	Kinds   []ControlKind `json:"kinds"`
	Mode    DisplayMode   `json:"mode"`
	Cached  bool          `json:"cached"`
	LoadErr string        `json:"loadError,omitempty"`
}

// Has reports whether the file is referenced by a control of the given kind
func (f FileInfo) Has(kind ControlKind) bool {
	for _, k := range f.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
