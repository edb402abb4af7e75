/*
Package types defines core data structures used throughout docpeek.

# Overview

The types package provides shared type definitions for:
  - File identifiers and the controls that reference them
  - Display classification (theory vs code)
  - The active viewer selection
  - Status line message kinds

# File Identifiers

FileID is a relative path such as "notes/algo_theory.md". It is resolved
against the configured source (a base URL or a local directory), used as
the content cache key, and shown as the viewer title.

# Controls

Control:
  - Discovered from an index page, a manifest or a directory scan
  - Kind is "copy" or "view"
  - Several controls may reference the same file

FileInfo:
  - One row per unique file in the TUI list
  - Aggregates the control kinds referencing the file
  - Tracks whether the content is cached

# Classification

Classify derives the display mode from the identifier alone: a file whose
name contains "theory" is narrative text rendered as markdown, anything
else is code. The mode is recomputed on every view and never persisted.

# Example

	c := types.Control{Kind: types.ControlView, File: "algo_theory.md"}
	types.Classify(c.File) // ModeTheory
	types.Classify("parser.rs") // ModeCode
*/
package types
