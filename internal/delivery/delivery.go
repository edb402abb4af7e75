// Package delivery implements the two user actions on a file: copying its
// raw text to the clipboard and viewing it formatted.
package delivery

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/studiowebux/docpeek/internal/clip"
	"github.com/studiowebux/docpeek/internal/content"
	"github.com/studiowebux/docpeek/internal/logger"
	"github.com/studiowebux/docpeek/internal/render"
	"github.com/studiowebux/docpeek/internal/types"
)

// ErrNoSelection is returned by CopyCurrent when nothing is being viewed
var ErrNoSelection = errors.New("no file is being viewed")

// ClipboardError wraps a failed clipboard write
type ClipboardError struct {
	File types.FileID
	Err  error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("Failed to copy %s to clipboard: %v", e.File, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// CopiedMessage is the status text shown after a successful copy
func CopiedMessage(file types.FileID) string {
	return fmt.Sprintf(`Content of "%s" copied to clipboard!`, file)
}

// Helper runs copy and view actions against the shared content manager
type Helper struct {
	content   *content.Manager
	clipboard clip.Writer
	renderers *render.Set
	log       *zap.Logger
}

// NewHelper wires a helper. The renderer set is chosen once by the caller.
func NewHelper(m *content.Manager, w clip.Writer, r *render.Set, log *zap.Logger) *Helper {
	return &Helper{
		content:   m,
		clipboard: w,
		renderers: r,
		log:       logger.OrNop(log),
	}
}

// Content exposes the content manager
func (h *Helper) Content() *content.Manager {
	return h.content
}

// Renderers exposes the renderer set
func (h *Helper) Renderers() *render.Set {
	return h.renderers
}

// Copy places the raw text of a file on the clipboard and returns the
// success message. The clipboard is written exactly once, and only when
// the content was obtained.
func (h *Helper) Copy(ctx context.Context, file types.FileID) (string, error) {
	text, err := h.content.GetContent(ctx, file)
	if err != nil {
		return "", err
	}
	return h.write(file, text)
}

// CopyCurrent copies the selection being viewed without refetching
func (h *Helper) CopyCurrent(sel *types.Selection) (string, error) {
	if sel.Empty() {
		return "", ErrNoSelection
	}
	return h.write(sel.File, sel.Content)
}

func (h *Helper) write(file types.FileID, text string) (string, error) {
	if err := h.clipboard.WriteAll(text); err != nil {
		h.log.Error("Clipboard write failed", zap.String("file", file), zap.Error(err))
		return "", &ClipboardError{File: file, Err: err}
	}
	h.log.Info("Copied to clipboard", zap.String("file", file), zap.Int("bytes", len(text)))
	return CopiedMessage(file), nil
}

// View obtains the content of a file, classifies it and formats it with the
// matching renderer. On failure no selection is returned.
func (h *Helper) View(ctx context.Context, file types.FileID) (*types.Selection, string, error) {
	text, err := h.content.GetContent(ctx, file)
	if err != nil {
		return nil, "", err
	}

	sel := &types.Selection{
		File:    file,
		Content: text,
		Mode:    types.Classify(file),
	}

	body, err := h.Render(sel)
	if err != nil {
		return nil, "", err
	}

	h.log.Debug("Viewing file", zap.String("file", file), zap.String("mode", string(sel.Mode)))
	return sel, body, nil
}

// Render formats a selection again, after a resize for instance
func (h *Helper) Render(sel *types.Selection) (string, error) {
	if sel.Empty() {
		return "", ErrNoSelection
	}
	body, err := h.renderers.Format(sel.File, sel.Content)
	if err != nil {
		h.log.Error("Render failed", zap.String("file", sel.File), zap.Error(err))
		return "", fmt.Errorf("failed to render %s: %w", sel.File, err)
	}
	return body, nil
}
