package content

import (
	"fmt"

	"github.com/studiowebux/docpeek/internal/types"
)

// FetchError reports a failed user-triggered retrieval
type FetchError struct {
	File types.FileID
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch %s: %v", e.File, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
