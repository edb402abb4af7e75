package content

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studiowebux/docpeek/internal/fetcher"
	"github.com/studiowebux/docpeek/internal/logger"
	"github.com/studiowebux/docpeek/internal/types"
)

// Manager serves file contents from the cache, fetching on a miss
type Manager struct {
	cache   *Cache
	fetcher fetcher.Fetcher
	log     *zap.Logger
}

// NewManager creates a manager over the given cache and fetcher.
// A nil cache gets a fresh one.
func NewManager(cache *Cache, f fetcher.Fetcher, log *zap.Logger) *Manager {
	if cache == nil {
		cache = NewCache()
	}
	return &Manager{
		cache:   cache,
		fetcher: f,
		log:     logger.OrNop(log),
	}
}

// Cache exposes the underlying cache
func (m *Manager) Cache() *Cache {
	return m.cache
}

// PreloadReport summarizes a preload pass
type PreloadReport struct {
	Loaded []types.FileID
	Failed map[types.FileID]error
}

// Total returns the number of unique files attempted
func (r PreloadReport) Total() int {
	return len(r.Loaded) + len(r.Failed)
}

// Preload fetches every unique file concurrently and caches the successes.
// Failures are logged and left out of the cache so a later GetContent
// retries them. It never fails as a whole and does not retry.
func (m *Manager) Preload(ctx context.Context, files []types.FileID) PreloadReport {
	unique := Unique(files)

	report := PreloadReport{Failed: make(map[types.FileID]error)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, file := range unique {
		g.Go(func() error {
			text, err := m.fetcher.Fetch(gctx, file)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				m.log.Warn("Failed to pre-load", zap.String("file", file), zap.Error(err))
				report.Failed[file] = err
				return nil
			}

			m.cache.Set(file, text)
			report.Loaded = append(report.Loaded, file)
			m.log.Info("Pre-loaded", zap.String("file", file), zap.Int("bytes", len(text)))
			return nil
		})
	}
	// Workers never return an error
	_ = g.Wait()

	return report
}

// GetContent returns the cached text of a file, fetching and caching it on
// a miss. Fetch failures are returned as *FetchError.
func (m *Manager) GetContent(ctx context.Context, file types.FileID) (string, error) {
	if text, ok := m.cache.Get(file); ok {
		return text, nil
	}

	text, err := m.fetcher.Fetch(ctx, file)
	if err != nil {
		m.log.Error("Fetch failed", zap.String("file", file), zap.Error(err))
		return "", &FetchError{File: file, Err: err}
	}

	// A concurrent preload may have won; both fetched the same resource
	m.cache.Set(file, text)
	if cached, ok := m.cache.Get(file); ok {
		return cached, nil
	}
	return text, nil
}

// Unique removes duplicates and empty identifiers, keeping first-seen order
func Unique(files []types.FileID) []types.FileID {
	seen := make(map[types.FileID]bool, len(files))
	unique := make([]types.FileID, 0, len(files))
	for _, f := range files {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}
	return unique
}
