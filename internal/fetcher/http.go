package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/studiowebux/docpeek/internal/types"
)

// HTTPFetcher retrieves files with a GET relative to a base URL
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTP creates a fetcher rooted at baseURL.
// A base without a trailing slash is treated as a directory.
func NewHTTP(baseURL string, opts Options) (*HTTPFetcher, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL %q: %w", baseURL, err)
	}

	client := opts.Client
	if client == nil {
		client = buildHTTPClient(opts)
	}

	return &HTTPFetcher{base: base, client: client}, nil
}

// URL resolves a file identifier against the base URL. Only relative
// paths that stay under the base are accepted; anything else is a 400
// StatusError.
func (f *HTTPFetcher) URL(file types.FileID) (string, error) {
	ref, err := url.Parse(file)
	if err != nil {
		return "", fmt.Errorf("invalid file identifier %q: %w", file, err)
	}
	if ref.IsAbs() || ref.Host != "" || ref.Opaque != "" || ref.User != nil {
		return "", badRequest(file)
	}

	name, ok := CleanPath(ref.Path)
	if !ok {
		return "", badRequest(file)
	}

	target := f.base.ResolveReference(&url.URL{Path: name, RawQuery: ref.RawQuery})
	if target.Scheme != f.base.Scheme || target.Host != f.base.Host ||
		!strings.HasPrefix(target.Path, f.base.Path) {
		return "", badRequest(file)
	}
	return target.String(), nil
}

// Fetch performs the GET and returns the body as text on a 2xx status
func (f *HTTPFetcher) Fetch(ctx context.Context, file types.FileID) (string, error) {
	target, err := f.URL(file)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", file, err)
	}
	defer resp.Body.Close()

	if !IsSuccessStatus(resp.StatusCode) {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{File: file, Status: resp.StatusCode, StatusText: resp.Status}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(bodyBytes), nil
}

// buildHTTPClient creates an HTTP client; no timeout unless configured
func buildHTTPClient(opts Options) *http.Client {
	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: http.DefaultTransport,
	}
}
