package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	xterm "github.com/charmbracelet/x/term"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/docpeek/internal/content"
	"github.com/studiowebux/docpeek/internal/delivery"
	"github.com/studiowebux/docpeek/internal/discovery"
	"github.com/studiowebux/docpeek/internal/fetcher"
	"github.com/studiowebux/docpeek/internal/filter"
	"github.com/studiowebux/docpeek/internal/types"
)

// Env holds what the non-interactive commands share
type Env struct {
	Helper   *delivery.Helper
	Controls []types.Control
	Out      io.Writer // command output
	Err      io.Writer // messages for the user
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && xterm.IsTerminal(f.Fd())
}

// Copy copies a file to the clipboard and prints the confirmation
func Copy(ctx context.Context, env Env, file types.FileID) error {
	message, err := env.Helper.Copy(ctx, file)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Err, message)
	return nil
}

// ViewOptions contains options for printing a file
type ViewOptions struct {
	File types.FileID
	// Raw prints the text unformatted, for pipes
	Raw bool
}

// View prints a file formatted by its display mode
func View(ctx context.Context, env Env, opts ViewOptions) error {
	if opts.Raw {
		text, err := env.Helper.Content().GetContent(ctx, opts.File)
		if err != nil {
			return err
		}
		_, err = io.WriteString(env.Out, text)
		return err
	}

	_, body, err := env.Helper.View(ctx, opts.File)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, err = io.WriteString(env.Out, body)
	return err
}

// ListOptions contains options for listing files
type ListOptions struct {
	Format string // text, json, yaml
	// Query is a JMESPath expression over the JSON rows; it implies json
	Query string
}

// List prints the discovered files
func List(env Env, opts ListOptions) error {
	rows := discovery.Rows(env.Controls)

	format := opts.Format
	if opts.Query != "" {
		if !filter.IsValid(opts.Query) {
			return fmt.Errorf("invalid query %q", opts.Query)
		}
		format = "json"
	}
	output, err := formatRows(rows, format)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	output, err = filter.Apply(output, opts.Query)
	if err != nil {
		return err
	}

	_, err = io.WriteString(env.Out, output)
	return err
}

// formatRows formats the rows based on the output format
func formatRows(rows []types.FileInfo, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text", "":
		width := 0
		for _, r := range rows {
			width = max(width, len(r.File))
		}

		var sb strings.Builder
		for _, r := range rows {
			kinds := make([]string, 0, len(r.Kinds))
			for _, k := range r.Kinds {
				kinds = append(kinds, string(k))
			}
			line := fmt.Sprintf("%-*s  %-6s  %s", width, r.File, r.Mode, strings.Join(kinds, ","))
			if r.Label != "" && r.Label != r.File {
				line += "  " + r.Label
			}
			sb.WriteString(strings.TrimRight(line, " ") + "\n")
		}
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown output format %q (json/yaml/text)", format)
	}
}

// CheckResult is the outcome of Check
type CheckResult struct {
	Total  int
	Bytes  int
	Failed map[types.FileID]error
}

// FailedFiles returns the failed identifiers, sorted
func (r CheckResult) FailedFiles() []types.FileID {
	files := make([]types.FileID, 0, len(r.Failed))
	for f := range r.Failed {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// checkConcurrency bounds the fetches Check runs at once
const checkConcurrency = 8

// Check retrieves every discovered file once, reporting progress, and
// fails when any file cannot be retrieved
func Check(ctx context.Context, env Env, reporter Reporter) (CheckResult, error) {
	files := discovery.UniqueFiles(env.Controls)
	result := CheckResult{Total: len(files), Failed: make(map[types.FileID]error)}

	mgr := env.Helper.Content()
	var mu sync.Mutex
	done := 0

	reporter.Start(len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)
	for _, file := range files {
		g.Go(func() error {
			text, err := mgr.GetContent(gctx, file)

			mu.Lock()
			defer mu.Unlock()
			done++
			if err != nil {
				result.Failed[file] = err
			} else {
				result.Bytes += len(text)
			}
			reporter.Update(done, file)
			return nil
		})
	}
	_ = g.Wait()
	reporter.Finish()

	for _, file := range result.FailedFiles() {
		fmt.Fprintf(env.Err, "✗ %s: %v\n", file, unwrapFetch(result.Failed[file]))
	}
	fmt.Fprintf(env.Err, "%d of %d files retrieved (%s)\n",
		result.Total-len(result.Failed), result.Total, fetcher.FormatSize(result.Bytes))

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%d of %d files could not be retrieved", len(result.Failed), result.Total)
	}
	return result, nil
}

// unwrapFetch drops the FetchError prefix, the file is already printed
func unwrapFetch(err error) error {
	var fe *content.FetchError
	if errors.As(err, &fe) {
		return fe.Err
	}
	return err
}
