/*
Package fetcher retrieves the text content of file identifiers.

# Overview

A file identifier is a relative path. It is resolved against the
configured source and read as text:
  - http(s) sources: GET relative to the base URL (HTTPFetcher)
  - anything else: a local directory read through fs.FS (DirFetcher)

# Success and Failure

Only a 2xx status counts as success; its body is returned as text. Any
other status becomes a *StatusError carrying the status code, so a
missing file looks the same whether it came from a web server or a
directory. Transport failures are wrapped with the identifier.

# Timeouts and Retries

There is no retry. No timeout is applied unless Options.Timeout is set;
the transport defaults are in charge otherwise. The context passed to
Fetch is honored for shutdown.

# Example Usage

	f, err := fetcher.New("https://docs.example.com/course/", fetcher.Options{})
	if err != nil {
		return err
	}

	text, err := f.Fetch(ctx, "week1/algo_theory.md")
	var statusErr *fetcher.StatusError
	if errors.As(err, &statusErr) && statusErr.NotFound() {
		// missing file
	}

# Thread Safety

Fetchers are safe to call concurrently.
*/
package fetcher
