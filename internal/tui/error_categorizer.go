package tui

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/studiowebux/docpeek/internal/fetcher"
)

// categorizeLoadError turns a failed fetch into a short reason shown next
// to the file in the list
func categorizeLoadError(err error) string {
	if err == nil {
		return ""
	}

	var status *fetcher.StatusError
	if errors.As(err, &status) {
		if status.NotFound() {
			return "not found"
		}
		return fmt.Sprintf("HTTP %d", status.Status)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "timed out, try a larger fetch_timeout"
	}
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}

	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return "TLS certificate not trusted"
	}
	var invalidCert x509.CertificateInvalidError
	if errors.As(err, &invalidCert) {
		return "TLS certificate invalid"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "DNS resolution failed"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return "connection timed out"
		}
		var errno syscall.Errno
		if errors.As(opErr.Err, &errno) {
			switch errno {
			case syscall.ECONNREFUSED:
				return "connection refused"
			case syscall.ECONNRESET:
				return "connection reset"
			case syscall.ENETUNREACH, syscall.EHOSTUNREACH:
				return "network unreachable"
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return "timed out, try a larger fetch_timeout"
	}

	return categorizeLoadErrorText(err.Error())
}

// categorizeLoadErrorText falls back to matching the error string
func categorizeLoadErrorText(errStr string) string {
	errLower := strings.ToLower(errStr)

	switch {
	case strings.Contains(errLower, "no such host"):
		return "DNS resolution failed"
	case strings.Contains(errLower, "connection refused"):
		return "connection refused"
	case strings.Contains(errLower, "x509"), strings.Contains(errLower, "tls"):
		return "TLS error"
	case strings.Contains(errLower, "stopped after") && strings.Contains(errLower, "redirect"):
		return "too many redirects"
	case strings.Contains(errLower, "unexpected eof"):
		return "connection closed unexpectedly"
	}
	return errStr
}
