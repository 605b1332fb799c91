// Package netx classifies low-level transport failures so the API client can
// surface actionable messages for the two most common deployment mistakes:
// an unreachable backend and a misconfigured base URL.
package netx

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
)

// IsTimeout reports whether err represents a request that ran out of time,
// either via the transport deadline or context cancellation by deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

// IsUnreachable reports whether err means the backend could not be reached at
// all: DNS resolution failed, the connection was refused, or the dial itself
// failed.
func IsUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return false
}

// Unwrap strips the *url.Error wrapper the http package adds around
// transport failures, returning the underlying error unchanged otherwise.
func Unwrap(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
