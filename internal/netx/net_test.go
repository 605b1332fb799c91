package netx

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNetError struct{ timeout bool }

func (e *fakeNetError) Error() string   { return "fake" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(&fakeNetError{timeout: true}))
	assert.False(t, IsTimeout(&fakeNetError{timeout: false}))
	assert.False(t, IsTimeout(errors.New("other")))
}

func TestIsUnreachable(t *testing.T) {
	assert.True(t, IsUnreachable(&net.DNSError{Err: "no such host", Name: "api.example.invalid"}))
	assert.True(t, IsUnreachable(&net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}))
	assert.True(t, IsUnreachable(syscall.ECONNREFUSED))
	assert.False(t, IsUnreachable(&net.OpError{Op: "read", Err: errors.New("reset")}))
	assert.False(t, IsUnreachable(errors.New("other")))
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("inner")
	wrapped := &url.Error{Op: "Get", URL: "http://x", Err: inner}
	assert.Equal(t, inner, Unwrap(wrapped))
	assert.Equal(t, inner, Unwrap(inner))
}
