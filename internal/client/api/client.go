// Package api implements the HTTP pipeline every resource service goes
// through: one configured client that attaches the bearer token to each
// outgoing request, watches each response for authentication failure, and
// maps transport and backend failures onto a small error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tjsl-project/tjslctl/internal/logging"
	"github.com/tjsl-project/tjslctl/internal/netx"
)

// DefaultTimeout bounds every request unless overridden at construction.
const DefaultTimeout = 30 * time.Second

// maxResponseBytes caps how much of a reply is read into memory.
const maxResponseBytes = 10 << 20

const genericFailureMessage = "request failed"

type Client struct {
	baseURL   string
	http      *http.Client
	transport *authTransport
	log       logging.Logger
}

type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithAuthLostHandler registers a callback fired once per 401 response,
// after the stored credentials have been purged. The hosting application
// decides how to react (the CLI drops back to the login prompt).
func WithAuthLostHandler(fn func()) Option {
	return func(c *Client) { c.transport.onAuthLost = fn }
}

// New builds a Client targeting baseURL. creds supplies the bearer token for
// outgoing requests and is purged when a response reports authentication
// failure.
func New(baseURL string, creds Credentials, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
	c.transport = &authTransport{base: http.DefaultTransport, creds: creds}
	c.http = &http.Client{Timeout: DefaultTimeout, Transport: c.transport}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request and decodes the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// Post sends in as a JSON body and decodes the envelope's data into out.
// Either may be nil.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

// Put sends in as a JSON body and decodes the envelope's data into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, body, contentType, out)
}

// Delete issues a DELETE request. The response body is ignored beyond
// success/failure.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// PostForm sends form as a multipart body. Updates that carry a file are
// sent through here as POST with the form's _method override set to PUT,
// since multipart PUT is not reliably supported by the backend framework.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

func encodeJSON(in any) (io.Reader, string, error) {
	if in == nil {
		return nil, "", nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(b), "application/json", nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	// The transport has already purged credentials and notified the host.
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var env envelope
	if len(raw) == 0 || json.Unmarshal(raw, &env) != nil {
		if ok {
			if out == nil {
				return nil
			}
			return fmt.Errorf("%s %s: %w", method, path, ErrBadResponse)
		}
		return &APIError{Status: resp.StatusCode, Message: genericFailureMessage}
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		msg := env.Message
		if msg == "" {
			msg = "validation failed"
		}
		return &ValidationError{Message: msg, Fields: env.Errors}
	}

	if !ok || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = genericFailureMessage
		}
		status := resp.StatusCode
		return &APIError{Status: status, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) mapTransportError(ctx context.Context, method, path string, err error) error {
	cause := netx.Unwrap(err)
	switch {
	case netx.IsTimeout(err) || netx.IsTimeout(cause):
		return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
	case netx.IsUnreachable(cause):
		c.log.Warn(ctx, "backend unreachable", "method", method, "path", path, "err", cause)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnreachable)
	default:
		return fmt.Errorf("%s %s: %w", method, path, cause)
	}
}
