package api

import (
	"context"
	"net/http"

	"github.com/tjsl-project/tjslctl/internal/common"
)

// Credentials is the narrow view of the credential store the transport
// needs: read the current token before each request, and purge everything
// when the backend reports the token is no longer valid. The transport
// never writes new values.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// authTransport attaches the bearer token to every outgoing request and
// watches every response for authentication failure. On a 401 it clears the
// credential store and fires the auth-lost callback exactly once for that
// response, then hands the response back unchanged. It never retries.
type authTransport struct {
	base       http.RoundTripper
	creds      Credentials
	onAuthLost func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, err := t.creds.Token(ctx)
	if err == nil && token != "" {
		// Per-request clone: RoundTrippers must not mutate the caller's request.
		req = req.Clone(ctx)
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, rtErr := t.base.RoundTrip(req)
	if rtErr != nil {
		return resp, rtErr
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = t.creds.Clear(ctx)
		if t.onAuthLost != nil {
			t.onAuthLost()
		}
	}

	return resp, nil
}
