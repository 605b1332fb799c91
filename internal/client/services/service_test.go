package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tjsl-project/tjslctl/internal/client/api"
	"github.com/tjsl-project/tjslctl/internal/logging"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

// ---- helpers shared by the service tests ----

type nullCreds struct{}

func (nullCreds) Token(ctx context.Context) (string, error) { return "", nil }
func (nullCreds) Clear(ctx context.Context) error           { return nil }

// newTestAPI spins up an httptest server and an api.Client pointed at it.
func newTestAPI(t *testing.T, handler http.HandlerFunc) API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return api.New(srv.URL, nullCreds{}, log)
}

func writeOK(w http.ResponseWriter, data string) {
	io.WriteString(w, `{"success":true,"data":`+data+`}`)
}

func newValidator() *validation.Validator {
	return validation.New()
}
