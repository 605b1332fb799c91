// Package credentials is the browser-storage analog of the original admin
// panel: a small local store holding exactly two values, the bearer token
// and the user profile snapshot, each written with a fixed time-to-live.
// The store itself enforces expiry: expired rows read as absent. It has no
// knowledge of the network.
package credentials

import (
	"context"

	"github.com/tjsl-project/tjslctl/internal/client/models"
)

// Fixed storage keys. Only these two values ever live in the store.
const (
	keyToken   = "token"
	keyProfile = "profile"
)

// Store owns durable (until expiry) persistence of the credential pair.
// The auth session is the only writer; the HTTP transport holds a narrow
// delete-only view (api.Credentials).
type Store interface {
	// Set writes both the token and the profile snapshot with a fresh TTL.
	Set(ctx context.Context, token string, profile *models.Profile) error

	// SetToken overwrites only the token, leaving the profile untouched.
	SetToken(ctx context.Context, token string) error

	// SetProfile overwrites only the profile snapshot, leaving the token
	// untouched.
	SetProfile(ctx context.Context, profile *models.Profile) error

	// Token returns the stored token, or "" if absent or expired.
	Token(ctx context.Context) (string, error)

	// Profile returns the stored snapshot, or nil if absent or expired.
	Profile(ctx context.Context) (*models.Profile, error)

	// Clear deletes both values unconditionally. Clearing an empty store
	// is not an error.
	Clear(ctx context.Context) error
}
