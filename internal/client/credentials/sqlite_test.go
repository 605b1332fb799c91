package credentials

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsl-project/tjslctl/internal/client/models"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key        TEXT PRIMARY KEY,
  value      BLOB    NOT NULL,
  expires_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func setupStore(t *testing.T) (*SQLiteStore, *time.Time) {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewSQLiteStore(setupDB(t))
	s.now = func() time.Time { return now }
	return s, &now
}

func profileFixture() *models.Profile {
	return &models.Profile{ID: 1, Name: "Admin", Email: "admin@example.com"}
}

// ---- TESTS ----

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok123", profileFixture()))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "admin@example.com", p.Email)
}

func TestSQLiteStore_EmptyStore(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSQLiteStore_ExpiredReadsAsAbsent(t *testing.T) {
	s, now := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok123", profileFixture()))

	*now = now.Add(24*time.Hour + time.Second)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSQLiteStore_SetTokenLeavesProfile(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "old", profileFixture()))
	require.NoError(t, s.SetToken(ctx, "new"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", token)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "admin@example.com", p.Email)
}

func TestSQLiteStore_SetProfileLeavesToken(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok123", profileFixture()))

	fresh := profileFixture()
	fresh.Name = "Renamed"
	require.NoError(t, s.SetProfile(ctx, fresh))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Name)
}

func TestSQLiteStore_SetProfileRenewsItsOwnExpiry(t *testing.T) {
	s, now := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok123", profileFixture()))

	*now = now.Add(23 * time.Hour)
	require.NoError(t, s.SetProfile(ctx, profileFixture()))

	// Past the token's original TTL but within the rewritten profile's.
	*now = now.Add(2 * time.Hour)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestSQLiteStore_ClearIsIdempotent(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok123", profileFixture()))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestOpen_RunsMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Set(ctx, "tok123", profileFixture()))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}
