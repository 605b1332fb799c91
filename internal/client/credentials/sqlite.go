package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/tjsl-project/tjslctl/internal/client/migrations"
	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/common"
	"github.com/tjsl-project/tjslctl/internal/dbx"
)

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteStore binds a store to db with the standard credential TTL.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, ttl: common.CredentialTTL, now: time.Now}
}

// Open opens (creating if needed) the local client database at dsn and
// applies the embedded migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open client db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate client db: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Set(ctx context.Context, token string, profile *models.Profile) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	expires := s.now().Add(s.ttl).Unix()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := upsert(ctx, tx, keyToken, []byte(token), expires); err != nil {
			return err
		}
		return upsert(ctx, tx, keyProfile, blob, expires)
	})
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return upsert(ctx, s.db, keyToken, []byte(token), s.now().Add(s.ttl).Unix())
}

func (s *SQLiteStore) SetProfile(ctx context.Context, profile *models.Profile) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return upsert(ctx, s.db, keyProfile, blob, s.now().Add(s.ttl).Unix())
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *SQLiteStore) Profile(ctx context.Context) (*models.Profile, error) {
	value, err := s.get(ctx, keyProfile)
	if err != nil || value == nil {
		return nil, err
	}

	var p models.Profile
	if err := json.Unmarshal(value, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// get returns nil for absent and for expired rows alike: expiry is enforced
// at read time, there is no renewal sweep.
func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE key = ? AND expires_at > ?`,
		key, s.now().Unix(),
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func upsert(ctx context.Context, db dbx.DBTX, key string, value []byte, expiresAt int64) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO credentials (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("set credentials[%s]: %w", key, err)
	}
	return nil
}
