package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courtside/internal/constants"

	"github.com/rs/zerolog"
)

var (
	// ErrNotFound means no record is stored under the key. Callers treat this
	// as a valid outcome, not a failure.
	ErrNotFound = errors.New("state record not found")
	// ErrSchemaVersion means the stored envelope carries a version this build
	// does not understand.
	ErrSchemaVersion = errors.New("unsupported state schema version")
)

// envelope wraps every persisted record so future format changes can migrate
// old payloads instead of misparsing them.
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// StateRepository stores one serialized record per fixed key in the app_state
// table. The session and favorites stores each own a single key.
type StateRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewStateRepository(db *sql.DB, logger zerolog.Logger) *StateRepository {
	return &StateRepository{db: db, logger: logger}
}

// Get loads the record under key and unmarshals its payload into out.
func (r *StateRepository) Get(ctx context.Context, key string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to read state record")
		return fmt.Errorf("failed to read state record %q: %w", key, err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return fmt.Errorf("failed to decode state envelope %q: %w", key, err)
	}
	if env.SchemaVersion != constants.SchemaVersion {
		r.logger.Warn().
			Str("key", key).
			Int("stored_version", env.SchemaVersion).
			Int("supported_version", constants.SchemaVersion).
			Msg("state record has unsupported schema version")
		return fmt.Errorf("state record %q has version %d: %w", key, env.SchemaVersion, ErrSchemaVersion)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode state record %q: %w", key, err)
	}
	return nil
}

// Put writes v as the full record under key, replacing any previous value.
func (r *StateRepository) Put(ctx context.Context, key string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode state record %q: %w", key, err)
	}
	payload, err := json.Marshal(envelope{SchemaVersion: constants.SchemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("failed to encode state envelope %q: %w", key, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, key, string(payload), time.Now().UTC())
	if err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to write state record")
		return fmt.Errorf("failed to write state record %q: %w", key, err)
	}

	r.logger.Debug().Str("key", key).Int("bytes", len(payload)).Msg("state record written")
	return nil
}

// Delete removes the record under key. Deleting an absent key is a no-op.
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key); err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to delete state record")
		return fmt.Errorf("failed to delete state record %q: %w", key, err)
	}

	r.logger.Debug().Str("key", key).Msg("state record deleted")
	return nil
}
