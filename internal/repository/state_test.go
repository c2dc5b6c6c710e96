package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"courtside/internal/config"
	"courtside/internal/constants"
	"courtside/internal/database"
	"courtside/internal/domain"
	"courtside/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "state.db")}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStateRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStateRepository(db, zerolog.Nop())
	ctx := context.Background()

	stored := domain.UserProfile{
		ID:               "u1",
		Email:            "ana@example.com",
		Name:             "Ana",
		City:             "Rosario",
		Level:            domain.LevelIntermedio,
		ProfileCompleted: 100,
	}
	require.NoError(t, repo.Put(ctx, constants.StateKeySession, stored))

	var loaded domain.UserProfile
	require.NoError(t, repo.Get(ctx, constants.StateKeySession, &loaded))
	require.Equal(t, stored, loaded)
}

func TestStateRepositoryGetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStateRepository(db, zerolog.Nop())

	var out domain.UserProfile
	err := repo.Get(context.Background(), constants.StateKeySession, &out)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStateRepositoryOverwrite(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStateRepository(db, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, constants.StateKeyFavorites, []domain.FavoriteEntry{{ID: "1", Name: "A"}}))
	require.NoError(t, repo.Put(ctx, constants.StateKeyFavorites, []domain.FavoriteEntry{{ID: "2", Name: "B"}}))

	var loaded []domain.FavoriteEntry
	require.NoError(t, repo.Get(ctx, constants.StateKeyFavorites, &loaded))
	require.Len(t, loaded, 1)
	require.Equal(t, "2", loaded[0].ID)
}

func TestStateRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStateRepository(db, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, constants.StateKeySession, domain.UserProfile{ID: "u1"}))
	require.NoError(t, repo.Delete(ctx, constants.StateKeySession))

	var out domain.UserProfile
	require.ErrorIs(t, repo.Get(ctx, constants.StateKeySession, &out), repository.ErrNotFound)

	// deleting an absent key stays a no-op
	require.NoError(t, repo.Delete(ctx, constants.StateKeySession))
}

func TestStateRepositoryUnsupportedSchemaVersion(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStateRepository(db, zerolog.Nop())
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO app_state (key, payload, updated_at) VALUES (?, ?, ?)`,
		constants.StateKeySession, `{"schema_version":99,"data":{}}`, time.Now().UTC())
	require.NoError(t, err)

	var out domain.UserProfile
	require.ErrorIs(t, repo.Get(ctx, constants.StateKeySession, &out), repository.ErrSchemaVersion)
}
