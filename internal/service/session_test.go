package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"courtside/internal/config"
	"courtside/internal/constants"
	"courtside/internal/database"
	"courtside/internal/domain"
	"courtside/internal/repository"
	"courtside/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *repository.StateRepository {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "state.db")}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewStateRepository(db, zerolog.Nop())
}

func TestSignInFabricatesWhenNoStoredProfile(t *testing.T) {
	repo := newTestRepo(t)
	session := service.NewSessionService(repo, zerolog.Nop())
	ctx := context.Background()

	profile, err := session.SignIn(ctx, "new@x.com", "whatever")
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "new@x.com", profile.Email)
	assert.Equal(t, "new", profile.Name)
	assert.Equal(t, 50, profile.ProfileCompleted)

	// persisted immediately
	var stored domain.UserProfile
	require.NoError(t, repo.Get(ctx, constants.StateKeySession, &stored))
	assert.Equal(t, *profile, stored)
}

func TestSignInReturnsStoredProfile(t *testing.T) {
	repo := newTestRepo(t)
	session := service.NewSessionService(repo, zerolog.Nop())
	ctx := context.Background()

	first, err := session.SignIn(ctx, "new@x.com", "pw1")
	require.NoError(t, err)

	second, err := session.SignIn(ctx, "new@x.com", "another-password")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "second sign-in must reuse the persisted record")
	assert.Equal(t, *first, *second)
}

func TestSignInDifferentEmailFabricatesFresh(t *testing.T) {
	repo := newTestRepo(t)
	session := service.NewSessionService(repo, zerolog.Nop())
	ctx := context.Background()

	first, err := session.SignIn(ctx, "one@x.com", "pw")
	require.NoError(t, err)

	second, err := session.SignIn(ctx, "two@x.com", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "two", second.Name)
}

func TestSignUpComputesCompletion(t *testing.T) {
	repo := newTestRepo(t)
	session := service.NewSessionService(repo, zerolog.Nop())

	profile, err := session.SignUp(context.Background(), "Ana", "ana@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, 50, profile.ProfileCompleted, "name and email filled, city and level empty")
}

func TestUpdateProfileRecomputesCompletion(t *testing.T) {
	repo := newTestRepo(t)
	session := service.NewSessionService(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := session.SignUp(ctx, "Ana", "ana@example.com", "pw")
	require.NoError(t, err)

	city := "Rosario"
	level := domain.LevelAvanzado
	updated, err := session.UpdateProfile(ctx, service.ProfileUpdate{City: &city, Level: &level})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Rosario", updated.City)
	assert.Equal(t, domain.LevelAvanzado, updated.Level)
	assert.Equal(t, 100, updated.ProfileCompleted)

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, *updated, *current)
}

func TestUpdateProfileWithoutSessionIsNoOp(t *testing.T) {
	repo := newTestRepo(t)
	session := service.NewSessionService(repo, zerolog.Nop())

	name := "Ana"
	updated, err := session.UpdateProfile(context.Background(), service.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Nil(t, session.Current())
}

func TestSignOutClearsSessionAndStorage(t *testing.T) {
	repo := newTestRepo(t)
	session := service.NewSessionService(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := session.SignIn(ctx, "new@x.com", "pw")
	require.NoError(t, err)

	require.NoError(t, session.SignOut(ctx))
	assert.Nil(t, session.Current())

	var stored domain.UserProfile
	require.ErrorIs(t, repo.Get(ctx, constants.StateKeySession, &stored), repository.ErrNotFound)
}

func TestSessionHydrateRestoresProfile(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session := service.NewSessionService(repo, zerolog.Nop())
	_, err := session.SignUp(ctx, "Ana", "ana@example.com", "pw")
	require.NoError(t, err)

	city := "Rosario"
	updated, err := session.UpdateProfile(ctx, service.ProfileUpdate{City: &city})
	require.NoError(t, err)

	// simulate a process restart against the same storage
	restarted := service.NewSessionService(repo, zerolog.Nop())
	require.Nil(t, restarted.Current())
	require.NoError(t, restarted.Hydrate(ctx))

	current := restarted.Current()
	require.NotNil(t, current)
	assert.Equal(t, *updated, *current)
}

func TestSessionSubscribe(t *testing.T) {
	repo := newTestRepo(t)
	session := service.NewSessionService(repo, zerolog.Nop())
	ctx := context.Background()

	notified := 0
	unsubscribe := session.Subscribe(func() { notified++ })

	_, err := session.SignIn(ctx, "new@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	require.NoError(t, session.SignOut(ctx))
	assert.Equal(t, 2, notified)

	unsubscribe()
	_, err = session.SignIn(ctx, "new@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, 2, notified, "unsubscribed callback must not fire")
}
