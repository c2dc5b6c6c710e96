package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"courtside/internal/constants"
	"courtside/internal/domain"
	"courtside/internal/repository"

	"github.com/rs/zerolog"
)

// FavoritesService owns the saved-complex set, kept in insertion order.
// Add is idempotent by complex ID; every mutation persists the full set.
type FavoritesService struct {
	repo   *repository.StateRepository
	logger zerolog.Logger

	mu      sync.RWMutex
	entries []domain.FavoriteEntry

	notifier notifier
}

func NewFavoritesService(repo *repository.StateRepository, logger zerolog.Logger) *FavoritesService {
	return &FavoritesService{repo: repo, logger: logger}
}

// Hydrate loads the persisted set, once at process start.
func (s *FavoritesService) Hydrate(ctx context.Context) error {
	var stored []domain.FavoriteEntry
	err := s.repo.Get(ctx, constants.StateKeyFavorites, &stored)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Debug().Msg("no stored favorites")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to hydrate favorites: %w", err)
	}

	s.mu.Lock()
	s.entries = stored
	s.mu.Unlock()

	s.logger.Info().Int("count", len(stored)).Msg("favorites hydrated")
	return nil
}

// List returns a point-in-time snapshot in insertion order.
func (s *FavoritesService) List() []domain.FavoriteEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.FavoriteEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Subscribe registers fn to run after every favorites change and returns its
// unsubscribe func.
func (s *FavoritesService) Subscribe(fn func()) func() {
	return s.notifier.subscribe(fn)
}

// Add appends entry unless its ID is already saved.
func (s *FavoritesService) Add(ctx context.Context, entry domain.FavoriteEntry) error {
	s.mu.Lock()
	for _, e := range s.entries {
		if e.ID == entry.ID {
			s.mu.Unlock()
			s.logger.Debug().Str("complex_id", entry.ID).Msg("favorite already saved")
			return nil
		}
	}
	updated := append(append([]domain.FavoriteEntry(nil), s.entries...), entry)
	s.mu.Unlock()

	if err := s.persist(ctx, updated); err != nil {
		return err
	}

	s.logger.Info().Str("complex_id", entry.ID).Msg("favorite added")
	return nil
}

// Remove drops every entry matching id.
func (s *FavoritesService) Remove(ctx context.Context, id string) error {
	s.mu.RLock()
	updated := make([]domain.FavoriteEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			updated = append(updated, e)
		}
	}
	s.mu.RUnlock()

	if err := s.persist(ctx, updated); err != nil {
		return err
	}

	s.logger.Info().Str("complex_id", id).Msg("favorite removed")
	return nil
}

// IsFavorite reports membership by complex ID.
func (s *FavoritesService) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (s *FavoritesService) persist(ctx context.Context, entries []domain.FavoriteEntry) error {
	if err := s.repo.Put(ctx, constants.StateKeyFavorites, entries); err != nil {
		return err
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.notifier.notify()
	return nil
}
