package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"courtside/internal/constants"
	"courtside/internal/domain"
	"courtside/internal/repository"

	"github.com/rs/zerolog"
)

// fabricatedCompletion is the placeholder written on sign-in fabrication. It
// is deliberately not recomputed from the fields at that point.
const fabricatedCompletion = 50

// ProfileUpdate is a partial profile; nil fields are left untouched.
type ProfileUpdate struct {
	Name  *string       `json:"name,omitempty"`
	Email *string       `json:"email,omitempty"`
	City  *string       `json:"city,omitempty"`
	Level *domain.Level `json:"level,omitempty"`
}

// SessionService owns the at-most-one active user profile. Every mutation
// persists the full profile record before subscribers are notified.
//
// Sign-in fabricates a profile when no stored one matches; there is no
// credential verification at this boundary.
type SessionService struct {
	repo   *repository.StateRepository
	logger zerolog.Logger

	mu      sync.RWMutex
	current *domain.UserProfile

	notifier notifier
}

func NewSessionService(repo *repository.StateRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, logger: logger}
}

// Hydrate loads the persisted profile, once at process start. An absent
// record leaves the session signed out.
func (s *SessionService) Hydrate(ctx context.Context) error {
	var stored domain.UserProfile
	err := s.repo.Get(ctx, constants.StateKeySession, &stored)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Debug().Msg("no stored session")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to hydrate session: %w", err)
	}

	s.mu.Lock()
	s.current = &stored
	s.mu.Unlock()

	s.logger.Info().Str("user_id", stored.ID).Msg("session hydrated")
	return nil
}

// Current returns a snapshot of the active profile, or nil when signed out.
func (s *SessionService) Current() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// Subscribe registers fn to run after every session change and returns its
// unsubscribe func.
func (s *SessionService) Subscribe(fn func()) func() {
	return s.notifier.subscribe(fn)
}

// SignIn activates the stored profile when its email matches; otherwise it
// fabricates a new one and persists it. The password is accepted but never
// verified.
func (s *SessionService) SignIn(ctx context.Context, email, _ string) (*domain.UserProfile, error) {
	var stored domain.UserProfile
	err := s.repo.Get(ctx, constants.StateKeySession, &stored)
	if err == nil && stored.Email == email {
		s.mu.Lock()
		s.current = &stored
		s.mu.Unlock()

		s.notifier.notify()
		s.logger.Info().Str("user_id", stored.ID).Msg("signed in with stored profile")
		snapshot := stored
		return &snapshot, nil
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	profile := domain.UserProfile{
		ID:               domain.NewID(),
		Email:            email,
		Name:             localPart(email),
		ProfileCompleted: fabricatedCompletion,
	}

	if err := s.activate(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", profile.ID).Msg("signed in with fabricated profile")
	snapshot := profile
	return &snapshot, nil
}

// SignUp always fabricates a fresh profile, even when a stored one exists for
// the same email.
func (s *SessionService) SignUp(ctx context.Context, name, email, _ string) (*domain.UserProfile, error) {
	profile := domain.UserProfile{
		ID:    domain.NewID(),
		Name:  name,
		Email: email,
	}
	profile.ProfileCompleted = domain.Completion(profile)

	if err := s.activate(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", profile.ID).Msg("signed up")
	snapshot := profile
	return &snapshot, nil
}

// SignOut clears the persisted record and the active session.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.repo.Delete(ctx, constants.StateKeySession); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.notifier.notify()
	s.logger.Info().Msg("signed out")
	return nil
}

// UpdateProfile merges update into the active profile and recomputes the
// completion percentage. Without an active session it is a no-op and returns
// (nil, nil).
func (s *SessionService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.UserProfile, error) {
	s.mu.RLock()
	if s.current == nil {
		s.mu.RUnlock()
		s.logger.Debug().Msg("profile update without active session ignored")
		return nil, nil
	}
	profile := *s.current
	s.mu.RUnlock()

	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Email != nil {
		profile.Email = *update.Email
	}
	if update.City != nil {
		profile.City = *update.City
	}
	if update.Level != nil {
		profile.Level = *update.Level
	}
	profile.ProfileCompleted = domain.Completion(profile)

	if err := s.activate(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", profile.ID).
		Int("profile_completed", profile.ProfileCompleted).
		Msg("profile updated")
	snapshot := profile
	return &snapshot, nil
}

// activate persists profile and makes it the active session.
func (s *SessionService) activate(ctx context.Context, profile domain.UserProfile) error {
	if err := s.repo.Put(ctx, constants.StateKeySession, profile); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &profile
	s.mu.Unlock()

	s.notifier.notify()
	return nil
}

func localPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
