package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"courtside/internal/constants"
	"courtside/internal/domain"

	"github.com/rs/zerolog"
)

// Catalog is the venue-and-match read/join/create surface. The fixture-backed
// CatalogService and the remote API client both implement it, so a real
// backend can replace the fixtures without touching consumers.
type Catalog interface {
	ListComplexes(ctx context.Context) ([]domain.Complex, error)
	SearchComplexes(ctx context.Context, query string) ([]domain.Complex, error)
	GetComplexByID(ctx context.Context, id string) (*domain.Complex, error)
	ListMatches(ctx context.Context) ([]domain.Match, error)
	ListMatchesByLevel(ctx context.Context, level domain.Level) ([]domain.Match, error)
	JoinMatch(ctx context.Context, id string) (*domain.Match, error)
	CreateMatch(ctx context.Context, draft MatchDraft) (*domain.Match, error)
}

// MatchDraft is CreateMatch input; the ID and the current player count are
// assigned by the catalog.
type MatchDraft struct {
	Name        string       `json:"name"`
	ComplexID   string       `json:"complexId"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Required    int          `json:"required"`
	Level       domain.Level `json:"level"`
	Description string       `json:"description,omitempty"`
}

// CatalogService serves the seeded fixture set. Complexes are immutable;
// matches are appended by CreateMatch and mutated only by JoinMatch.
type CatalogService struct {
	logger zerolog.Logger

	mu        sync.RWMutex
	complexes []domain.Complex
	matches   []domain.Match
}

func NewCatalogService(logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		logger:    logger,
		complexes: fixtureComplexes(),
		matches:   fixtureMatches(),
	}
}

func (s *CatalogService) ListComplexes(ctx context.Context) ([]domain.Complex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Complex(nil), s.complexes...), nil
}

// SearchComplexes matches the query case-insensitively against name or city.
func (s *CatalogService) SearchComplexes(ctx context.Context, query string) ([]domain.Complex, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.Complex, 0, len(s.complexes))
	for _, c := range s.complexes {
		if strings.Contains(strings.ToLower(c.Name), normalized) ||
			strings.Contains(strings.ToLower(c.City), normalized) {
			results = append(results, c)
		}
	}

	s.logger.Debug().Str("query", query).Int("count", len(results)).Msg("complex search completed")
	return results, nil
}

func (s *CatalogService) GetComplexByID(ctx context.Context, id string) (*domain.Complex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.complexes {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, ErrComplexNotFound
}

func (s *CatalogService) ListMatches(ctx context.Context) ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Match(nil), s.matches...), nil
}

func (s *CatalogService) ListMatchesByLevel(ctx context.Context, level domain.Level) ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.Match, 0, len(s.matches))
	for _, m := range s.matches {
		if m.Level == level {
			results = append(results, m)
		}
	}
	return results, nil
}

// JoinMatch increments the player count, refusing once the match is full.
func (s *CatalogService) JoinMatch(ctx context.Context, id string) (*domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.matches {
		if s.matches[i].ID != id {
			continue
		}
		if s.matches[i].Players.Current >= s.matches[i].Players.Required {
			s.logger.Debug().Str("match_id", id).Msg("join refused, match full")
			return nil, ErrMatchFull
		}
		s.matches[i].Players.Current++
		joined := s.matches[i]

		s.logger.Info().
			Str("match_id", id).
			Int("current", joined.Players.Current).
			Int("required", joined.Players.Required).
			Msg("player joined match")
		return &joined, nil
	}
	return nil, ErrMatchNotFound
}

// CreateMatch validates the draft, assigns a fresh ID, denormalizes the
// complex name, and appends the match to the queryable set. The creator
// counts as the first player.
func (s *CatalogService) CreateMatch(ctx context.Context, draft MatchDraft) (*domain.Match, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidMatch)
	}
	if draft.Required < constants.MinRequiredPlayers {
		return nil, fmt.Errorf("%w: required players must be at least %d", ErrInvalidMatch, constants.MinRequiredPlayers)
	}
	if _, ok := domain.ParseLevel(string(draft.Level)); !ok {
		return nil, fmt.Errorf("%w: unknown level %q", ErrInvalidMatch, draft.Level)
	}

	match := domain.Match{
		ID:          domain.NewID(),
		Name:        draft.Name,
		ComplexID:   draft.ComplexID,
		Date:        draft.Date,
		Time:        draft.Time,
		Players:     domain.PlayerCount{Current: 1, Required: draft.Required},
		Level:       draft.Level,
		Description: draft.Description,
	}

	s.mu.Lock()
	for _, c := range s.complexes {
		if c.ID == draft.ComplexID {
			match.ComplexName = c.Name
			break
		}
	}
	s.matches = append(s.matches, match)
	s.mu.Unlock()

	s.logger.Info().
		Str("match_id", match.ID).
		Str("complex_id", match.ComplexID).
		Str("level", string(match.Level)).
		Msg("match created")
	return &match, nil
}
