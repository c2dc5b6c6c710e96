package service_test

import (
	"context"
	"testing"

	"courtside/internal/domain"
	"courtside/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog() *service.CatalogService {
	return service.NewCatalogService(zerolog.Nop())
}

func TestListComplexes(t *testing.T) {
	complexes, err := newCatalog().ListComplexes(context.Background())
	require.NoError(t, err)
	assert.Len(t, complexes, 5)
}

func TestSearchComplexes(t *testing.T) {
	catalog := newCatalog()
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "by name fragment", query: "norte", want: []string{"Club Deportivo Norte"}},
		{name: "case insensitive", query: "NORTE", want: []string{"Club Deportivo Norte"}},
		{name: "surrounding whitespace", query: "  norte  ", want: []string{"Club Deportivo Norte"}},
		{name: "by city", query: "rosario", want: []string{"Polideportivo Municipal"}},
		{name: "no hits", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := catalog.SearchComplexes(ctx, tt.query)
			require.NoError(t, err)

			names := make([]string, 0, len(results))
			for _, c := range results {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestGetComplexByID(t *testing.T) {
	catalog := newCatalog()
	ctx := context.Background()

	found, err := catalog.GetComplexByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Club Deportivo Norte", found.Name)

	_, err = catalog.GetComplexByID(ctx, "missing")
	require.ErrorIs(t, err, service.ErrComplexNotFound)
}

func TestListMatchesByLevel(t *testing.T) {
	catalog := newCatalog()
	ctx := context.Background()

	all, err := catalog.ListMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	avanzado, err := catalog.ListMatchesByLevel(ctx, domain.LevelAvanzado)
	require.NoError(t, err)
	require.Len(t, avanzado, 2)
	for _, m := range avanzado {
		assert.Equal(t, domain.LevelAvanzado, m.Level)
	}
}

func TestJoinMatchIncrementsPlayers(t *testing.T) {
	catalog := newCatalog()
	ctx := context.Background()

	joined, err := catalog.JoinMatch(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 7, joined.Players.Current)

	// the backing record was mutated, not a copy
	matches, err := catalog.ListMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, matches[0].Players.Current)
}

func TestJoinMatchRefusesWhenFull(t *testing.T) {
	catalog := newCatalog()
	ctx := context.Background()

	// fixture match 3 starts at 8/10
	for range 2 {
		_, err := catalog.JoinMatch(ctx, "3")
		require.NoError(t, err)
	}

	_, err := catalog.JoinMatch(ctx, "3")
	require.ErrorIs(t, err, service.ErrMatchFull)
}

func TestJoinMatchUnknownID(t *testing.T) {
	_, err := newCatalog().JoinMatch(context.Background(), "missing")
	require.ErrorIs(t, err, service.ErrMatchNotFound)
}

func TestCreateMatchAppendsToListableSet(t *testing.T) {
	catalog := newCatalog()
	ctx := context.Background()

	created, err := catalog.CreateMatch(ctx, service.MatchDraft{
		Name:      "Partido Nocturno",
		ComplexID: "2",
		Date:      "2023-11-05",
		Time:      "21:00",
		Required:  10,
		Level:     domain.LevelIntermedio,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.Players.Current, "creator counts as the first player")
	assert.Equal(t, 10, created.Players.Required)
	assert.Equal(t, "Club Deportivo Norte", created.ComplexName, "complex name is denormalized at creation")

	matches, err := catalog.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 8)
	assert.Equal(t, created.ID, matches[7].ID)
}

func TestCreateMatchUnknownComplexKeepsEmptyName(t *testing.T) {
	created, err := newCatalog().CreateMatch(context.Background(), service.MatchDraft{
		Name:      "Partido Fantasma",
		ComplexID: "missing",
		Required:  4,
		Level:     domain.LevelNovato,
	})
	require.NoError(t, err)
	assert.Empty(t, created.ComplexName)
}

func TestCreateMatchValidation(t *testing.T) {
	catalog := newCatalog()
	ctx := context.Background()

	tests := []struct {
		name  string
		draft service.MatchDraft
	}{
		{
			name:  "missing name",
			draft: service.MatchDraft{ComplexID: "1", Required: 10, Level: domain.LevelNovato},
		},
		{
			name:  "single player match",
			draft: service.MatchDraft{Name: "Solo", ComplexID: "1", Required: 1, Level: domain.LevelNovato},
		},
		{
			name:  "unknown level",
			draft: service.MatchDraft{Name: "Partido", ComplexID: "1", Required: 10, Level: "pro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.CreateMatch(ctx, tt.draft)
			require.ErrorIs(t, err, service.ErrInvalidMatch)
		})
	}
}
