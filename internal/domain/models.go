package domain

import "strings"

// Level is the self-reported skill level shared by profiles and matches.
type Level string

const (
	LevelNovato     Level = "novato"
	LevelIntermedio Level = "intermedio"
	LevelAvanzado   Level = "avanzado"
)

func ParseLevel(s string) (Level, bool) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelNovato:
		return LevelNovato, true
	case LevelIntermedio:
		return LevelIntermedio, true
	case LevelAvanzado:
		return LevelAvanzado, true
	}
	return "", false
}

type UserProfile struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	City             string `json:"city,omitempty"`
	Level            Level  `json:"level,omitempty"`
	ProfileCompleted int    `json:"profileCompleted"`
}

// Completion reports the profile-completion percentage over the four tracked
// fields. ProfileCompleted must only ever be assigned from this function.
func Completion(p UserProfile) int {
	fields := []string{p.Name, p.Email, p.City, string(p.Level)}
	completed := 0
	for _, f := range fields {
		if f != "" {
			completed++
		}
	}
	return completed * 100 / len(fields)
}

type Complex struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Distance float64 `json:"distance"` // kilometers
	Address  string  `json:"address,omitempty"`
	Image    string  `json:"image,omitempty"`
}

type PlayerCount struct {
	Current  int `json:"current"`
	Required int `json:"required"`
}

// Match references its complex by ID; ComplexName is a denormalized copy
// taken at creation and is not re-synced afterwards.
type Match struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ComplexID   string      `json:"complexId"`
	ComplexName string      `json:"complexName"`
	Date        string      `json:"date"` // YYYY-MM-DD
	Time        string      `json:"time"` // HH:MM, local clock
	Players     PlayerCount `json:"players"`
	Level       Level       `json:"level"`
	Description string      `json:"description,omitempty"`
}

// FavoriteEntry carries denormalized display fields so a favorite keeps
// rendering even if the underlying complex record disappears.
type FavoriteEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Distance float64 `json:"distance"`
	Address  string  `json:"address,omitempty"`
	Image    string  `json:"image,omitempty"`
}
