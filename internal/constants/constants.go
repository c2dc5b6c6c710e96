package constants

import "time"

const (
	StateKeySession   = "session"
	StateKeyFavorites = "favorites"

	// Version tag written into every persisted state envelope. Bump together
	// with a migration path for the older payloads.
	SchemaVersion = 1
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	HydrateTimeout     = 10 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	MinRequiredPlayers = 2
)
