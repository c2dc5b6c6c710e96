package domain

import gonanoid "github.com/matoous/go-nanoid/v2"

// NewID mints a fresh record identifier. IDs are opaque and never reassigned.
func NewID() string {
	return gonanoid.Must()
}
