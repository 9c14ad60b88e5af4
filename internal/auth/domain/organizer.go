package domain

import "time"

type Organizer struct {
	ID            string
	Email         string
	PasswordHash  string
	Role          string
	AssociationID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RefreshToken is the stored form of a refresh credential. TokenHash is a
// keyed fingerprint of the secret; the plaintext never touches the database.
type RefreshToken struct {
	ID          int64
	TokenHash   string
	OrganizerID string
	ExpiresAt   time.Time
	Revoked     bool
	CreatedAt   time.Time
}

// Valid reports whether the token can still be exchanged at the given time.
func (rt *RefreshToken) Valid(now time.Time) bool {
	return !rt.Revoked && now.Before(rt.ExpiresAt)
}
