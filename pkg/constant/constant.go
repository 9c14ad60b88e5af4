package constant

const (
	RoleOrganizer = "ORGANIZER"
	RoleAdmin     = "ADMIN"

	// BcryptCost is applied to organizer passwords. Refresh secrets use a
	// keyed hash instead, see the refresh token manager.
	BcryptCost = 12

	// RefreshSecretBytes is the entropy of a refresh secret before hex encoding.
	RefreshSecretBytes = 40

	RefreshCookieName   = "rt"
	RefreshCookieMaxAge = 7 * 24 * 60 * 60 // seconds
)
