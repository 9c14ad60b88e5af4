package dto

type OrganizerOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	AccessToken string          `json:"accessToken"`
	Organizer   OrganizerOutput `json:"organizer"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
