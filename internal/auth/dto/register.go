package dto

type RegisterInput struct {
	Email       string            `json:"email"`
	Password    string            `json:"password"`
	Association *AssociationInput `json:"association,omitempty"`
}

// AssociationInput is the optional payload for creating the organizer's
// association in the same transaction as the account itself.
type AssociationInput struct {
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	Description  string `json:"description,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
}
