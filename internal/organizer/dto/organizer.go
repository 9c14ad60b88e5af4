package dto

import "time"

type OrganizerOutput struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	AssociationID *string   `json:"associationId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpdateOrganizerInput is a partial patch; nil fields stay untouched.
type UpdateOrganizerInput struct {
	Email         *string `json:"email,omitempty"`
	Role          *string `json:"role,omitempty"`
	AssociationID *string `json:"associationId,omitempty"`
}
