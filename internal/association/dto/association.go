package dto

import "time"

type CreateAssociationInput struct {
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	Description  string `json:"description,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
}

// UpdateAssociationInput is a partial patch; nil fields stay untouched.
type UpdateAssociationInput struct {
	Name         *string `json:"name,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	Description  *string `json:"description,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Website      *string `json:"website,omitempty"`
}

type AssociationOutput struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Slug         string             `json:"slug"`
	Description  string             `json:"description"`
	ContactEmail string             `json:"contactEmail"`
	Phone        string             `json:"phone"`
	Website      string             `json:"website"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	SocialLinks  []SocialLinkOutput `json:"socialLinks"`
	Articles     []ArticleOutput    `json:"articles"`
}

type SocialLinkOutput struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type ArticleOutput struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
}
