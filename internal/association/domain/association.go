package domain

import "time"

type Association struct {
	ID           string
	Name         string
	Slug         string
	Description  string
	ContactEmail string
	Phone        string
	Website      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	SocialLinks []SocialLink
	Articles    []Article
}

type SocialLink struct {
	ID            string
	AssociationID string
	Platform      string
	URL           string
}

type Article struct {
	ID            string
	AssociationID string
	Title         string
	Content       string
	PublishedAt   time.Time
}
