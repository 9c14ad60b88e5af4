package domain

//go:generate mockgen -destination=../../mocks/mock_organizer_repository.go -package=mocks github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/domain OrganizerRepository

import (
	"context"

	assocdomain "github.com/Zachary-Blundell/convergence-des-luttes/internal/association/domain"
)

type OrganizerRepository interface {
	GetByEmail(ctx context.Context, email string) (*Organizer, error)
	GetByID(ctx context.Context, id string) (*Organizer, error)
	// Create inserts the organizer and, when assoc is non-nil, the new
	// association in the same transaction.
	Create(ctx context.Context, organizer *Organizer, assoc *assocdomain.Association) error
	StoreRefreshToken(ctx context.Context, rt *RefreshToken) (int64, error)
	GetRefreshTokenByID(ctx context.Context, id int64) (*RefreshToken, error)
	RevokeActiveByOrganizerID(ctx context.Context, organizerID string) error
	// RotateRefreshToken revokes every active token of the organizer and
	// stores rt inside one serializable transaction, returning the new row id.
	RotateRefreshToken(ctx context.Context, organizerID string, rt *RefreshToken) (int64, error)
}
