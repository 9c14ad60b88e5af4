package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	assocdomain "github.com/Zachary-Blundell/convergence-des-luttes/internal/association/domain"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/domain"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/dto"
	autherror "github.com/Zachary-Blundell/convergence-des-luttes/internal/errors"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/obs"
	authconstant "github.com/Zachary-Blundell/convergence-des-luttes/pkg/constant"
)

// AuthService orchestrates registration, login, logout and refresh over the
// credential store, the password hasher, the token signer and the refresh
// token manager.
type AuthService struct {
	repo         domain.OrganizerRepository
	tokenService TokenGenerator
	refresh      *RefreshTokenManager
}

// AuthResult is what a successful register/login/refresh hands back to the
// HTTP layer: the signed access token, the organizer, and the value to set
// as the refresh cookie.
type AuthResult struct {
	AccessToken   string
	Organizer     *domain.Organizer
	RefreshCookie string
}

func NewAuthService(repo domain.OrganizerRepository, tokenService TokenGenerator, refresh *RefreshTokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenService: tokenService,
		refresh:      refresh,
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, autherror.ErrEmailAndPasswordRequired
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyUsed
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	organizer := &domain.Organizer{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         authconstant.RoleOrganizer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	assoc := newAssociation(input.Association, now)
	if assoc != nil {
		organizer.AssociationID = &assoc.ID
	}

	if err := s.repo.Create(ctx, organizer, assoc); err != nil {
		return nil, err
	}

	cookie, err := s.refresh.Issue(ctx, organizer.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenService.Sign(organizer.ID, organizer.Role)
	if err != nil {
		return nil, err
	}

	obs.RegistrationsTotal.Inc()

	return &AuthResult{
		AccessToken:   accessToken,
		Organizer:     organizer,
		RefreshCookie: cookie,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*AuthResult, error) {
	organizer, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password must be indistinguishable.
	if organizer == nil || !VerifyPassword(input.Password, organizer.PasswordHash) {
		obs.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, autherror.ErrInvalidCredentials
	}

	cookie, err := s.refresh.Rotate(ctx, organizer.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenService.Sign(organizer.ID, organizer.Role)
	if err != nil {
		return nil, err
	}

	obs.LoginsTotal.WithLabelValues("success").Inc()

	return &AuthResult{
		AccessToken:   accessToken,
		Organizer:     organizer,
		RefreshCookie: cookie,
	}, nil
}

// Logout revokes every active token of the organizer owning the presented
// cookie. Best effort: a missing, malformed or already-revoked cookie still
// counts as a successful logout.
func (s *AuthService) Logout(ctx context.Context, cookieValue string) error {
	if cookieValue == "" {
		return nil
	}

	id, _, err := DecodeCookieValue(cookieValue)
	if err != nil {
		return nil
	}

	rt, err := s.repo.GetRefreshTokenByID(ctx, id)
	if err != nil {
		return err
	}
	if rt == nil {
		return nil
	}

	if err := s.refresh.RevokeAll(ctx, rt.OrganizerID); err != nil {
		return err
	}

	obs.LogoutsTotal.Inc()
	return nil
}

// Refresh exchanges a valid refresh cookie for a new access token, rotating
// the refresh token in the process.
func (s *AuthService) Refresh(ctx context.Context, cookieValue string) (*AuthResult, error) {
	if cookieValue == "" {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	rt, err := s.refresh.Validate(ctx, cookieValue)
	if err != nil {
		obs.RefreshesTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	organizer, err := s.repo.GetByID(ctx, rt.OrganizerID)
	if err != nil {
		return nil, err
	}
	if organizer == nil {
		obs.RefreshesTotal.WithLabelValues("failure").Inc()
		return nil, autherror.ErrRefreshTokenNotFound
	}

	cookie, err := s.refresh.Rotate(ctx, organizer.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenService.Sign(organizer.ID, organizer.Role)
	if err != nil {
		return nil, err
	}

	obs.RefreshesTotal.WithLabelValues("success").Inc()

	return &AuthResult{
		AccessToken:   accessToken,
		Organizer:     organizer,
		RefreshCookie: cookie,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newAssociation(input *dto.AssociationInput, now time.Time) *assocdomain.Association {
	if input == nil {
		return nil
	}

	s := input.Slug
	if s == "" {
		s = slug.Make(input.Name)
	}

	return &assocdomain.Association{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Slug:         s,
		Description:  input.Description,
		ContactEmail: input.ContactEmail,
		Phone:        input.Phone,
		Website:      input.Website,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
