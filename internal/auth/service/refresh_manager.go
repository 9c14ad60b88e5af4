package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/domain"
	autherror "github.com/Zachary-Blundell/convergence-des-luttes/internal/errors"
	authconstant "github.com/Zachary-Blundell/convergence-des-luttes/pkg/constant"
)

// RefreshTokenManager owns the server-side lifecycle of refresh tokens:
// issue on register, rotate on login/refresh, revoke on logout. Only a
// keyed fingerprint of each secret is stored. The cookie value embeds the
// row id ("<id>.<secret>") so a presented token resolves to exactly one
// stored row instead of a scan over every hash of the organizer.
type RefreshTokenManager struct {
	repo   domain.OrganizerRepository
	secret []byte
	expiry time.Duration
}

func NewRefreshTokenManager(repo domain.OrganizerRepository, secret string, expiryMinutes int) *RefreshTokenManager {
	return &RefreshTokenManager{
		repo:   repo,
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Fingerprint computes the stored form of a refresh secret. The secret is
// already high-entropy random data, so a fast keyed hash is enough; bcrypt
// is reserved for human passwords.
func (m *RefreshTokenManager) Fingerprint(plain string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(plain))
	return hex.EncodeToString(mac.Sum(nil))
}

// Issue stores a fresh token row for the organizer and returns the cookie
// value. This is the only moment the plaintext secret exists server-side.
func (m *RefreshTokenManager) Issue(ctx context.Context, organizerID string) (string, error) {
	plain, err := randomSecret()
	if err != nil {
		return "", err
	}

	id, err := m.repo.StoreRefreshToken(ctx, m.newToken(organizerID, plain))
	if err != nil {
		return "", err
	}

	return EncodeCookieValue(id, plain), nil
}

// Rotate revokes every active token of the organizer and issues a
// replacement as one atomic step. If the issuance half fails the organizer
// is left with zero valid tokens, which forces a re-login rather than
// leaving two sessions alive.
func (m *RefreshTokenManager) Rotate(ctx context.Context, organizerID string) (string, error) {
	plain, err := randomSecret()
	if err != nil {
		return "", err
	}

	id, err := m.repo.RotateRefreshToken(ctx, organizerID, m.newToken(organizerID, plain))
	if err != nil {
		return "", err
	}

	return EncodeCookieValue(id, plain), nil
}

// RevokeAll marks every active token of the organizer revoked. Calling it
// again when nothing is active is a no-op.
func (m *RefreshTokenManager) RevokeAll(ctx context.Context, organizerID string) error {
	return m.repo.RevokeActiveByOrganizerID(ctx, organizerID)
}

// Validate resolves a presented cookie value to its stored row and checks
// fingerprint, revocation and expiry.
func (m *RefreshTokenManager) Validate(ctx context.Context, cookieValue string) (*domain.RefreshToken, error) {
	id, plain, err := DecodeCookieValue(cookieValue)
	if err != nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	rt, err := m.repo.GetRefreshTokenByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	if !hmac.Equal([]byte(rt.TokenHash), []byte(m.Fingerprint(plain))) {
		return nil, autherror.ErrRefreshTokenNotFound
	}
	if rt.Revoked {
		return nil, autherror.ErrRefreshTokenRevoked
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, autherror.ErrRefreshTokenExpired
	}

	return rt, nil
}

func (m *RefreshTokenManager) newToken(organizerID, plain string) *domain.RefreshToken {
	now := time.Now()
	return &domain.RefreshToken{
		TokenHash:   m.Fingerprint(plain),
		OrganizerID: organizerID,
		ExpiresAt:   now.Add(m.expiry),
		CreatedAt:   now,
	}
}

func randomSecret() (string, error) {
	buf := make([]byte, authconstant.RefreshSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func EncodeCookieValue(id int64, secret string) string {
	return strconv.FormatInt(id, 10) + "." + secret
}

func DecodeCookieValue(value string) (int64, string, error) {
	idPart, secret, ok := strings.Cut(value, ".")
	if !ok || secret == "" {
		return 0, "", autherror.ErrRefreshTokenNotFound
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, "", autherror.ErrRefreshTokenNotFound
	}
	return id, secret, nil
}
