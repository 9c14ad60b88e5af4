package errors

import (
	"errors"
)

var (
	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrEmailAlreadyUsed         = errors.New("email already used")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrRefreshTokenNotFound     = errors.New("refresh token not found")
	ErrRefreshTokenRevoked      = errors.New("refresh token revoked")
	ErrRefreshTokenExpired      = errors.New("refresh token expired")
	ErrAssociationNotFound      = errors.New("association not found")
	ErrOrganizerNotFound        = errors.New("organizer not found")
)
