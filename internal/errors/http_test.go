package errors

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "missing fields", err: ErrEmailAndPasswordRequired, wantStatus: fiber.StatusBadRequest, wantMsg: "email and password are required"},
		{name: "duplicate email", err: ErrEmailAlreadyUsed, wantStatus: fiber.StatusConflict, wantMsg: "email already used"},
		{name: "bad credentials", err: ErrInvalidCredentials, wantStatus: fiber.StatusUnauthorized, wantMsg: "Invalid credentials"},
		{name: "unknown refresh token", err: ErrRefreshTokenNotFound, wantStatus: fiber.StatusUnauthorized, wantMsg: "Invalid credentials"},
		{name: "revoked refresh token", err: ErrRefreshTokenRevoked, wantStatus: fiber.StatusUnauthorized, wantMsg: "Invalid credentials"},
		{name: "expired refresh token", err: ErrRefreshTokenExpired, wantStatus: fiber.StatusUnauthorized, wantMsg: "Invalid credentials"},
		{name: "missing association", err: ErrAssociationNotFound, wantStatus: fiber.StatusNotFound, wantMsg: "association not found"},
		{name: "missing organizer", err: ErrOrganizerNotFound, wantStatus: fiber.StatusNotFound, wantMsg: "organizer not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := Translate(tt.err)
			require.NotNil(t, he)
			assert.Equal(t, tt.wantStatus, he.Status)
			assert.Equal(t, tt.wantMsg, he.Message)
		})
	}
}

func TestTranslate_CredentialFailuresAreUniform(t *testing.T) {
	// Every credential-class failure must render the identical body.
	first := Translate(ErrInvalidCredentials)
	for _, err := range []error{ErrRefreshTokenNotFound, ErrRefreshTokenRevoked, ErrRefreshTokenExpired} {
		assert.Equal(t, first, Translate(err))
	}
}

func TestTranslate_PostgresErrors(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	he := Translate(unique)
	require.NotNil(t, he)
	assert.Equal(t, fiber.StatusConflict, he.Status)

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	he = Translate(fk)
	require.NotNil(t, he)
	assert.Equal(t, fiber.StatusBadRequest, he.Status)

	assert.Nil(t, Translate(errors.New("anything else")))
}

func TestHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: Handler})
	app.Get("/sentinel", func(c *fiber.Ctx) error { return ErrEmailAlreadyUsed })
	app.Get("/unknown", func(c *fiber.Ctx) error { return errors.New("database exploded: secret details") })

	t.Run("sentinel is classified", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sentinel", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("unknown error leaks nothing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "secret details")
		assert.Contains(t, string(body), "something went wrong")
	})
}
