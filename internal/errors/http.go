package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// HTTPError carries the status and client-facing body for a failed request.
// Message is the only text ever sent to the client; internals stay in logs.
type HTTPError struct {
	Status  int
	Name    string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Translate maps service-layer sentinel errors onto their HTTP form.
// Every credential failure collapses into the same 401 body so that a
// caller cannot distinguish an unknown email from a wrong password or a
// stale refresh token.
func Translate(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailAndPasswordRequired):
		return &HTTPError{Status: fiber.StatusBadRequest, Name: "Bad Request", Message: err.Error()}
	case errors.Is(err, ErrEmailAlreadyUsed):
		return &HTTPError{Status: fiber.StatusConflict, Name: "Conflict", Message: err.Error()}
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrRefreshTokenNotFound),
		errors.Is(err, ErrRefreshTokenRevoked),
		errors.Is(err, ErrRefreshTokenExpired):
		return &HTTPError{Status: fiber.StatusUnauthorized, Name: "Unauthorized", Message: "Invalid credentials"}
	case errors.Is(err, ErrAssociationNotFound), errors.Is(err, ErrOrganizerNotFound):
		return &HTTPError{Status: fiber.StatusNotFound, Name: "Not Found", Message: err.Error()}
	}

	if he := fromPostgres(err); he != nil {
		return he
	}

	return nil
}

// fromPostgres classifies constraint violations the datastore reports
// directly, for writes that are not pre-checked by the service layer.
func fromPostgres(err error) *HTTPError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return &HTTPError{Status: fiber.StatusConflict, Name: "Conflict", Message: "value already taken"}
	case pgerrcode.ForeignKeyViolation:
		return &HTTPError{Status: fiber.StatusBadRequest, Name: "Invalid reference", Message: "referenced record does not exist"}
	default:
		return nil
	}
}

// Handler is the app-level fiber error handler. It renders every error as
// the {error, message} JSON shape and hides anything unclassified behind a
// generic 500.
func Handler(c *fiber.Ctx, err error) error {
	var he *HTTPError
	if errors.As(err, &he) {
		return c.Status(he.Status).JSON(fiber.Map{"error": he.Name, "message": he.Message})
	}

	if translated := Translate(err); translated != nil {
		return c.Status(translated.Status).JSON(fiber.Map{"error": translated.Name, "message": translated.Message})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": "Error", "message": fe.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"message": "something went wrong",
	})
}
