package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/dto"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/service"
	authconstant "github.com/Zachary-Blundell/convergence-des-luttes/pkg/constant"
)

type AuthHandler struct {
	authService   *service.AuthService
	tokenService  service.TokenGenerator
	secureCookies bool
}

func NewAuthHandler(authService *service.AuthService, tokenService service.TokenGenerator, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		tokenService:  tokenService,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "invalid input",
		})
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, result.RefreshCookie)

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		AccessToken: result.AccessToken,
		Organizer: dto.OrganizerOutput{
			ID:    result.Organizer.ID,
			Email: result.Organizer.Email,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "invalid input",
		})
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, result.RefreshCookie)

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		AccessToken: result.AccessToken,
		Organizer: dto.OrganizerOutput{
			ID:    result.Organizer.ID,
			Email: result.Organizer.Email,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Context(), c.Cookies(authconstant.RefreshCookieName)); err != nil {
		return err
	}

	h.clearRefreshCookie(c)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	result, err := h.authService.Refresh(c.Context(), c.Cookies(authconstant.RefreshCookieName))
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, result.RefreshCookie)

	return c.Status(fiber.StatusOK).JSON(dto.RefreshResponse{
		AccessToken: result.AccessToken,
	})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     authconstant.RefreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   authconstant.RefreshCookieMaxAge,
		Secure:   h.secureCookies,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authconstant.RefreshCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   h.secureCookies,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
