package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	authdomain "github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/domain"
	apperror "github.com/Zachary-Blundell/convergence-des-luttes/internal/errors"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/organizer/dto"
	authconstant "github.com/Zachary-Blundell/convergence-des-luttes/pkg/constant"
)

type OrganizerRepository interface {
	List(ctx context.Context) ([]authdomain.Organizer, error)
	GetByID(ctx context.Context, id string) (*authdomain.Organizer, error)
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

type OrganizerHandler struct {
	repo OrganizerRepository
}

func NewOrganizerHandler(repo OrganizerRepository) *OrganizerHandler {
	return &OrganizerHandler{repo: repo}
}

func (h *OrganizerHandler) List(c *fiber.Ctx) error {
	organizers, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.OrganizerOutput, 0, len(organizers))
	for i := range organizers {
		out = append(out, toOutput(&organizers[i]))
	}

	return c.JSON(fiber.Map{"data": out})
}

func (h *OrganizerHandler) Get(c *fiber.Ctx) error {
	organizer, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if organizer == nil {
		return apperror.ErrOrganizerNotFound
	}

	return c.JSON(fiber.Map{"data": toOutput(organizer)})
}

func (h *OrganizerHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateOrganizerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "invalid input",
		})
	}

	patch := map[string]any{}
	if input.Email != nil {
		patch["email"] = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Role != nil {
		role := strings.ToUpper(*input.Role)
		if role != authconstant.RoleOrganizer && role != authconstant.RoleAdmin {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Bad Request",
				"message": "unknown role",
			})
		}
		patch["role"] = role
	}
	if input.AssociationID != nil {
		patch["association_id"] = *input.AssociationID
	}

	id := c.Params("id")
	if err := h.repo.Update(c.Context(), id, patch); err != nil {
		return err
	}

	organizer, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if organizer == nil {
		return apperror.ErrOrganizerNotFound
	}

	return c.JSON(fiber.Map{"data": toOutput(organizer)})
}

func (h *OrganizerHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// toOutput never exposes the password hash.
func toOutput(o *authdomain.Organizer) dto.OrganizerOutput {
	return dto.OrganizerOutput{
		ID:            o.ID,
		Email:         o.Email,
		Role:          o.Role,
		AssociationID: o.AssociationID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
