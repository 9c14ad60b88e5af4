package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/Zachary-Blundell/convergence-des-luttes/internal/association/domain"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/association/dto"
	apperror "github.com/Zachary-Blundell/convergence-des-luttes/internal/errors"
)

// AssociationRepository is what the handler needs from the datastore; the
// pgx implementation lives in repository/postgres.
type AssociationRepository interface {
	List(ctx context.Context) ([]domain.Association, error)
	GetByID(ctx context.Context, id string) (*domain.Association, error)
	Create(ctx context.Context, a *domain.Association) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

type AssociationHandler struct {
	repo AssociationRepository
}

func NewAssociationHandler(repo AssociationRepository) *AssociationHandler {
	return &AssociationHandler{repo: repo}
}

func (h *AssociationHandler) List(c *fiber.Ctx) error {
	associations, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.AssociationOutput, 0, len(associations))
	for i := range associations {
		out = append(out, toOutput(&associations[i]))
	}

	return c.JSON(fiber.Map{"data": out})
}

func (h *AssociationHandler) Get(c *fiber.Ctx) error {
	association, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if association == nil {
		return apperror.ErrAssociationNotFound
	}

	return c.JSON(fiber.Map{"data": toOutput(association)})
}

func (h *AssociationHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateAssociationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "invalid input",
		})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "name is required",
		})
	}

	s := input.Slug
	if s == "" {
		s = slug.Make(input.Name)
	}

	now := time.Now()
	association := &domain.Association{
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

	if err := h.repo.Create(c.Context(), association); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": toOutput(association)})
}

func (h *AssociationHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateAssociationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "invalid input",
		})
	}

	patch := map[string]any{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Slug != nil {
		patch["slug"] = *input.Slug
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.ContactEmail != nil {
		patch["contact_email"] = *input.ContactEmail
	}
	if input.Phone != nil {
		patch["phone"] = *input.Phone
	}
	if input.Website != nil {
		patch["website"] = *input.Website
	}

	id := c.Params("id")
	if err := h.repo.Update(c.Context(), id, patch); err != nil {
		return err
	}

	association, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if association == nil {
		return apperror.ErrAssociationNotFound
	}

	return c.JSON(fiber.Map{"data": toOutput(association)})
}

func (h *AssociationHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toOutput(a *domain.Association) dto.AssociationOutput {
	out := dto.AssociationOutput{
		ID:           a.ID,
		Name:         a.Name,
		Slug:         a.Slug,
		Description:  a.Description,
		ContactEmail: a.ContactEmail,
		Phone:        a.Phone,
		Website:      a.Website,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		SocialLinks:  make([]dto.SocialLinkOutput, 0, len(a.SocialLinks)),
		Articles:     make([]dto.ArticleOutput, 0, len(a.Articles)),
	}
	for _, l := range a.SocialLinks {
		out.SocialLinks = append(out.SocialLinks, dto.SocialLinkOutput{ID: l.ID, Platform: l.Platform, URL: l.URL})
	}
	for _, art := range a.Articles {
		out.Articles = append(out.Articles, dto.ArticleOutput{
			ID: art.ID, Title: art.Title, Content: art.Content, PublishedAt: art.PublishedAt,
		})
	}
	return out
}
