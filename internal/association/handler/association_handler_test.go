package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachary-Blundell/convergence-des-luttes/internal/association/domain"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/association/handler"
	apperror "github.com/Zachary-Blundell/convergence-des-luttes/internal/errors"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/mocks"
)

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockAssociationRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAssociationRepository(ctrl)
	app := fiber.New(fiber.Config{ErrorHandler: apperror.Handler})
	handler.RegisterRoutes(app, handler.NewAssociationHandler(repo))
	return app, repo
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestListAssociations(t *testing.T) {
	app, repo := newTestApp(t)
	now := time.Now()

	repo.EXPECT().List(gomock.Any()).Return([]domain.Association{
		{
			ID:   "assoc-1",
			Name: "Climate Justice League",
			Slug: "climate-justice",
			SocialLinks: []domain.SocialLink{
				{ID: "link-1", AssociationID: "assoc-1", Platform: "TWITTER", URL: "https://twitter.com/cjl"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/associations", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "climate-justice", first["slug"])
	assert.Len(t, first["socialLinks"], 1)
}

func TestGetAssociation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().GetByID(gomock.Any(), "assoc-1").
			Return(&domain.Association{ID: "assoc-1", Name: "Climate Justice League", Slug: "climate-justice"}, nil)

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/associations/assoc-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/associations/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestCreateAssociation(t *testing.T) {
	t.Run("success with generated slug", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, a *domain.Association) error {
				assert.NotEmpty(t, a.ID)
				assert.Equal(t, "tenant-union-est", a.Slug)
				return nil
			})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/associations", fiber.Map{
			"name": "Tenant Union Est",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]any)
		assert.Equal(t, "tenant-union-est", data["slug"])
	})

	t.Run("explicit slug wins", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, a *domain.Association) error {
				assert.Equal(t, "tue", a.Slug)
				return nil
			})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/associations", fiber.Map{
			"name": "Tenant Union Est",
			"slug": "tue",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("missing name", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/associations", fiber.Map{
			"description": "no name here",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate slug maps to conflict", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "associations_slug_key"})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/associations", fiber.Map{
			"name": "Tenant Union Est",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestUpdateAssociation(t *testing.T) {
	t.Run("patches only supplied fields", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().Update(gomock.Any(), "assoc-1", map[string]any{"name": "Renamed"}).Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), "assoc-1").
			Return(&domain.Association{ID: "assoc-1", Name: "Renamed", Slug: "climate-justice"}, nil)

		resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/v1/associations/assoc-1", fiber.Map{
			"name": "Renamed",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]any)
		assert.Equal(t, "Renamed", data["name"])
	})

	t.Run("unknown id", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(apperror.ErrAssociationNotFound)

		resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/v1/associations/missing", fiber.Map{
			"name": "Renamed",
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteAssociation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().Delete(gomock.Any(), "assoc-1").Return(nil)

		resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/v1/associations/assoc-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("repository failure stays generic", func(t *testing.T) {
		app, repo := newTestApp(t)
		repo.EXPECT().Delete(gomock.Any(), "assoc-1").Return(fmt.Errorf("connection reset"))

		resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/v1/associations/assoc-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "connection reset")
	})
}
