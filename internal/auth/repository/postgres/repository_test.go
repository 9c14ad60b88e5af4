package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assocdomain "github.com/Zachary-Blundell/convergence-des-luttes/internal/association/domain"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/domain"
	repo "github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/repository/postgres"
)

var organizerColumns = []string{"id", "email", "password_hash", "role", "association_id", "created_at", "updated_at"}

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	organizerEmail := "a@x.com"

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(organizerEmail).
			WillReturnRows(pgxmock.NewRows(organizerColumns).
				AddRow("organizer-123", organizerEmail, "hash", "ORGANIZER", (*string)(nil), time.Now(), time.Now()))

		organizer, err := r.GetByEmail(ctx, organizerEmail)
		require.NoError(t, err)
		assert.Equal(t, "organizer-123", organizer.ID)
		assert.Equal(t, organizerEmail, organizer.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(organizerEmail).
			WillReturnError(pgx.ErrNoRows)

		organizer, err := r.GetByEmail(ctx, organizerEmail)
		require.NoError(t, err) // Should return nil organizer, nil error
		assert.Nil(t, organizer)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(organizerEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, organizerEmail)
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("organizer-123").
			WillReturnRows(pgxmock.NewRows(organizerColumns).
				AddRow("organizer-123", "a@x.com", "hash", "ADMIN", (*string)(nil), time.Now(), time.Now()))

		organizer, err := r.GetByID(ctx, "organizer-123")
		require.NoError(t, err)
		assert.Equal(t, "ADMIN", organizer.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		organizer, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, organizer)
	})
}

// TestCreate covers organizer creation with and without a nested association.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	now := time.Now()
	organizer := &domain.Organizer{
		ID:           "organizer-123",
		Email:        "new@x.com",
		PasswordHash: "new-hash",
		Role:         "ORGANIZER",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("without association", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO organizers").
			WithArgs(organizer.ID, organizer.Email, organizer.PasswordHash, organizer.Role,
				organizer.AssociationID, organizer.CreatedAt, organizer.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, organizer, nil)
		assert.NoError(t, err)
	})

	t.Run("with association in one transaction", func(t *testing.T) {
		assoc := &assocdomain.Association{
			ID:        "assoc-456",
			Name:      "Climate Justice League",
			Slug:      "climate-justice",
			CreatedAt: now,
			UpdatedAt: now,
		}
		withAssoc := *organizer
		withAssoc.AssociationID = &assoc.ID

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO associations").
			WithArgs(assoc.ID, assoc.Name, assoc.Slug, assoc.Description, assoc.ContactEmail,
				assoc.Phone, assoc.Website, assoc.CreatedAt, assoc.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO organizers").
			WithArgs(withAssoc.ID, withAssoc.Email, withAssoc.PasswordHash, withAssoc.Role,
				withAssoc.AssociationID, withAssoc.CreatedAt, withAssoc.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		mock.ExpectRollback()

		err := r.Create(ctx, &withAssoc, assoc)
		assert.NoError(t, err)
	})

	t.Run("association insert failure rolls back", func(t *testing.T) {
		assoc := &assocdomain.Association{ID: "assoc-456", Slug: "taken-slug", CreatedAt: now, UpdatedAt: now}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO associations").
			WithArgs(assoc.ID, assoc.Name, assoc.Slug, assoc.Description, assoc.ContactEmail,
				assoc.Phone, assoc.Website, assoc.CreatedAt, assoc.UpdatedAt).
			WillReturnError(fmt.Errorf("duplicate slug"))
		mock.ExpectRollback()

		err := r.Create(ctx, organizer, assoc)
		assert.Error(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO organizers").
			WithArgs(organizer.ID, organizer.Email, organizer.PasswordHash, organizer.Role,
				organizer.AssociationID, organizer.CreatedAt, organizer.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, organizer, nil)
		assert.Error(t, err)
	})
}

// TestStoreRefreshToken covers the insert-returning-id path.
func TestStoreRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	rt := &domain.RefreshToken{
		TokenHash:   "fingerprint",
		OrganizerID: "organizer-123",
		ExpiresAt:   time.Now().Add(7 * 24 * time.Hour),
		CreatedAt:   time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO refresh_tokens").
			WithArgs(rt.TokenHash, rt.OrganizerID, rt.ExpiresAt, rt.Revoked, rt.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

		id, err := r.StoreRefreshToken(ctx, rt)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO refresh_tokens").
			WithArgs(rt.TokenHash, rt.OrganizerID, rt.ExpiresAt, rt.Revoked, rt.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.StoreRefreshToken(ctx, rt)
		assert.Error(t, err)
	})
}

func TestGetRefreshTokenByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)
	columns := []string{"id", "token_hash", "organizer_id", "expires_at", "revoked", "created_at"}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, token_hash").
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(42), "fingerprint", "organizer-123", time.Now().Add(time.Hour), false, time.Now()))

		rt, err := r.GetRefreshTokenByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), rt.ID)
		assert.Equal(t, "organizer-123", rt.OrganizerID)
		assert.False(t, rt.Revoked)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, token_hash").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		rt, err := r.GetRefreshTokenByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, rt)
	})
}

func TestRevokeActiveByOrganizerID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE refresh_tokens").
			WithArgs("organizer-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))

		assert.NoError(t, r.RevokeActiveByOrganizerID(ctx, "organizer-123"))
	})

	t.Run("nothing active is still fine", func(t *testing.T) {
		mock.ExpectExec("UPDATE refresh_tokens").
			WithArgs("organizer-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.NoError(t, r.RevokeActiveByOrganizerID(ctx, "organizer-123"))
	})
}

// TestRotateRefreshToken covers the serializable revoke-then-issue transaction.
func TestRotateRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	rt := &domain.RefreshToken{
		TokenHash:   "new-fingerprint",
		OrganizerID: "organizer-123",
		ExpiresAt:   time.Now().Add(7 * 24 * time.Hour),
		CreatedAt:   time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
		mock.ExpectExec("UPDATE refresh_tokens").
			WithArgs("organizer-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery("INSERT INTO refresh_tokens").
			WithArgs(rt.TokenHash, rt.OrganizerID, rt.ExpiresAt, rt.Revoked, rt.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(43)))
		mock.ExpectCommit()
		mock.ExpectRollback()

		id, err := r.RotateRefreshToken(ctx, "organizer-123", rt)
		require.NoError(t, err)
		assert.Equal(t, int64(43), id)
	})

	t.Run("insert failure rolls everything back", func(t *testing.T) {
		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
		mock.ExpectExec("UPDATE refresh_tokens").
			WithArgs("organizer-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery("INSERT INTO refresh_tokens").
			WithArgs(rt.TokenHash, rt.OrganizerID, rt.ExpiresAt, rt.Revoked, rt.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))
		mock.ExpectRollback()

		_, err := r.RotateRefreshToken(ctx, "organizer-123", rt)
		assert.Error(t, err)
	})

	t.Run("revoke failure aborts before insert", func(t *testing.T) {
		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
		mock.ExpectExec("UPDATE refresh_tokens").
			WithArgs("organizer-123").
			WillReturnError(fmt.Errorf("db error"))
		mock.ExpectRollback()

		_, err := r.RotateRefreshToken(ctx, "organizer-123", rt)
		assert.Error(t, err)
	})
}
