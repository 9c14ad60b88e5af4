package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	assocdomain "github.com/Zachary-Blundell/convergence-des-luttes/internal/association/domain"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/domain"
)

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	query := `
		SELECT id, email, password_hash, role, association_id, created_at, updated_at
		FROM organizers
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	return scanOrganizer(row)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	query := `
		SELECT id, email, password_hash, role, association_id, created_at, updated_at
		FROM organizers
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	return scanOrganizer(row)
}

func scanOrganizer(row pgx.Row) (*domain.Organizer, error) {
	var organizer domain.Organizer
	err := row.Scan(&organizer.ID, &organizer.Email, &organizer.PasswordHash, &organizer.Role,
		&organizer.AssociationID, &organizer.CreatedAt, &organizer.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organizer: %w", err)
	}

	return &organizer, nil
}

func (r *PostgresRepository) Create(ctx context.Context, organizer *domain.Organizer, assoc *assocdomain.Association) error {
	const insertOrganizer = `
        INSERT INTO organizers (id, email, password_hash, role, association_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	if assoc == nil {
		_, err := r.db.Exec(ctx, insertOrganizer,
			organizer.ID, organizer.Email, organizer.PasswordHash, organizer.Role,
			organizer.AssociationID, organizer.CreatedAt, organizer.UpdatedAt)
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO associations (id, name, slug, description, contact_email, phone, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, assoc.ID, assoc.Name, assoc.Slug, assoc.Description, assoc.ContactEmail,
		assoc.Phone, assoc.Website, assoc.CreatedAt, assoc.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, insertOrganizer,
		organizer.ID, organizer.Email, organizer.PasswordHash, organizer.Role,
		organizer.AssociationID, organizer.CreatedAt, organizer.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) StoreRefreshToken(ctx context.Context, rt *domain.RefreshToken) (int64, error) {
	query := `INSERT INTO refresh_tokens (token_hash, organizer_id, expires_at, revoked, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		rt.TokenHash, rt.OrganizerID, rt.ExpiresAt, rt.Revoked, rt.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) GetRefreshTokenByID(ctx context.Context, id int64) (*domain.RefreshToken, error) {
	query := `
		SELECT id, token_hash, organizer_id, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.TokenHash, &rt.OrganizerID, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

func (r *PostgresRepository) RevokeActiveByOrganizerID(ctx context.Context, organizerID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE organizer_id = $1 AND revoked = FALSE
	`, organizerID)
	return err
}

// RotateRefreshToken performs revoke-then-issue as one serializable
// transaction so two concurrent rotations for the same organizer cannot
// both leave a token alive.
func (r *PostgresRepository) RotateRefreshToken(ctx context.Context, organizerID string, rt *domain.RefreshToken) (int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE organizer_id = $1 AND revoked = FALSE
	`, organizerID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO refresh_tokens (token_hash, organizer_id, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, rt.TokenHash, rt.OrganizerID, rt.ExpiresAt, rt.Revoked, rt.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store rotated refresh token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
