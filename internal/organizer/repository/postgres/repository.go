package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	authdomain "github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/domain"
	apperror "github.com/Zachary-Blundell/convergence-des-luttes/internal/errors"
)

type PgxIface interface {
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

const organizerColumns = `id, email, password_hash, role, association_id, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context) ([]authdomain.Organizer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+organizerColumns+` FROM organizers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizers: %w", err)
	}
	defer rows.Close()

	var organizers []authdomain.Organizer
	for rows.Next() {
		var o authdomain.Organizer
		err := rows.Scan(&o.ID, &o.Email, &o.PasswordHash, &o.Role, &o.AssociationID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		organizers = append(organizers, o)
	}

	return organizers, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*authdomain.Organizer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+organizerColumns+` FROM organizers WHERE id = $1 LIMIT 1`, id)

	var o authdomain.Organizer
	err := row.Scan(&o.ID, &o.Email, &o.PasswordHash, &o.Role, &o.AssociationID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organizer: %w", err)
	}

	return &o, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}

	set := ""
	args := make([]any, 0, len(patch)+1)
	for column, value := range patch {
		args = append(args, value)
		set += fmt.Sprintf("%s = $%d, ", column, len(args))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE organizers SET %supdated_at = now() WHERE id = $%d", set, len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrganizerNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM organizers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrganizerNotFound
	}
	return nil
}
