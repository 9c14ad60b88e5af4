package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Zachary-Blundell/convergence-des-luttes/internal/association/domain"
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

const associationColumns = `id, name, slug, description, contact_email, phone, website, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Association, error) {
	rows, err := r.db.Query(ctx, `SELECT `+associationColumns+` FROM associations ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list associations: %w", err)
	}
	defer rows.Close()

	var associations []domain.Association
	ids := make([]string, 0)
	for rows.Next() {
		var a domain.Association
		if err := scanAssociation(rows, &a); err != nil {
			return nil, err
		}
		associations = append(associations, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(associations) == 0 {
		return associations, nil
	}

	links, err := r.socialLinksByAssociation(ctx, ids)
	if err != nil {
		return nil, err
	}
	articles, err := r.articlesByAssociation(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range associations {
		associations[i].SocialLinks = links[associations[i].ID]
		associations[i].Articles = articles[associations[i].ID]
	}

	return associations, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Association, error) {
	row := r.db.QueryRow(ctx, `SELECT `+associationColumns+` FROM associations WHERE id = $1 LIMIT 1`, id)

	var a domain.Association
	if err := scanAssociation(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	links, err := r.socialLinksByAssociation(ctx, []string{a.ID})
	if err != nil {
		return nil, err
	}
	articles, err := r.articlesByAssociation(ctx, []string{a.ID})
	if err != nil {
		return nil, err
	}
	a.SocialLinks = links[a.ID]
	a.Articles = articles[a.ID]

	return &a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *domain.Association) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO associations (id, name, slug, description, contact_email, phone, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, a.ID, a.Name, a.Slug, a.Description, a.ContactEmail, a.Phone, a.Website, a.CreatedAt, a.UpdatedAt)
	return err
}

// Update applies the non-nil patch fields and bumps updated_at. Returns
// ErrAssociationNotFound when no row matched.
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

	query := fmt.Sprintf("UPDATE associations SET %supdated_at = now() WHERE id = $%d", set, len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrAssociationNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM associations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrAssociationNotFound
	}
	return nil
}

func (r *PostgresRepository) socialLinksByAssociation(ctx context.Context, ids []string) (map[string][]domain.SocialLink, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, association_id, platform, url
		FROM social_links
		WHERE association_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load social links: %w", err)
	}
	defer rows.Close()

	links := make(map[string][]domain.SocialLink)
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.AssociationID, &l.Platform, &l.URL); err != nil {
			return nil, err
		}
		links[l.AssociationID] = append(links[l.AssociationID], l)
	}
	return links, rows.Err()
}

func (r *PostgresRepository) articlesByAssociation(ctx context.Context, ids []string) (map[string][]domain.Article, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, association_id, title, content, published_at
		FROM articles
		WHERE association_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}
	defer rows.Close()

	articles := make(map[string][]domain.Article)
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.AssociationID, &a.Title, &a.Content, &a.PublishedAt); err != nil {
			return nil, err
		}
		articles[a.AssociationID] = append(articles[a.AssociationID], a)
	}
	return articles, rows.Err()
}

func scanAssociation(row pgx.Row, a *domain.Association) error {
	return row.Scan(&a.ID, &a.Name, &a.Slug, &a.Description, &a.ContactEmail,
		&a.Phone, &a.Website, &a.CreatedAt, &a.UpdatedAt)
}
