package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
)

// TechUpdateRepository handles database operations for tech updates
type TechUpdateRepository struct {
	db *pgxpool.Pool
}

// NewTechUpdateRepository creates a new TechUpdateRepository
func NewTechUpdateRepository(db *pgxpool.Pool) *TechUpdateRepository {
	return &TechUpdateRepository{db: db}
}

// ListPublished retrieves published updates, newest first, up to limit.
func (r *TechUpdateRepository) ListPublished(ctx context.Context, limit int) ([]models.TechUpdate, error) {
	query := squirrel.Select(
		"id", "title", "content", "excerpt", "category", "image_url",
		"published", "created_at", "updated_at",
	).
		From("tech_updates").
		Where("published = ?", true).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	updates := []models.TechUpdate{}
	for rows.Next() {
		var u models.TechUpdate
		if err := rows.Scan(
			&u.ID, &u.Title, &u.Content, &u.Excerpt, &u.Category,
			&u.ImageURL, &u.Published, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return updates, nil
}

// Create inserts a new tech update
func (r *TechUpdateRepository) Create(ctx context.Context, update *models.TechUpdate) (int64, error) {
	query := `
		INSERT INTO tech_updates (title, content, excerpt, category, image_url, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		update.Title, update.Content, update.Excerpt, update.Category,
		update.ImageURL, update.Published,
	).Scan(&update.ID, &update.CreatedAt, &update.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return update.ID, nil
}

// Update updates an existing tech update
func (r *TechUpdateRepository) Update(ctx context.Context, update *models.TechUpdate) error {
	query := `
		UPDATE tech_updates
		SET title = $1, content = $2, excerpt = $3, category = $4,
		    image_url = $5, published = $6, updated_at = NOW()
		WHERE id = $7
	`

	result, err := r.db.Exec(ctx, query,
		update.Title, update.Content, update.Excerpt, update.Category,
		update.ImageURL, update.Published, update.ID,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: tech update %d", apperrors.ErrResourceNotFound, update.ID)
	}

	return nil
}

// Delete removes a tech update
func (r *TechUpdateRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tech_updates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: tech update %d", apperrors.ErrResourceNotFound, id)
	}

	return nil
}

// GetByID retrieves a single update
func (r *TechUpdateRepository) GetByID(ctx context.Context, id int64) (*models.TechUpdate, error) {
	query := `
		SELECT id, title, content, excerpt, category, image_url, published, created_at, updated_at
		FROM tech_updates
		WHERE id = $1
	`

	var u models.TechUpdate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Title, &u.Content, &u.Excerpt, &u.Category,
		&u.ImageURL, &u.Published, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: tech update %d", apperrors.ErrResourceNotFound, id)
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &u, nil
}
