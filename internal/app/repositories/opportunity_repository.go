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

// OpportunityRepository handles database operations for opportunity listings
type OpportunityRepository struct {
	db *pgxpool.Pool
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(db *pgxpool.Pool) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

// ListActive retrieves active listings, newest first, up to limit. Expired
// listings are excluded.
func (r *OpportunityRepository) ListActive(ctx context.Context, limit int) ([]models.Opportunity, error) {
	query := squirrel.Select(
		"id", "title", "description", "type", "location", "company",
		"apply_url", "active", "created_at", "expires_at",
	).
		From("opportunities").
		Where("active = ?", true).
		Where("expires_at IS NULL OR expires_at > NOW()").
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

	listings := []models.Opportunity{}
	for rows.Next() {
		var o models.Opportunity
		if err := rows.Scan(
			&o.ID, &o.Title, &o.Description, &o.Type, &o.Location,
			&o.Company, &o.ApplyURL, &o.Active, &o.CreatedAt, &o.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		listings = append(listings, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return listings, nil
}

// Create inserts a new opportunity listing
func (r *OpportunityRepository) Create(ctx context.Context, opp *models.Opportunity) (int64, error) {
	query := `
		INSERT INTO opportunities (title, description, type, location, company, apply_url, active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		opp.Title, opp.Description, opp.Type, opp.Location, opp.Company,
		opp.ApplyURL, opp.Active, opp.ExpiresAt,
	).Scan(&opp.ID, &opp.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return opp.ID, nil
}

// Update updates an existing listing
func (r *OpportunityRepository) Update(ctx context.Context, opp *models.Opportunity) error {
	query := `
		UPDATE opportunities
		SET title = $1, description = $2, type = $3, location = $4,
		    company = $5, apply_url = $6, active = $7, expires_at = $8
		WHERE id = $9
	`

	result, err := r.db.Exec(ctx, query,
		opp.Title, opp.Description, opp.Type, opp.Location, opp.Company,
		opp.ApplyURL, opp.Active, opp.ExpiresAt, opp.ID,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: opportunity %d", apperrors.ErrResourceNotFound, opp.ID)
	}

	return nil
}

// Delete removes a listing
func (r *OpportunityRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: opportunity %d", apperrors.ErrResourceNotFound, id)
	}

	return nil
}

// GetByID retrieves a single listing
func (r *OpportunityRepository) GetByID(ctx context.Context, id int64) (*models.Opportunity, error) {
	query := `
		SELECT id, title, description, type, location, company, apply_url, active, created_at, expires_at
		FROM opportunities
		WHERE id = $1
	`

	var o models.Opportunity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Title, &o.Description, &o.Type, &o.Location,
		&o.Company, &o.ApplyURL, &o.Active, &o.CreatedAt, &o.ExpiresAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: opportunity %d", apperrors.ErrResourceNotFound, id)
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &o, nil
}
