package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
)

// ServiceRepository handles database operations for service offerings
type ServiceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository creates a new ServiceRepository
func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ListActive retrieves active services ordered by their display position.
func (r *ServiceRepository) ListActive(ctx context.Context) ([]models.Service, error) {
	query := `
		SELECT id, title, description, icon, features, active, order_index
		FROM services
		WHERE active = true
		ORDER BY order_index ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Description, &s.Icon, &s.Features,
			&s.Active, &s.OrderIndex,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return services, nil
}

// Create inserts a new service. Icon validation happens in the service layer
// before the row is written.
func (r *ServiceRepository) Create(ctx context.Context, svc *models.Service) (int64, error) {
	query := `
		INSERT INTO services (title, description, icon, features, active, order_index)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		svc.Title, svc.Description, svc.Icon, svc.Features, svc.Active, svc.OrderIndex,
	).Scan(&svc.ID)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return svc.ID, nil
}

// Update updates an existing service
func (r *ServiceRepository) Update(ctx context.Context, svc *models.Service) error {
	query := `
		UPDATE services
		SET title = $1, description = $2, icon = $3, features = $4,
		    active = $5, order_index = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(ctx, query,
		svc.Title, svc.Description, svc.Icon, svc.Features,
		svc.Active, svc.OrderIndex, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: service %d", apperrors.ErrResourceNotFound, svc.ID)
	}

	return nil
}

// Delete removes a service
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: service %d", apperrors.ErrResourceNotFound, id)
	}

	return nil
}

// Count returns the number of service rows. The seeder uses this to decide
// whether defaults are needed.
func (r *ServiceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// GetByID retrieves a single service
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	query := `
		SELECT id, title, description, icon, features, active, order_index
		FROM services
		WHERE id = $1
	`

	var s models.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Title, &s.Description, &s.Icon, &s.Features,
		&s.Active, &s.OrderIndex,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: service %d", apperrors.ErrResourceNotFound, id)
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &s, nil
}
