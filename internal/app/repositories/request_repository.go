package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
)

// RequestRepository handles database operations for student hub requests and
// their status history
type RequestRepository struct {
	db *pgxpool.Pool
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts a new unpaid request row and fills in its generated id.
func (r *RequestRepository) Create(ctx context.Context, req *models.StudentRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	data, err := json.Marshal(req.Data)
	if err != nil {
		return fmt.Errorf("error marshaling request data: %w", err)
	}

	query := `
		INSERT INTO student_requests (id, request_type, email, data, paid)
		VALUES ($1, $2, $3, $4, false)
		RETURNING created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query, req.ID, req.RequestType, req.Email, data).
		Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a single request
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.StudentRequest, error) {
	query := `
		SELECT id, request_type, email, data, paid, stripe_session_id, created_at, updated_at
		FROM student_requests
		WHERE id = $1
	`

	var req models.StudentRequest
	var data []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequestType, &req.Email, &data, &req.Paid,
		&req.StripeSessionID, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: request %s", apperrors.ErrRequestNotFound, id)
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &req.Data); err != nil {
			return nil, fmt.Errorf("error unmarshaling request data: %w", err)
		}
	}

	return &req, nil
}

// SetStripeSession records the checkout session created for a request.
func (r *RequestRepository) SetStripeSession(ctx context.Context, requestID, stripeSessionID string) error {
	query := `
		UPDATE student_requests
		SET stripe_session_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.Exec(ctx, query, stripeSessionID, requestID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: request %s", apperrors.ErrRequestNotFound, requestID)
	}

	return nil
}

// MarkPaid flips the paid flag for a request. The conditional WHERE keeps the
// flip idempotent under concurrent or repeated confirmations; flipped reports
// whether this call was the one that transitioned the row.
func (r *RequestRepository) MarkPaid(ctx context.Context, requestID string) (flipped bool, err error) {
	query := `
		UPDATE student_requests
		SET paid = true, updated_at = NOW()
		WHERE id = $1 AND paid = false
	`

	result, err := r.db.Exec(ctx, query, requestID)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// AddHistory appends a status trail entry for a request.
func (r *RequestRepository) AddHistory(ctx context.Context, entry *models.StudentRequestHistory) error {
	query := `
		INSERT INTO student_request_history (request_id, status, notes)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, entry.RequestID, entry.Status, entry.Notes).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// ListHistory returns the status trail for a request, oldest first.
func (r *RequestRepository) ListHistory(ctx context.Context, requestID string) ([]models.StudentRequestHistory, error) {
	query := `
		SELECT id, request_id, status, notes, created_at
		FROM student_request_history
		WHERE request_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	entries := []models.StudentRequestHistory{}
	for rows.Next() {
		var e models.StudentRequestHistory
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Status, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}
