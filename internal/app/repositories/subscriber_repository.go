package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/dberrors"
)

// SubscriberRepository handles database operations for newsletter and
// community signups
type SubscriberRepository struct {
	db *pgxpool.Pool
}

// NewSubscriberRepository creates a new SubscriberRepository
func NewSubscriberRepository(db *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// InsertNewsletterSubscriber inserts a newsletter signup. A duplicate email
// maps to ErrAlreadySubscribed.
func (r *SubscriberRepository) InsertNewsletterSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email, frequency, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, sub.Email, sub.Frequency, sub.Active).
		Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadySubscribed, sub.Email)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// InsertCommunityMember inserts a community signup. A duplicate email maps to
// ErrAlreadySubscribed.
func (r *SubscriberRepository) InsertCommunityMember(ctx context.Context, member *models.CommunityMember) error {
	query := `
		INSERT INTO community_members (email, frequency, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, member.Email, member.Frequency, member.Active).
		Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadySubscribed, member.Email)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// DeleteCommunityMember removes a community signup by email. Used to undo a
// join whose welcome email could not be sent.
func (r *SubscriberRepository) DeleteCommunityMember(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM community_members WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}
