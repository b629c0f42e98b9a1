package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
)

const (
	wizardSessionKeyPrefix = "wizard:session:"
	wizardRequestKeyPrefix = "wizard:request:"
)

// WizardSessionRepository stores wizard sessions in redis with a TTL. Each
// session is a JSON blob under its session id; a second key indexes the
// session by its request id so a payment confirmation, which only carries the
// request id, can find its way back.
type WizardSessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewWizardSessionRepository creates a new WizardSessionRepository
func NewWizardSessionRepository(rdb *redis.Client, ttl time.Duration) *WizardSessionRepository {
	return &WizardSessionRepository{rdb: rdb, ttl: ttl}
}

// Save writes a session, refreshing its TTL. When the session is bound to a
// request the reverse index is written with the same TTL.
func (r *WizardSessionRepository) Save(ctx context.Context, session *models.WizardSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, wizardSessionKeyPrefix+session.ID, payload, r.ttl)
	if session.RequestID != "" {
		pipe.Set(ctx, wizardRequestKeyPrefix+session.RequestID, session.ID, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// Get retrieves a session by id. A missing or expired session maps to
// ErrSessionNotFound.
func (r *WizardSessionRepository) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	payload, err := r.rdb.Get(ctx, wizardSessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("error reading session: %w", err)
	}

	var session models.WizardSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("error unmarshaling session: %w", err)
	}

	return &session, nil
}

// GetByRequestID retrieves the session bound to a request id.
func (r *WizardSessionRepository) GetByRequestID(ctx context.Context, requestID string) (*models.WizardSession, error) {
	sessionID, err := r.rdb.Get(ctx, wizardRequestKeyPrefix+requestID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: no session for request %s", apperrors.ErrSessionNotFound, requestID)
		}
		return nil, fmt.Errorf("error reading session index: %w", err)
	}

	return r.Get(ctx, sessionID)
}

// Delete removes a session and its request index.
func (r *WizardSessionRepository) Delete(ctx context.Context, session *models.WizardSession) error {
	keys := []string{wizardSessionKeyPrefix + session.ID}
	if session.RequestID != "" {
		keys = append(keys, wizardRequestKeyPrefix+session.RequestID)
	}

	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}
