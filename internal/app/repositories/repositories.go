package repositories

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Repositories is the container for all data access objects
type Repositories struct {
	TechUpdateRepository    *TechUpdateRepository
	OpportunityRepository   *OpportunityRepository
	ServiceRepository       *ServiceRepository
	SubscriberRepository    *SubscriberRepository
	ContactRepository       *ContactRepository
	RequestRepository       *RequestRepository
	WizardSessionRepository *WizardSessionRepository
}

// NewRepositories creates all repositories sharing one connection pool and
// one redis client.
func NewRepositories(db *pgxpool.Pool, rdb *redis.Client, sessionTTL time.Duration) *Repositories {
	return &Repositories{
		TechUpdateRepository:    NewTechUpdateRepository(db),
		OpportunityRepository:   NewOpportunityRepository(db),
		ServiceRepository:       NewServiceRepository(db),
		SubscriberRepository:    NewSubscriberRepository(db),
		ContactRepository:       NewContactRepository(db),
		RequestRepository:       NewRequestRepository(db),
		WizardSessionRepository: NewWizardSessionRepository(rdb, sessionTTL),
	}
}
