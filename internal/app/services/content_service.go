package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/logger"
)

// contentFetchLimit caps how many rows a public content read pulls. The
// frontend renders at most this many cards per section.
const contentFetchLimit = 6

// CategoryAll is the filter sentinel meaning "no filtering".
const CategoryAll = "All"

// TechUpdateStore is the tech update persistence the content service needs.
type TechUpdateStore interface {
	ListPublished(ctx context.Context, limit int) ([]models.TechUpdate, error)
	GetByID(ctx context.Context, id int64) (*models.TechUpdate, error)
	Create(ctx context.Context, update *models.TechUpdate) (int64, error)
	Update(ctx context.Context, update *models.TechUpdate) error
	Delete(ctx context.Context, id int64) error
}

// OpportunityStore is the opportunity persistence the content service needs.
type OpportunityStore interface {
	ListActive(ctx context.Context, limit int) ([]models.Opportunity, error)
	GetByID(ctx context.Context, id int64) (*models.Opportunity, error)
	Create(ctx context.Context, opp *models.Opportunity) (int64, error)
	Update(ctx context.Context, opp *models.Opportunity) error
	Delete(ctx context.Context, id int64) error
}

// ServiceStore is the service offering persistence the content service needs.
type ServiceStore interface {
	ListActive(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id int64) (*models.Service, error)
	Create(ctx context.Context, svc *models.Service) (int64, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id int64) error
}

// ContentService serves the public content sections and the admin content
// writes behind them.
type ContentService struct {
	techUpdates   TechUpdateStore
	opportunities OpportunityStore
	services      ServiceStore
	logger        zerolog.Logger
}

// NewContentService creates a new ContentService
func NewContentService(techUpdates TechUpdateStore, opportunities OpportunityStore, services ServiceStore) *ContentService {
	return &ContentService{
		techUpdates:   techUpdates,
		opportunities: opportunities,
		services:      services,
		logger:        logger.WithComponent("content_service"),
	}
}

// GetTechUpdates returns up to contentFetchLimit published updates, filtered
// by category. Filtering happens in memory over the fetched window, matching
// case-insensitively; CategoryAll (or empty) means no filter. Categories in
// the response come from the full fetched set, not the filtered one; with
// nothing published yet the site's fixed category set fills the chips.
func (s *ContentService) GetTechUpdates(ctx context.Context, category string) ([]models.TechUpdate, []string, error) {
	updates, err := s.techUpdates.ListPublished(ctx, contentFetchLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("listing tech updates: %w", err)
	}

	categories := distinctCategories(updates)
	if len(categories) == 0 {
		categories = models.TechUpdateCategories
	}

	if category == "" || strings.EqualFold(category, CategoryAll) {
		return updates, categories, nil
	}

	filtered := []models.TechUpdate{}
	for _, u := range updates {
		if strings.EqualFold(u.Category, category) {
			filtered = append(filtered, u)
		}
	}

	return filtered, categories, nil
}

// GetOpportunities returns up to contentFetchLimit active listings, filtered
// by type with the same in-memory semantics as GetTechUpdates.
func (s *ContentService) GetOpportunities(ctx context.Context, listingType string) ([]models.Opportunity, []string, error) {
	listings, err := s.opportunities.ListActive(ctx, contentFetchLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("listing opportunities: %w", err)
	}

	types := distinctTypes(listings)
	if len(types) == 0 {
		types = models.OpportunityTypes
	}

	if listingType == "" || strings.EqualFold(listingType, CategoryAll) {
		return listings, types, nil
	}

	filtered := []models.Opportunity{}
	for _, o := range listings {
		if strings.EqualFold(o.Type, listingType) {
			filtered = append(filtered, o)
		}
	}

	return filtered, types, nil
}

// GetServices returns active services in display order.
func (s *ContentService) GetServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.services.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	return services, nil
}

// GetTechUpdate returns a single tech update (admin).
func (s *ContentService) GetTechUpdate(ctx context.Context, id int64) (*models.TechUpdate, error) {
	return s.techUpdates.GetByID(ctx, id)
}

// GetOpportunity returns a single opportunity listing (admin).
func (s *ContentService) GetOpportunity(ctx context.Context, id int64) (*models.Opportunity, error) {
	return s.opportunities.GetByID(ctx, id)
}

// GetService returns a single service offering (admin).
func (s *ContentService) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return s.services.GetByID(ctx, id)
}

// CreateTechUpdate creates a tech update (admin).
func (s *ContentService) CreateTechUpdate(ctx context.Context, update *models.TechUpdate) (int64, error) {
	id, err := s.techUpdates.Create(ctx, update)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("id", id).Str("title", update.Title).Msg("Tech update created")
	return id, nil
}

// UpdateTechUpdate updates a tech update (admin).
func (s *ContentService) UpdateTechUpdate(ctx context.Context, update *models.TechUpdate) error {
	return s.techUpdates.Update(ctx, update)
}

// DeleteTechUpdate deletes a tech update (admin).
func (s *ContentService) DeleteTechUpdate(ctx context.Context, id int64) error {
	return s.techUpdates.Delete(ctx, id)
}

// CreateOpportunity creates an opportunity listing (admin).
func (s *ContentService) CreateOpportunity(ctx context.Context, opp *models.Opportunity) (int64, error) {
	id, err := s.opportunities.Create(ctx, opp)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("id", id).Str("title", opp.Title).Msg("Opportunity created")
	return id, nil
}

// UpdateOpportunity updates an opportunity listing (admin).
func (s *ContentService) UpdateOpportunity(ctx context.Context, opp *models.Opportunity) error {
	return s.opportunities.Update(ctx, opp)
}

// DeleteOpportunity deletes an opportunity listing (admin).
func (s *ContentService) DeleteOpportunity(ctx context.Context, id int64) error {
	return s.opportunities.Delete(ctx, id)
}

// CreateService creates a service offering (admin). The icon must belong to
// the closed icon set; unknown icons are rejected here, before the row is
// written, so the frontend never sees an identifier it cannot render.
func (s *ContentService) CreateService(ctx context.Context, svc *models.Service) (int64, error) {
	if !models.IsValidServiceIcon(svc.Icon) {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrUnknownIcon, svc.Icon)
	}

	id, err := s.services.Create(ctx, svc)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("id", id).Str("title", svc.Title).Msg("Service created")
	return id, nil
}

// UpdateService updates a service offering (admin), with the same icon check
// as CreateService.
func (s *ContentService) UpdateService(ctx context.Context, svc *models.Service) error {
	if !models.IsValidServiceIcon(svc.Icon) {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownIcon, svc.Icon)
	}
	return s.services.Update(ctx, svc)
}

// DeleteService deletes a service offering (admin).
func (s *ContentService) DeleteService(ctx context.Context, id int64) error {
	return s.services.Delete(ctx, id)
}

// ParseExpiry parses an optional RFC 3339 expiry timestamp from an admin
// payload.
func ParseExpiry(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, apperrors.NewValidationError(map[string]string{
			"expiresAt": "must be an RFC 3339 timestamp",
		})
	}
	return &t, nil
}

func distinctCategories(updates []models.TechUpdate) []string {
	seen := map[string]struct{}{}
	categories := []string{}
	for _, u := range updates {
		if _, ok := seen[u.Category]; ok {
			continue
		}
		seen[u.Category] = struct{}{}
		categories = append(categories, u.Category)
	}
	return categories
}

func distinctTypes(listings []models.Opportunity) []string {
	seen := map[string]struct{}{}
	types := []string{}
	for _, o := range listings {
		if _, ok := seen[o.Type]; ok {
			continue
		}
		seen[o.Type] = struct{}{}
		types = append(types, o.Type)
	}
	return types
}
