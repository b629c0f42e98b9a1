package seed

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/app/repositories"
	"github.com/adlavijwal/innovbridge/internal/db"
)

// CreateDefaultData seeds the default service offerings on an empty
// database. The seed runs only when the services table is empty, so admin
// edits are never overwritten. The inserts run in a single transaction so a
// partial seed never survives a failure.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	serviceRepo := repositories.NewServiceRepository(database.Pool)

	count, err := serviceRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int("count", count).Msg("Services already present, skipping seed")
		return nil
	}

	defaults := []models.Service{
		{
			Title:       "Web Development",
			Description: "Modern, responsive websites and web applications built with the latest technologies.",
			Icon:        "Globe",
			Features:    []string{"React & Next.js", "Responsive design", "SEO optimization"},
			Active:      true,
			OrderIndex:  1,
		},
		{
			Title:       "AI Integration",
			Description: "Bring AI-powered features into your product, from chatbots to intelligent automation.",
			Icon:        "Cpu",
			Features:    []string{"LLM integration", "Workflow automation", "Custom models"},
			Active:      true,
			OrderIndex:  2,
		},
		{
			Title:       "Career Acceleration",
			Description: "Resumes, portfolios and interview preparation for students entering tech.",
			Icon:        "GraduationCap",
			Features:    []string{"Resume crafting", "Portfolio reviews", "Mock interviews"},
			Active:      true,
			OrderIndex:  3,
		},
		{
			Title:       "Startup Launchpad",
			Description: "From idea to MVP: product strategy, rapid prototyping and go-to-market support.",
			Icon:        "Rocket",
			Features:    []string{"MVP development", "Product strategy", "Launch support"},
			Active:      true,
			OrderIndex:  4,
		},
		{
			Title:       "Cloud Solutions",
			Description: "Scalable cloud infrastructure, deployment pipelines and cost optimization.",
			Icon:        "Cloud",
			Features:    []string{"Infrastructure setup", "CI/CD pipelines", "Cost optimization"},
			Active:      true,
			OrderIndex:  5,
		},
		{
			Title:       "Community & Mentorship",
			Description: "Join a network of innovators with mentorship from experienced engineers.",
			Icon:        "Users",
			Features:    []string{"1:1 mentorship", "Peer community", "Live workshops"},
			Active:      true,
			OrderIndex:  6,
		},
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for i := range defaults {
			svc := &defaults[i]
			query, args, err := sq.Insert("services").
				Columns("title", "description", "icon", "features", "active", "order_index").
				Values(svc.Title, svc.Description, svc.Icon, svc.Features, svc.Active, svc.OrderIndex).
				PlaceholderFormat(sq.Dollar).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to seed services")
		return err
	}

	lgr.Info().Int("count", len(defaults)).Msg("Default services seeded")
	return nil
}
