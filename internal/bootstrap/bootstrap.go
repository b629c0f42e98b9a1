package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/adlavijwal/innovbridge/internal/app/controllers"
	appMigrations "github.com/adlavijwal/innovbridge/internal/app/migrations"
	appRepos "github.com/adlavijwal/innovbridge/internal/app/repositories"
	appRoutes "github.com/adlavijwal/innovbridge/internal/app/routes"
	appServices "github.com/adlavijwal/innovbridge/internal/app/services"
	"github.com/adlavijwal/innovbridge/internal/config"
	"github.com/adlavijwal/innovbridge/internal/db"
	appMiddleware "github.com/adlavijwal/innovbridge/internal/middleware"
	pkgAuth "github.com/adlavijwal/innovbridge/internal/pkg/auth"
	"github.com/adlavijwal/innovbridge/internal/pkg/email"
	"github.com/adlavijwal/innovbridge/internal/pkg/logger"
	"github.com/adlavijwal/innovbridge/internal/pkg/payments"
	"github.com/adlavijwal/innovbridge/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services               *appServices.Services
	ContentController      *appControllers.ContentController
	SubscriptionController *appControllers.SubscriptionController
	ContactController      *appControllers.ContactController
	StudentHubController   *appControllers.StudentHubController
	AdminController        *appControllers.AdminController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Mailer                 email.Sender
	Payments               payments.CheckoutProvider
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default content.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// Seed failure is not fatal; the admin can create content by hand
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupRedis connects the wizard session store.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Connecting to redis...")
	client, err := db.NewRedisClient(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to redis")
		return nil, err
	}
	lgr.Info().Msg("Redis connection successfully established.")
	return client, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, rdb *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool, rdb, cfg.SessionTTL())

	deps.Mailer = email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.Payments = payments.NewStripeProvider(cfg.Stripe.SecretKey, cfg.Server.SiteURL, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = &appServices.Services{
		ContentService: appServices.NewContentService(
			deps.Repos.TechUpdateRepository,
			deps.Repos.OpportunityRepository,
			deps.Repos.ServiceRepository,
		),
		SubscriptionService: appServices.NewSubscriptionService(
			deps.Repos.SubscriberRepository,
			deps.Mailer,
		),
		ContactService: appServices.NewContactService(
			deps.Repos.ContactRepository,
			deps.Mailer,
			cfg.SMTP.ContactInbox,
		),
		StudentHubService: appServices.NewStudentHubService(
			deps.Repos.RequestRepository,
			deps.Repos.WizardSessionRepository,
			deps.Payments,
			deps.Mailer,
			cfg.Stripe.AmountCents,
			cfg.Stripe.Currency,
		),
		AdminService: appServices.NewAdminService(
			deps.JWTService,
			cfg.Admin.Email,
			cfg.Admin.PasswordHash,
			deps.Mailer,
		),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ContentController = appControllers.NewContentController(deps.Services.ContentService)
	deps.SubscriptionController = appControllers.NewSubscriptionController(deps.Services.SubscriptionService)
	deps.ContactController = appControllers.NewContactController(deps.Services.ContactService)
	deps.StudentHubController = appControllers.NewStudentHubController(deps.Services.StudentHubService)
	deps.AdminController = appControllers.NewAdminController(deps.Services.AdminService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterCustomValidators()

	router := gin.Default()
	router.Use(appMiddleware.CORS(cfg.Server.SiteURL))

	appRoutes.SetupRouter(router,
		deps.ContentController,
		deps.SubscriptionController,
		deps.ContactController,
		deps.StudentHubController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
