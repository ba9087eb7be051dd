package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/adapters/database/pgsql"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/adapters/geoip"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/adapters/invoicing"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/adapters/mail"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/adapters/rates"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/handlers"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/middleware"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/platform/config"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/platform/currencydata"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/utils"
	"github.com/SwiftEdgeIT/swiftedge_portal/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title SwiftEdge Portal API
// @version 1.0
// @description Marketing site and client billing portal backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		os.Exit(1)
	}

	tables, err := currencydata.Load()
	if err != nil {
		logger.Error("Failed to load currency tables", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := &portsrepo.RepositoryProvider{
		UserRepo:       pgsql.NewPgxUserRepository(dbPool),
		PreferenceRepo: pgsql.NewPgxPreferenceRepository(dbPool),
		OfferingRepo:   pgsql.NewPgxOfferingRepository(dbPool),
		OrderRepo:      pgsql.NewPgxOrderRepository(dbPool),
		QuoteRepo:      pgsql.NewPgxQuoteRepository(dbPool),
	}

	providers := services.ProviderSet{
		Geo:   geoip.NewClient(cfg.GeoIPBaseURL, cfg.PricingHTTPClient),
		Rates: rates.NewClient(cfg.RatesBaseURL, cfg.RatesAPIKey, cfg.PricingHTTPClient),
		Invoicing: invoicing.NewClient(context.Background(), invoicing.Config{
			BaseURL:      cfg.InvoicingBaseURL,
			TokenURL:     cfg.InvoicingTokenURL,
			ClientID:     cfg.InvoicingClientID,
			ClientSecret: cfg.InvoicingClientSecret,
			RefreshToken: cfg.InvoicingRefreshToken,
			OrgID:        cfg.InvoicingOrgID,
		}),
		Mailer: mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, logger),
	}

	serviceContainer := services.NewContainer(cfg, repos, providers, tables, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	if cfg.FrontendBaseURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	limiterInstance, err := middleware.NewIPRateLimiter("60-M")
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiterInstance))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()
	r.Use(middleware.PosthogMiddleware(posthogClient))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
