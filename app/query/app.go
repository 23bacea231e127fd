package query

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/finpulse/insights/app/query/types"
	"github.com/finpulse/insights/pkg/analytics"
	"github.com/finpulse/insights/pkg/db"
	"github.com/finpulse/insights/pkg/logging"
)

// Initialize initializes the application.
func Initialize(ctx context.Context) *types.App {
	logger, err := logging.New()
	if err != nil {
		// nothing else to do here, we'll just log to stderr'
		panic(err)
	}

	insightsDb, dbErr := db.New(ctx, logger)
	if dbErr != nil {
		logger.Fatal("Unable to connect to the insights database", zap.Error(dbErr))
	}

	// Ensure the database and fact tables exist (idempotent bootstrap).
	if err := insightsDb.InitializeDB(ctx); err != nil {
		logger.Fatal("Unable to initialize fact tables", zap.Error(err))
	}

	engine := analytics.New(insightsDb, logger, analytics.ConfigFromEnv())

	// Periodic store health ping; purely operational, never touches results.
	c := cron.New()
	_, cronErr := c.AddFunc("@every 5m", func() {
		if err := insightsDb.Ping(ctx); err != nil {
			logger.Warn("store health ping failed", zap.Error(err))
			return
		}
		logger.Debug("store health ping ok")
	})
	if cronErr != nil {
		logger.Fatal("Unable to schedule health ping", zap.Error(cronErr))
	}

	app := &types.App{
		DB:     insightsDb,
		Engine: engine,
		Logger: logger,
		Cron:   c,
	}

	return app
}
