package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/RogerGower/hsw-mvp/internal/config"
	"github.com/RogerGower/hsw-mvp/internal/services"
	"github.com/RogerGower/hsw-mvp/internal/store"
	"github.com/RogerGower/hsw-mvp/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App struct holds references to config & services.
type App struct {
	Config          *config.Config
	Store           store.SubmissionStore
	PrestartService services.PrestartService
	Evaluator       services.EvaluatorClient

	dbPool *pgxpool.Pool
}

// NewApp sets up the core application context.
func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing prestart-service App")

	a := &App{Config: cfg}

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		pool, err := connectWithRetry(cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(context.Background(), pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure submissions table: %w", err)
		}
		a.dbPool = pool
		a.Store = store.NewPostgresStore(pool)
	default:
		a.Store = store.NewMemoryStore()
	}

	a.PrestartService = services.NewPrestartService(a.Store)
	a.Evaluator = services.NewEvaluatorClient(cfg.EvaluatorURL)

	return a, nil
}

func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
		utils.Logger.Info("prestart-service DB connection closed.")
	}
	utils.Logger.Info("prestart-service app shutting down.")
}

func connectWithRetry(databaseURL string) (*pgxpool.Pool, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = pgxpool.Connect(ctx, databaseURL)
		cancel()
		if err == nil {
			utils.Logger.Infof("prestart-service connected to DB on attempt %d", i)
			return dbPool, nil
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			break
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
}
