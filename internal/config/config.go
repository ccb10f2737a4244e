package config

import (
	"os"

	"github.com/RogerGower/hsw-mvp/internal/utils"
)

type Config struct {
	AppName      string
	AppPort      string
	AppUrl       string
	Env          string
	StoreBackend string
	DBUrl        string
	EvaluatorURL string
}

const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// AppName can be overridden at build time with -ldflags.
var AppName = "prestart-service"

// LoadConfig reads the runtime environment, same ordering / logging style
// as the other services.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}
	appURL := os.Getenv("APP_URL_FROM_ANYWHERE")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL_FROM_ANYWHERE env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}

	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = StoreBackendMemory
	}
	if backend != StoreBackendMemory && backend != StoreBackendPostgres {
		utils.Logger.Fatalf("STORE_BACKEND must be %q or %q, got %q",
			StoreBackendMemory, StoreBackendPostgres, backend)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if backend == StoreBackendPostgres && dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is required when STORE_BACKEND=postgres")
	}

	// Optional; when absent the evaluate endpoint degrades gracefully.
	evaluatorURL := os.Getenv("EVALUATOR_URL")
	if evaluatorURL == "" {
		utils.Logger.Info("EVALUATOR_URL not set; alert evaluation disabled")
	}

	utils.Logger.Infof("Loaded config for %s (%s), store backend: %s", AppName, env, backend)

	return &Config{
		AppName:      AppName,
		AppPort:      appPort,
		AppUrl:       appURL,
		Env:          env,
		StoreBackend: backend,
		DBUrl:        dbURL,
		EvaluatorURL: evaluatorURL,
	}
}

func (c *Config) Close() {
}
