package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	EnvStage        = "STAGE"
	EnvLayout       = "SEABATTLE_LAYOUT"
	EnvLogLevel     = "SEABATTLE_LOG_LEVEL"
	EnvCheckWorkers = "SEABATTLE_CHECK_WORKERS"

	defaultLogLevel     = "info"
	defaultCheckWorkers = 4
)

type Config struct {
	Stage        string
	LayoutPath   string
	LogLevel     string
	CheckWorkers int
}

// Load reads the configuration from the environment. Outside of prod,
// values from envFile are loaded first; a missing file is not an error.
func Load(envFile string) (Config, error) {
	if os.Getenv(EnvStage) != StageProd && envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Stage:        os.Getenv(EnvStage),
		LayoutPath:   os.Getenv(EnvLayout),
		LogLevel:     os.Getenv(EnvLogLevel),
		CheckWorkers: defaultCheckWorkers,
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either %s or %s, got: %s", StageDev, StageProd, cfg.Stage)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if workersEnv := os.Getenv(EnvCheckWorkers); workersEnv != "" {
		workers, err := strconv.Atoi(workersEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvCheckWorkers, err)
		}
		if workers < 1 {
			return Config{}, fmt.Errorf("%s must be at least 1, got: %d", EnvCheckWorkers, workers)
		}
		cfg.CheckWorkers = workers
	}

	return cfg, nil
}

// Same as Load but panics on error, for use in main.
func MustLoad(envFile string) Config {
	cfg, err := Load(envFile)
	if err != nil {
		panic(err)
	}
	return cfg
}
