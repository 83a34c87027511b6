package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress  = "localhost:8080"
	defaultStorageURI  = "sqlite3://~/.digitalwill/state.db"
	defaultAuthDelay   = time.Second
	defaultUploadDelay = 1500 * time.Millisecond
	defaultIDScheme    = "short"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env       string
	Server    server
	Logger    logger
	Storage   storage
	Session   session
	Resources resources
}

type server struct {
	RunAddress string
}

type logger struct {
	// LogLevel overrides the level implied by Env when set.
	LogLevel string
}

type storage struct {
	URI string
}

type session struct {
	AuthDelay time.Duration
}

type resources struct {
	UploadDelay time.Duration
	IDScheme    string
}

// SetDefaults registers every key on v so AutomaticEnv and config files can
// override them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvLocal)
	v.SetDefault("RUN_ADDRESS", defaultRunAddress)
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("STORAGE_URI", defaultStorageURI)
	v.SetDefault("AUTH_DELAY", defaultAuthDelay)
	v.SetDefault("UPLOAD_DELAY", defaultUploadDelay)
	v.SetDefault("ID_SCHEME", defaultIDScheme)
}

// Load reads an optional .env file, then the environment, then whatever
// config file v was pointed at.
func Load(v *viper.Viper) (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("load %s: %v", envPath, err)
		}
	}

	v.AutomaticEnv()
	SetDefaults(v)

	cfg := &Config{
		Env:       v.GetString("APP_ENV"),
		Server:    server{RunAddress: v.GetString("RUN_ADDRESS")},
		Logger:    logger{LogLevel: v.GetString("LOG_LEVEL")},
		Storage:   storage{URI: v.GetString("STORAGE_URI")},
		Session:   session{AuthDelay: v.GetDuration("AUTH_DELAY")},
		Resources: resources{UploadDelay: v.GetDuration("UPLOAD_DELAY"), IDScheme: v.GetString("ID_SCHEME")},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !slices.Contains([]string{EnvLocal, EnvDev, EnvProd}, c.Env) {
		return fmt.Errorf("%w: APP_ENV must be local, dev or prod, got %q", ErrInvalidConfig, c.Env)
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("%w: RUN_ADDRESS is empty", ErrInvalidConfig)
	}
	if c.Storage.URI == "" {
		return fmt.Errorf("%w: STORAGE_URI is empty", ErrInvalidConfig)
	}
	if c.Session.AuthDelay < 0 || c.Resources.UploadDelay < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}
