package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int      `default:"8080"`
	BasePath       string   `default:"/api"`
	PageSize       int      `default:"6"`
	AllowedOrigins []string `default:"[*]"`
}

type Integrations struct {
	Recipe []string `default:"[schema_org]"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	Auth         Auth
}

type Auth struct {
	SecretKey string
	TokenTTL  time.Duration `default:"720h"`
}

const envPrefix = "FOODGRAM" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if config.Server.PageSize < 1 {
		return nil, fmt.Errorf("%w: server page size must be positive, got %d", ErrConfiguration, config.Server.PageSize)
	}

	if len(config.Auth.SecretKey) == 0 {
		logger.Warn("No auth secret key configured, tokens cannot be issued")
	}

	return &config, nil
}

// DSN builds the postgres connection string for the configured database.
func (d DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		d.Host, d.User, d.Password, d.Database, d.Port)
}
