// Package config reads service configuration from the environment.
package config

import (
	"github.com/cbsinteractive/timecode-api/db"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds the entire configuration of the timecode service.
type Config struct {
	ListenAddr  string `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`

	Redis *db.Options
}

// LoadConfig reads configuration from environment variables, falling
// back to the struct defaults.
func LoadConfig() *Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)
	return &cfg
}

// Logger builds the process logger at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, nil
}
