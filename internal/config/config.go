package config

import (
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every environment variable name, e.g. SUBSHIFT_LOG_LEVEL.
const Prefix = "subshift"

// Config holds the settings read from the environment. Command-line flags
// take precedence over these when given.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	Encoding  string `envconfig:"ENCODING" default:"auto"`
	Lenient   bool   `envconfig:"LENIENT" default:"false"`
}

// Load reads Config from SUBSHIFT_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}

// Logger builds a logger writing to stderr at the configured level and format.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	return logger, nil
}
