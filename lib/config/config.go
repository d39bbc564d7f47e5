package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrTokenMissing is returned when no Slack token is configured. The token
// is required up front; commands fail before touching the network or cache.
var ErrTokenMissing = errors.New("slack token not configured, set SLACK_TOKEN or the token key in ~/.config/slackshare.yaml")

// Config carries everything the Slack client needs. It is loaded once per
// command run and passed around explicitly.
type Config struct {
	Token     string `mapstructure:"token"`
	CachePath string `mapstructure:"cache_path"`
}

// Load reads configuration from ~/.config/slackshare.yaml when present and
// from the environment. Environment values win over the file, and the file
// is optional.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(home, ".config", "slackshare.yaml"))
	v.SetDefault("cache_path", filepath.Join(home, ".cache", "slackshare", "users.json"))
	v.BindEnv("token", "SLACK_TOKEN")
	v.BindEnv("cache_path", "SLACKSHARE_CACHE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Validate reports whether the config is usable for talking to Slack.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrTokenMissing
	}
	return nil
}

func SetLogLevel() {
	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
