package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App           AppConfig            `mapstructure:"app"`
	Prune         PruneConfig          `mapstructure:"prune"`
	Store         StoreConfig          `mapstructure:"store"`
	Notifications []NotificationConfig `mapstructure:"notifications"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type PruneConfig struct {
	// Keep is the default keep policy, e.g. "7d,5w,12mon". A KEEP_SPEC
	// command line argument takes precedence.
	Keep   string `mapstructure:"keep"`
	DryRun bool   `mapstructure:"dry_run"`

	// Schedule is a cron expression (with seconds). When set, the pruner
	// runs as a daemon instead of once.
	Schedule string `mapstructure:"schedule"`
}

type StoreConfig struct {
	Type string `mapstructure:"type"`

	// Tarsnap
	Binary  string `mapstructure:"binary"`
	Keyfile string `mapstructure:"keyfile"`

	// AWS S3
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`

	// Google Drive
	CredentialsFile string `mapstructure:"credentials_file"`
	FolderID        string `mapstructure:"folder_id"`

	// Local directory
	Path string `mapstructure:"path"`
}

type NotificationConfig struct {
	Type    string `mapstructure:"type"`
	Enabled bool   `mapstructure:"enabled"`

	// Telegram
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

// Default returns the configuration used when no config file is given:
// a one-shot tarsnap prune with console logging.
func Default() *Config {
	return &Config{
		App:   AppConfig{Name: "arkeep", LogLevel: "info"},
		Store: StoreConfig{Type: "tarsnap", Binary: "tarsnap"},
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("app.name", "arkeep")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("store.type", "tarsnap")
	v.SetDefault("store.binary", "tarsnap")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Type {
	case "tarsnap":
		// Binary defaults to "tarsnap"; keyfile is optional.
	case "s3":
		if c.Store.Bucket == "" {
			return fmt.Errorf("store: bucket is required for s3")
		}
		if c.Store.Region == "" {
			return fmt.Errorf("store: region is required for s3")
		}
	case "gdrive":
		if c.Store.CredentialsFile == "" {
			return fmt.Errorf("store: credentials_file is required for gdrive")
		}
		if c.Store.FolderID == "" {
			return fmt.Errorf("store: folder_id is required for gdrive")
		}
	case "local":
		if c.Store.Path == "" {
			return fmt.Errorf("store: path is required for local")
		}
	default:
		return fmt.Errorf("store: unknown type %q", c.Store.Type)
	}

	for i, n := range c.Notifications {
		if n.Type != "telegram" {
			return fmt.Errorf("notifications[%d]: unknown type %q", i, n.Type)
		}
		if n.Enabled && (n.BotToken == "" || n.ChatID == "") {
			return fmt.Errorf("notifications[%d]: bot_token and chat_id are required", i)
		}
	}

	return nil
}

func (c *Config) GetEnabledNotifications() []NotificationConfig {
	var enabled []NotificationConfig
	for _, n := range c.Notifications {
		if n.Enabled {
			enabled = append(enabled, n)
		}
	}
	return enabled
}
