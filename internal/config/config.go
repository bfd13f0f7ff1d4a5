package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Registry  RegistryConfig  `yaml:"registry" mapstructure:"registry"`
	Overrides OverridesConfig `yaml:"overrides" mapstructure:"overrides"`
	Fees      FeesConfig      `yaml:"fees" mapstructure:"fees"`
	Process   ProcessConfig   `yaml:"process" mapstructure:"process"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the deal store backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// RegistryConfig configures the entity registry.
type RegistryConfig struct {
	// FixturePath points at an optional YAML file of additional entities
	// registered on top of the built-in seed table.
	FixturePath string `yaml:"fixture_path" mapstructure:"fixture_path"`
}

// OverridesConfig configures the per-source field override table.
type OverridesConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// FeesConfig configures fee extraction.
type FeesConfig struct {
	// Policy is "historical" (overlapping pattern matches double count)
	// or "dedupe" (identical page/amount pairs collapse).
	Policy string `yaml:"policy" mapstructure:"policy"`
}

// ProcessConfig configures the batch processing loop.
type ProcessConfig struct {
	MaxConcurrentDeals int  `yaml:"max_concurrent_deals" mapstructure:"max_concurrent_deals"`
	Reprocess          bool `yaml:"reprocess" mapstructure:"reprocess"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MUNI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "muni.db")
	v.SetDefault("fees.policy", "historical")
	v.SetDefault("process.max_concurrent_deals", 5)
	v.SetDefault("process.reprocess", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
