package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/secplus/internal/store"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SECPLUS"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env        string  `mapstructure:"env"`         // "production" logs JSON, anything else logs console text
	DBPath     string  `mapstructure:"db_path"`     // SQLite file holding progress and preferences
	ContentDir string  `mapstructure:"content_dir"` // optional directory overriding the embedded content
	Log        Log     `mapstructure:"log"`
	Storage    Storage `mapstructure:"storage"`
}

// Log configures the zap logger.
type Log struct {
	File  string `mapstructure:"file"`  // log destination; empty means beside the database, "off" disables logging
	Level string `mapstructure:"level"` // debug, info, warn or error
}

// Storage configures the key-value backend.
type Storage struct {
	MaxValueBytes int `mapstructure:"max_value_bytes"` // per-value quota
}

// IsProduction reports whether the production logging profile applies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LogOff disables logging when used as log.file.
const LogOff = "off"

// LogPath returns the log destination for a database at dbPath: the
// configured file, secplus.log beside the database when none is set, or
// "" when logging is off.
func (c *Config) LogPath(dbPath string) string {
	switch c.Log.File {
	case LogOff:
		return ""
	case "":
		return filepath.Join(filepath.Dir(dbPath), "secplus.log")
	}
	return c.Log.File
}

// Options points Load at explicit files. Zero values use the search paths.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load reads configuration from an optional .env file, an optional
// config.yaml and SECPLUS_* environment variables, in increasing priority.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve db path: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "secplus"))
	}
	v.AddConfigPath(".")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	}

	v.SetDefault("env", "production")
	v.SetDefault("db_path", dbPath)
	v.SetDefault("content_dir", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.max_value_bytes", store.DefaultMaxValueBytes)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = dbPath
	}
	return &cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		path = ".env"
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
