package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog    CatalogConfig
	Database   DatabaseConfig
	Navigation NavigationConfig
	Server     ServerConfig
	Log        LogConfig
}

// CatalogConfig selects where the browser loads the catalog from.
type CatalogConfig struct {
	Source          string // "sqlite" or "http"
	BaseURL         string `mapstructure:"base_url"`
	DepartmentsPath string `mapstructure:"departments_path"`
	SemestersPath   string `mapstructure:"semesters_path"`
	SubjectsPath    string `mapstructure:"subjects_path"`
	Timeout         time.Duration
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// NavigationConfig controls what a subject selection produces.
type NavigationConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Route       string
	IncludeName bool `mapstructure:"include_name"`
	OpenBrowser bool `mapstructure:"open_browser"`
}

// ServerConfig holds catalog API settings.
type ServerConfig struct {
	Addr string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	File  string
}

const (
	SourceSQLite = "sqlite"
	SourceHTTP   = "http"
)

func configPath() string {
	if p := os.Getenv("COURSEDECK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "coursedeck", "config.toml")
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("catalog.source", SourceSQLite)
	v.SetDefault("catalog.base_url", "http://localhost:8080/api")
	v.SetDefault("catalog.departments_path", "/departments")
	v.SetDefault("catalog.semesters_path", "/semesters")
	v.SetDefault("catalog.subjects_path", "/subjects")
	v.SetDefault("catalog.timeout", "10s")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "coursedeck", "coursedeck.db"))
	v.SetDefault("navigation.base_url", "http://localhost:3000")
	v.SetDefault("navigation.route", "/subjects/{id}")
	v.SetDefault("navigation.include_name", false)
	v.SetDefault("navigation.open_browser", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "coursedeck", "coursedeck.log"))
}

// Load reads configuration from file and env. Env var overrides use prefix COURSEDECK_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(configPath())

	v.SetEnvPrefix("COURSEDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the browser cannot run with.
func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourceSQLite:
		if strings.TrimSpace(c.Database.Path) == "" {
			return fmt.Errorf("config: database.path is required for the sqlite source")
		}
	case SourceHTTP:
		if strings.TrimSpace(c.Catalog.BaseURL) == "" {
			return fmt.Errorf("config: catalog.base_url is required for the http source")
		}
	default:
		return fmt.Errorf("config: unknown catalog.source %q", c.Catalog.Source)
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("config: catalog.timeout must not be negative")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("catalog.base_url", cfg.Catalog.BaseURL)
	v.Set("catalog.departments_path", cfg.Catalog.DepartmentsPath)
	v.Set("catalog.semesters_path", cfg.Catalog.SemestersPath)
	v.Set("catalog.subjects_path", cfg.Catalog.SubjectsPath)
	v.Set("catalog.timeout", cfg.Catalog.Timeout.String())
	v.Set("database.path", cfg.Database.Path)
	v.Set("navigation.base_url", cfg.Navigation.BaseURL)
	v.Set("navigation.route", cfg.Navigation.Route)
	v.Set("navigation.include_name", cfg.Navigation.IncludeName)
	v.Set("navigation.open_browser", cfg.Navigation.OpenBrowser)
	v.Set("server.addr", cfg.Server.Addr)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
