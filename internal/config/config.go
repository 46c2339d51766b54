package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/five82/shiki/internal/jikan"
)

// Config holds everything shiki reads from config.toml, .env and SHIKI_* variables.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Translate TranslateConfig `mapstructure:"translate"`

	// File is the config file that was read, empty when defaults were used.
	File string `mapstructure:"-"`
}

// APIConfig selects the season listing and request pacing.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Year      int           `mapstructure:"year"`
	Season    string        `mapstructure:"season"`
	PageDelay time.Duration `mapstructure:"page_delay"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// StorageConfig locates persisted state.
type StorageConfig struct {
	FavoritesDB string `mapstructure:"favorites_db"` // "memory" disables persistence
}

// LoggingConfig mirrors the log file settings.
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// TranslateConfig sets the target locale for synopsis translation links.
type TranslateConfig struct {
	Target string `mapstructure:"target"`
}

const (
	defaultConfigPath  = "~/.config/shiki/config.toml"
	defaultDataDir     = "~/.local/share/shiki"
	defaultYear        = 2026
	defaultSeason      = "winter"
	defaultTimeout     = 10 * time.Second
	defaultLogLevel    = "info"
	defaultTarget      = "zh-TW"
	memoryFavoritesDSN = "memory"
	envPrefix          = "SHIKI"
)

// Load reads the config at path (or the default location), layering
// defaults, the TOML file, a .env file and SHIKI_* environment variables.
// A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(resolved), ".env"), ".env"); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var file string
	if _, statErr := os.Stat(resolved); statErr == nil {
		v.SetConfigFile(resolved)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		file = resolved
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", statErr)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = file
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	cfg := Config{
		API: APIConfig{
			BaseURL:   jikan.DefaultBaseURL,
			Year:      defaultYear,
			Season:    defaultSeason,
			PageDelay: jikan.DefaultPageDelay,
			Timeout:   defaultTimeout,
		},
		Storage:   StorageConfig{FavoritesDB: defaultDataDir + "/favorites.db"},
		Logging:   LoggingConfig{File: defaultDataDir + "/shiki.log", Level: defaultLogLevel},
		Translate: TranslateConfig{Target: defaultTarget},
	}
	cfg.normalize()
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", jikan.DefaultBaseURL)
	v.SetDefault("api.year", defaultYear)
	v.SetDefault("api.season", defaultSeason)
	v.SetDefault("api.page_delay", jikan.DefaultPageDelay)
	v.SetDefault("api.timeout", defaultTimeout)
	v.SetDefault("storage.favorites_db", defaultDataDir+"/favorites.db")
	v.SetDefault("logging.file", defaultDataDir+"/shiki.log")
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("translate.target", defaultTarget)
}

// normalize trims values, falls back to defaults for blanks and expands paths.
func (c *Config) normalize() {
	c.API.BaseURL = orDefault(c.API.BaseURL, jikan.DefaultBaseURL)
	c.API.Season = strings.ToLower(orDefault(c.API.Season, defaultSeason))
	if c.API.PageDelay < 0 {
		c.API.PageDelay = 0
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = defaultTimeout
	}

	db := orDefault(c.Storage.FavoritesDB, defaultDataDir+"/favorites.db")
	if db != memoryFavoritesDSN {
		db = mustExpand(db)
	}
	c.Storage.FavoritesDB = db

	c.Logging.File = mustExpand(orDefault(c.Logging.File, defaultDataDir+"/shiki.log"))
	c.Logging.Level = orDefault(c.Logging.Level, defaultLogLevel)
	c.Translate.Target = orDefault(c.Translate.Target, defaultTarget)
}

// Validate rejects settings the seasonal endpoint cannot serve.
func (c Config) Validate() error {
	if !jikan.ValidSeason(c.API.Season) {
		return fmt.Errorf("api.season %q must be one of %s", c.API.Season, strings.Join(jikan.Seasons, ", "))
	}
	if c.API.Year < 1917 || c.API.Year > 2100 {
		return fmt.Errorf("api.year %d out of range", c.API.Year)
	}
	return nil
}

// FavoritesPath returns the favorites database path, empty for memory-only.
func (c Config) FavoritesPath() string {
	if c.Storage.FavoritesDB == memoryFavoritesDSN {
		return ""
	}
	return c.Storage.FavoritesDB
}

// SeasonLabel renders e.g. "Winter 2026".
func (c Config) SeasonLabel() string {
	season := c.API.Season
	if season != "" {
		season = strings.ToUpper(season[:1]) + season[1:]
	}
	return fmt.Sprintf("%s %d", season, c.API.Year)
}

// loadDotEnv loads each existing file. Variables already set win.
func loadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
