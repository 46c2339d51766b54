package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/shiki/internal/config"
	"github.com/five82/shiki/internal/favorites"
	"github.com/five82/shiki/internal/i18n"
	"github.com/five82/shiki/internal/jikan"
	"github.com/five82/shiki/internal/logging"
	"github.com/five82/shiki/internal/prefs"
	"github.com/five82/shiki/internal/state"
	"github.com/five82/shiki/internal/ui"
)

// Options configure the shiki application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shiki/prefs.toml
}

// Env is the wired set of dependencies shared by every command.
type Env struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *slog.Logger
	Client    *jikan.Client
	Loader    *state.Loader
	Favorites *favorites.Store

	logCloser io.Closer
}

// Open loads configuration and preferences, opens the log file and the
// favorites database, and builds the client, catalog and loader.
func Open(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return nil, fmt.Errorf("load prefs: %w", err)
	}

	logger, logCloser, err := logging.Setup(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}

	client, err := jikan.NewClient(jikan.Options{
		BaseURL:   cfg.API.BaseURL,
		Year:      cfg.API.Year,
		Season:    cfg.API.Season,
		PageDelay: cfg.API.PageDelay,
		Timeout:   cfg.API.Timeout,
		Logger:    logger,
	})
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("init jikan client: %w", err)
	}

	store, err := favorites.Open(cfg.FavoritesPath(), logger)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("open favorites: %w", err)
	}
	store.Load()

	catalog := state.NewCatalog(describeFor(i18n.Parse(userPrefs.Language)))
	logger.Info("shiki starting",
		"season", cfg.API.Season,
		"year", cfg.API.Year,
		"config", cfg.File,
		"favorites", store.Len(),
	)

	return &Env{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
		Client:    client,
		Loader:    state.NewLoader(catalog, client, logger),
		Favorites: store,
		logCloser: logCloser,
	}, nil
}

// Close releases the favorites database and the log file.
func (e *Env) Close() error {
	return errors.Join(e.Favorites.Close(), e.logCloser.Close())
}

// WithEnv opens an Env, runs fn and closes the Env. A close failure is
// joined into the returned error.
func WithEnv(opts Options, fn func(*Env) error) (err error) {
	env, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { err = closeInto(err, env) }()
	return fn(env)
}

func closeInto(err error, c io.Closer) error {
	if cerr := c.Close(); cerr != nil {
		return errors.Join(err, fmt.Errorf("close: %w", cerr))
	}
	return err
}

// describeFor returns the catalog's error message function for lang.
func describeFor(lang i18n.Language) func(error) string {
	text := i18n.For(lang)
	return func(err error) string {
		switch state.Classify(err) {
		case state.ErrorNone:
			return ""
		case state.ErrorRateLimited:
			return text.RateLimited
		default:
			return text.Error
		}
	}
}

// Run boots the shiki TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := env.Close(); cerr != nil {
			env.Logger.Warn("shutdown", "error", cerr)
		}
	}()

	return ui.Run(ui.Options{
		Context:         ctx,
		Loader:          env.Loader,
		Favorites:       env.Favorites,
		Logger:          env.Logger,
		Prefs:           env.Prefs,
		PrefsPath:       env.PrefsPath,
		SeasonLabel:     env.Config.SeasonLabel(),
		TranslateTarget: env.Config.Translate.Target,
	})
}
