package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/shiki/internal/app"
	"github.com/five82/shiki/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	prefsPath  string
}

func (g *globalFlags) options() app.Options {
	return app.Options{ConfigPath: g.configPath, PrefsPath: g.prefsPath}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "shiki",
		Short: "Browse the seasonal anime catalog",
		Long: `shiki browses one season of the MyAnimeList catalog through the Jikan API.

Run without arguments in a terminal to open the interactive browser. When
stdout is not a terminal the first page is printed as a table instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isTerminal(os.Stdout) {
				return app.Run(cmd.Context(), flags.options())
			}
			return runList(cmd, flags, app.ListOptions{Pages: 1})
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/shiki/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/shiki/prefs.toml)")

	root.AddCommand(
		newListCmd(flags),
		newFavoritesCmd(flags),
		newLogsCmd(flags),
	)
	return root
}

func newListCmd(flags *globalFlags) *cobra.Command {
	opts := app.ListOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the season as a table",
		Example: `  shiki list --pages 3 --sort score
  shiki list --source Manga --genre Action
  shiki list --search frieren --favorites`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Source, "source", "", "only titles adapted from this source (e.g. Manga, Original)")
	cmd.Flags().StringVar(&opts.Genre, "genre", "", "only titles with this genre ID or name")
	cmd.Flags().StringVar(&opts.Search, "search", "", "case-insensitive substring of the English or primary title")
	cmd.Flags().BoolVar(&opts.Favorites, "favorites", false, "only favorite titles")
	cmd.Flags().StringVar(&opts.Sort, "sort", "default", "sort order: default, score, members")
	cmd.Flags().IntVar(&opts.Pages, "pages", 1, "number of pages to load")
	return cmd
}

func runList(cmd *cobra.Command, flags *globalFlags, opts app.ListOptions) error {
	return app.WithEnv(flags.options(), func(env *app.Env) error {
		return app.List(cmd.Context(), env, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	})
}

func newFavoritesCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite title IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.WithEnv(flags.options(), func(env *app.Env) error {
				return app.PrintFavorites(env, cmd.OutOrStdout())
			})
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle ID",
		Short: "Add or remove a title from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return app.WithEnv(flags.options(), func(env *app.Env) error {
				return app.ToggleFavorite(env, id, cmd.OutOrStdout())
			})
		},
	}
	cmd.AddCommand(toggle)
	return cmd
}

func newLogsCmd(flags *globalFlags) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return app.PrintLogs(cfg.Logging.File, lines, isTerminal(os.Stdout), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show")
	return cmd
}
