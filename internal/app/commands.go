package app

import (
	"fmt"
	"io"

	"github.com/five82/shiki/internal/logtail"
)

// PrintFavorites writes the favorite IDs, one per line.
func PrintFavorites(env *Env, out io.Writer) error {
	ids := env.Favorites.IDs()
	if len(ids) == 0 {
		_, err := fmt.Fprintln(out, "no favorites yet")
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(out, id); err != nil {
			return err
		}
	}
	return nil
}

// ToggleFavorite flips id in the favorites set and reports the new state.
func ToggleFavorite(env *Env, id int, out io.Writer) error {
	if id <= 0 {
		return fmt.Errorf("invalid id %d", id)
	}
	on, err := env.Favorites.Toggle(id)
	if err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	state := "removed from"
	if on {
		state = "added to"
	}
	_, err = fmt.Fprintf(out, "%d %s favorites\n", id, state)
	return err
}

// PrintLogs writes the last n lines of the log file at path. With color the
// lines are rendered with level colors, otherwise as plain text.
func PrintLogs(path string, n int, color bool, out io.Writer) error {
	lines, err := logtail.Read(path, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if color {
			line = logtail.Colorize(line)
		} else {
			line = logtail.Format(line)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
