// Package app runs marcador's commands against the bookmark database.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/marcador/internal/bookmark"
	"github.com/atomicstack/marcador/internal/format/table"
	"github.com/atomicstack/marcador/internal/logging/events"
	"github.com/atomicstack/marcador/internal/menu"
	"github.com/atomicstack/marcador/internal/rofi"
	"github.com/atomicstack/marcador/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Config describes user-provided application options.
type Config struct {
	DBPath  string
	Program string
	Browser string
	Theme   string
	Width   rofi.Width
	Verbose bool
	Command string
	Args    []string
}

// launcher is swapped in tests to script rofi answers.
var launcher rofi.Launcher = rofi.ExecLauncher{}

// Run opens the database and executes the configured command. Output of
// the list command and verbose messages go to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := bookmark.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open bookmarks: %w", err)
	}
	defer store.Close()

	events.App.Command(cfg.Command, cfg.Args)
	switch cfg.Command {
	case "", "rofi":
		return runRofi(ctx, cfg, store)
	case "add":
		return runAdd(ctx, cfg, store, out)
	case "list":
		return runList(ctx, store, out)
	case "delete":
		return runDelete(ctx, cfg, store, out)
	}
	return fmt.Errorf("unknown command %q", cfg.Command)
}

func runRofi(ctx context.Context, cfg Config, store bookmark.Store) error {
	mc := menu.Context{
		Store:    store,
		Program:  cfg.Program,
		Launcher: launcher,
		Browser:  cfg.Browser,
		Theme:    cfg.Theme,
		Width:    cfg.Width,
	}
	err := menu.Launch(ctx, mc)
	if err == nil || errors.Is(err, rofi.ErrIO) {
		return err
	}
	// rofi sessions have no terminal, so the failure goes to a message dialog
	events.App.Error(err)
	if nerr := menu.Notify(mc, "marcador: "+err.Error()); nerr != nil {
		return errors.Join(err, nerr)
	}
	return err
}

func runAdd(ctx context.Context, cfg Config, store bookmark.Store, out io.Writer) error {
	if len(cfg.Args) < 2 {
		return errors.New("usage: add URL DESCRIPTION [TAG...]")
	}
	url, description := cfg.Args[0], cfg.Args[1]
	var tags []string
	for _, arg := range cfg.Args[2:] {
		tags = append(tags, bookmark.ParseTags(arg)...)
	}
	id, err := store.Add(ctx, url, description, tags)
	if err != nil {
		return err
	}
	events.Bookmark.Add(id, url, tags)
	if cfg.Verbose {
		fmt.Fprintf(out, "added bookmark %d\n", id)
	}
	return nil
}

func runDelete(ctx context.Context, cfg Config, store bookmark.Store, out io.Writer) error {
	if len(cfg.Args) != 1 {
		return errors.New("usage: delete ID")
	}
	id, err := strconv.ParseInt(cfg.Args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bookmark id %q: %w", cfg.Args[0], err)
	}
	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	events.Bookmark.Delete(id)
	if cfg.Verbose {
		fmt.Fprintf(out, "deleted bookmark %d\n", id)
	}
	return nil
}

func runList(ctx context.Context, store bookmark.Store, out io.Writer) error {
	bookmarks, err := store.Bookmarks(ctx)
	if err != nil {
		return err
	}
	events.Bookmark.List(len(bookmarks))
	for _, line := range listLines(bookmarks, theme.List(lipgloss.NewRenderer(out))) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func listLines(bookmarks []bookmark.Bookmark, styles theme.ListStyles) []string {
	if len(bookmarks) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(bookmarks)+1)
	rows = append(rows, []string{
		styles.Header.Render("ID"),
		styles.Header.Render("DESCRIPTION"),
		styles.Header.Render("URL"),
		styles.Header.Render("TAGS"),
	})
	for _, b := range bookmarks {
		tags := ""
		if len(b.Tags) > 0 {
			tags = styles.Tags.Render(strings.Join(b.Tags, ","))
		}
		rows = append(rows, []string{
			styles.ID.Render(strconv.FormatInt(b.ID, 10)),
			styles.Description.Render(b.Description),
			styles.URL.Render(b.URL),
			tags,
		})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignRight})
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
