package cmd

import (
	"fmt"

	"github.com/corey/acro/internal/adapters/fsnotify"
	"github.com/corey/acro/internal/adapters/tui"
	"github.com/corey/acro/internal/app"
	"github.com/corey/acro/internal/logger"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and edit the catalog interactively",
	Long: "Full-screen browser: categories, entries, search and add/edit/delete popups.\n" +
		"Keys: j/k or arrows move, enter/l open, h/q/esc back, / filter, e edit, d delete.\n" +
		"The catalog is reloaded when another process changes the file. Logs go to .acro/log/.",
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isStdinTTY() || !isStdoutTTY() {
		return fmt.Errorf("browse needs a terminal")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The screen owns stdout, so logs go to a file.
	paths := app.NewPaths(cfg.Catalog)
	if err := paths.EnsureDirs(); err != nil {
		return err
	}
	logFile, err := paths.OpenLog()
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format, logFile)

	a, err := app.New(app.Options{Config: cfg})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	b := tui.New(screen, a, tui.Options{Limit: cfg.Limit, Logger: logger.WithComponent("tui")})

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("live reload disabled", "err", err)
	} else {
		defer w.Stop()
		if err := w.Watch(a.Paths.Catalog, func(string) { b.NotifyChange() }); err != nil {
			log.Warn("live reload disabled", "err", err)
		}
	}

	log.Info("browser started", "catalog", a.Paths.Catalog)
	return b.Run()
}
