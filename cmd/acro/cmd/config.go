package cmd

import (
	"fmt"
	"os"

	"github.com/corey/acro/internal/app"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the config file, the resolved catalog and state paths, and search settings.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := flagConfig
	if path == "" {
		path = app.ConfigPath()
	}
	configStatus := "(not found, using defaults)"
	if _, err := os.Stat(path); err == nil {
		configStatus = ""
	}
	p := newPalette(resolveColor(cfg.Color))
	paths := app.NewPaths(cfg.Catalog)
	catalogStatus := fmt.Sprintf("%s✗ missing%s", p.yellow, p.reset)
	if _, err := os.Stat(paths.Catalog); err == nil {
		catalogStatus = fmt.Sprintf("%s✓ present%s", p.green, p.reset)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s⚡ acro config%s\n", p.bold, p.reset)
	fmt.Fprintf(out, "  Config:       %s %s\n", path, configStatus)
	fmt.Fprintf(out, "  Catalog:      %s (%s)\n", paths.Catalog, catalogStatus)
	fmt.Fprintf(out, "  History:      %s\n", paths.HistoryDB)
	fmt.Fprintf(out, "  Browse log:   %s\n", paths.BrowseLog)
	fmt.Fprintf(out, "  Limit:        %d\n", cfg.EffectiveLimit(0))
	fmt.Fprintf(out, "  Cutoff:       %.2f\n", cfg.Cutoff)
	fmt.Fprintf(out, "  History keep: %d\n", cfg.HistoryKeep)
	fmt.Fprintf(out, "  Color:        %s\n", cfg.Color)
	fmt.Fprintf(out, "  Log:          %s (%s)\n", cfg.Log.Level, cfg.Log.Format)
	return nil
}
