package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/corey/acro/internal/app"
	"github.com/corey/acro/internal/logger"
	"github.com/spf13/cobra"
)

var (
	flagCatalog  string
	flagConfig   string
	flagNoColor  bool
	flagLogLevel string

	lookupFuzzy   bool
	lookupLimit   int
	lookupPartial bool
)

var rootCmd = &cobra.Command{
	Use:   "acro [query]",
	Short: "Look up acronyms from a YAML reference catalog",
	Long: "Prints the catalog entry whose acronym or alias matches the query (case-insensitive).\n" +
		"With -f, unknown queries get the closest matches from acronyms, aliases and entry text.\n" +
		"With -p, every acronym or alias containing the query is listed.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLookup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog file (default from config, else ./acronyms.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $ACRO_CONFIG or ~/.config/acro/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolVarP(&lookupFuzzy, "fuzzy", "f", false, "Fall back to fuzzy matching when there is no exact match")
	rootCmd.Flags().IntVarP(&lookupLimit, "limit", "l", 0, "Maximum fuzzy matches (default from config, 3)")
	rootCmd.Flags().BoolVarP(&lookupPartial, "partial", "p", false, "List acronyms and aliases containing the query")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command. Errors other than exit codes are printed
// to stderr here because cobra's own printing is silenced.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && ExitCode(err) < 0 {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

// loadConfig resolves the config file, environment and persistent flags.
func loadConfig() (app.Config, error) {
	path := flagConfig
	if path == "" {
		path = app.ConfigPath()
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if flagCatalog != "" {
		cfg.Catalog = flagCatalog
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoColor {
		cfg.Color = "never"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// openApp loads the config, sets up stderr logging and loads the catalog.
func openApp() (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	return app.New(app.Options{Config: cfg})
}

func runLookup(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("empty query")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p := newPalette(resolveColor(a.Config.Color))

	if lookupPartial {
		hits := a.Substring(query)
		fmt.Fprint(out, formatPartial(query, hits, p))
		if len(hits) == 0 {
			return exitError{code: 1}
		}
		return nil
	}

	if e, ok := a.Lookup(query); ok {
		fmt.Fprint(out, formatEntry(e, a.Mentions(e), p))
		return nil
	}

	if !lookupFuzzy {
		fmt.Fprint(out, formatNotFound(query, p))
		return exitError{code: 1}
	}

	results := a.Search(query, lookupLimit)
	fmt.Fprint(out, formatMatches(query, results, p))
	for _, e := range results {
		fmt.Fprint(out, formatEntry(e, a.Mentions(e), p))
	}
	if len(results) == 0 {
		return exitError{code: 1}
	}
	return nil
}
