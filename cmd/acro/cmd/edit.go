package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corey/acro/internal/ports"
	"github.com/spf13/cobra"
)

var (
	editSet   []string
	editClear []string
)

var editCmd = &cobra.Command{
	Use:   "edit <ACRONYM|ALIAS>",
	Short: "Change fields of an existing entry",
	Long: "Updates the first entry whose acronym or alias matches.\n" +
		"  --set field=value   overwrite a field (lists are comma-separated and replace the old list)\n" +
		"  --clear field       remove a field\n" +
		"Fields: acronym, definition, category, description, aliases, origin, related_acronyms, notes.\n" +
		"Changing category does not move the entry to another bucket.",
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringArrayVarP(&editSet, "set", "s", nil, "field=value to assign (repeatable)")
	editCmd.Flags().StringSliceVar(&editClear, "clear", nil, "Field to remove (repeatable)")
}

var errNoChanges = errors.New("nothing to change: pass --set field=value or --clear field")

// parseChanges turns --set and --clear arguments into Changes.
func parseChanges(sets, clears []string) (ports.Changes, error) {
	var c ports.Changes
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return c, fmt.Errorf("--set %q: want field=value", s)
		}
		f, err := ports.ParseField(strings.TrimSpace(name))
		if err != nil {
			return c, fmt.Errorf("--set %q: %w", s, err)
		}
		c.Set(f, strings.TrimSpace(value))
	}
	for _, name := range clears {
		f, err := ports.ParseField(strings.TrimSpace(name))
		if err != nil {
			return c, fmt.Errorf("--clear: %w", err)
		}
		c.Clear = append(c.Clear, f)
	}
	if c.IsEmpty() {
		return c, errNoChanges
	}
	return c, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	changes, err := parseChanges(editSet, editClear)
	if err != nil {
		return err
	}
	a, err := openApp()
	if err != nil {
		return err
	}

	e, ok, err := a.Update(args[0], changes)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintf(out, "❌ Acronym '%s' not found.\n", strings.ToUpper(args[0]))
		return exitError{code: 1}
	}
	p := newPalette(resolveColor(a.Config.Color))
	fmt.Fprintf(out, "%s✓%s updated %s\n", p.green, p.reset, e.Acronym)
	return nil
}
