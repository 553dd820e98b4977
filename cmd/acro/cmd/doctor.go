package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the catalog for problems",
	Long: "Loads the catalog and reports entries without an acronym (they cannot be looked up)\n" +
		"and keys claimed by more than one entry (only one of them wins a lookup).\n" +
		"Exits 1 when anything is found.",
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	r := a.Doctor()
	out := cmd.OutOrStdout()
	p := newPalette(resolveColor(a.Config.Color))

	fmt.Fprintf(out, "%s⚡ acro doctor%s\n", p.bold, p.reset)
	fmt.Fprintf(out, "  Catalog:     %s\n", r.Path)
	fmt.Fprintf(out, "  Categories:  %d\n", r.Categories)
	fmt.Fprintf(out, "  Entries:     %d\n", r.Entries)
	fmt.Fprintf(out, "  Keys:        %d\n", r.Keys)

	if r.Healthy() {
		fmt.Fprintf(out, "  Status:      %s✓ healthy%s\n", p.green, p.reset)
		return nil
	}

	fmt.Fprintf(out, "  Status:      %s✗ problems found%s\n", p.yellow, p.reset)
	if r.Skipped > 0 {
		fmt.Fprintf(out, "\n  %d entries have no acronym and are skipped by lookups\n", r.Skipped)
	}
	if len(r.Collisions) > 0 {
		fmt.Fprintf(out, "\n  Key collisions (%d):\n", len(r.Collisions))
		for _, c := range r.Collisions {
			fmt.Fprintf(out, "    %s%-10s%s resolves to %s, shadowing %s\n",
				p.cyan, c.Key, p.reset, c.Kept.Acronym, c.Replaced.Acronym)
		}
	}
	return exitError{code: 1}
}
