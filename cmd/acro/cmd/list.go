package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List categories, or the entries of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p := newPalette(resolveColor(a.Config.Color))
	view := a.View()

	if len(args) == 0 {
		names := view.Names()
		if len(names) == 0 {
			fmt.Fprintf(out, "catalog %s is empty\n", a.Paths.Catalog)
			return nil
		}
		width := 0
		for _, n := range names {
			width = max(width, len(n))
		}
		for _, n := range names {
			fmt.Fprintf(out, "  %s%-*s%s  %s%d%s\n", p.bold, width, n, p.reset, p.gray, view.Count(n), p.reset)
		}
		return nil
	}

	name := resolveCategory(view.Names(), args[0])
	if name == "" {
		return fmt.Errorf("unknown category %q (see 'acro list')", args[0])
	}
	fmt.Fprintf(out, "%s%s%s\n", p.bold, name, p.reset)
	for _, e := range view.Entries(name) {
		if !e.HasAcronym() {
			continue
		}
		fmt.Fprint(out, summaryLine(e, p))
	}
	return nil
}

// resolveCategory matches a category name exactly, then case-insensitively.
func resolveCategory(names []string, query string) string {
	for _, n := range names {
		if n == query {
			return n
		}
	}
	for _, n := range names {
		if strings.EqualFold(n, query) {
			return n
		}
	}
	return ""
}
