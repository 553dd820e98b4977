package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/corey/acro/internal/domain/catalog"
	"github.com/corey/acro/internal/ports"
	"github.com/spf13/cobra"
)

var (
	addDefinition  string
	addCategory    string
	addDescription string
	addAliases     []string
	addOrigin      string
	addRelated     []string
	addNotes       string
)

var addCmd = &cobra.Command{
	Use:   "add <ACRONYM>",
	Short: "Add an entry to the catalog",
	Long: "Appends a new entry to the bucket named by --category (Misc when omitted).\n" +
		"Fields without a flag are left absent. The previous file is kept in history.",
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVarP(&addDefinition, "definition", "d", "", "What the acronym stands for")
	f.StringVarP(&addCategory, "category", "c", "", "Category bucket (default Misc)")
	f.StringVar(&addDescription, "description", "", "Longer explanation")
	f.StringSliceVarP(&addAliases, "alias", "a", nil, "Alternative spelling (repeatable or comma-separated)")
	f.StringVar(&addOrigin, "origin", "", "Where the term comes from")
	f.StringSliceVarP(&addRelated, "related", "r", nil, "Related acronym (repeatable or comma-separated)")
	f.StringVar(&addNotes, "notes", "", "Free-form notes")
}

// addChanges collects the flags the user actually passed.
func addChanges(cmd *cobra.Command) ports.Changes {
	var c ports.Changes
	f := cmd.Flags()
	if f.Changed("definition") {
		c.Definition = ports.Text(addDefinition)
	}
	if f.Changed("category") {
		c.Category = ports.Text(addCategory)
	}
	if f.Changed("description") {
		c.Description = ports.Text(addDescription)
	}
	if f.Changed("alias") {
		c.Aliases = ports.SplitList(strings.Join(addAliases, ","))
	}
	if f.Changed("origin") {
		c.Origin = ports.Text(addOrigin)
	}
	if f.Changed("related") {
		c.RelatedAcronyms = ports.SplitList(strings.Join(addRelated, ","))
	}
	if f.Changed("notes") {
		c.Notes = ports.Text(addNotes)
	}
	return c
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	e := &ports.Entry{Acronym: args[0]}
	addChanges(cmd).Apply(e)

	if existing, ok := a.Lookup(e.Acronym); ok {
		fmt.Fprintf(os.Stderr, "warning: %s already resolves to %s; adding another entry\n", e.Acronym, existing.Acronym)
	}
	if err := a.Add(e); err != nil {
		return err
	}

	bucket := catalog.MiscCategory
	if c := strings.TrimSpace(ports.Value(e.Category)); c != "" {
		bucket = c
	}
	p := newPalette(resolveColor(a.Config.Color))
	fmt.Fprintf(cmd.OutOrStdout(), "%s✓%s added %s to %s\n", p.green, p.reset, e.Acronym, bucket)
	return nil
}
