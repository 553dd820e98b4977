package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/corey/acro/internal/domain/catalog"
	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <ACRONYM|ALIAS>",
	Short: "Remove an entry from the catalog",
	Long:  "Removes the first entry whose acronym or alias matches. Use 'acro undo' to restore it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// Show the entry Delete will remove: the first match in file order.
	e, ok := catalog.Find(a.Catalog, args[0])
	if !ok {
		fmt.Fprintf(out, "❌ Acronym '%s' not found.\n", strings.ToUpper(args[0]))
		return exitError{code: 1}
	}

	if !deleteForce {
		fmt.Fprintf(out, "Delete %s (%s)? [y/N] ", e.Acronym, summaryText(e))
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "cancelled")
			return nil
		}
	}

	name := e.Acronym
	if _, err := a.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %s\n", name)
	return nil
}
