package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/corey/acro/internal/app"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved versions of the catalog file",
	Long:  "Every add, edit and delete keeps the previous file. Newest first; 'acro undo' restores the newest.",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyClear bool

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Forget every saved version")
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Restore the catalog file to its previous version",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if historyClear {
		if err := a.ClearHistory(); err != nil {
			return explainHistoryError(err, a.Paths.HistoryDB)
		}
		fmt.Fprintln(out, "history cleared")
		return nil
	}
	snaps, err := a.History()
	if err != nil {
		return explainHistoryError(err, a.Paths.HistoryDB)
	}
	if len(snaps) == 0 {
		fmt.Fprintln(out, "no history yet")
		return nil
	}
	p := newPalette(resolveColor(a.Config.Color))
	for _, s := range snaps {
		when := time.Unix(s.CreatedAt, 0).Local().Format("2006-01-02 15:04:05")
		fmt.Fprintf(out, "  %s#%-4d%s %s%s%s  before %s (%d bytes)\n",
			p.cyan, s.ID, p.reset, p.gray, when, p.reset, s.Reason, s.Size)
	}
	return nil
}

func runUndo(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	snap, err := a.Undo()
	if errors.Is(err, app.ErrNoHistory) {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to undo")
		return exitError{code: 1}
	}
	if err != nil {
		return explainHistoryError(err, a.Paths.HistoryDB)
	}
	p := newPalette(resolveColor(a.Config.Color))
	fmt.Fprintf(cmd.OutOrStdout(), "%s✓%s restored the catalog from before %s\n", p.green, p.reset, snap.Reason)
	return nil
}
