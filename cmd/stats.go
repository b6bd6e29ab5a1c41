package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		st := e.svc.Progress.Stats(ctx)
		total := len(e.svc.Catalog.AllFlashcards(ctx))

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-16s %s\n", "Cards studied", bold.Sprintf("%d of %d", st.Studied, total))
		fmt.Fprintf(w, "%-16s %s\n", "Mastered", green.Sprint(st.Mastered))
		fmt.Fprintf(w, "%-16s %s\n", "Needs review", yellow.Sprint(st.NeedsReview))
		if total > 0 {
			fmt.Fprintf(w, "%-16s %.0f%%\n", "Mastery", float64(st.Mastered)/float64(total)*100)
		}
		return nil
	},
}
