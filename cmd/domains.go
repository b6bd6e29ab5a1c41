package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/secplus/internal/content"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List exam domains with card counts and mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		domains := e.svc.Catalog.Domains(ctx)
		if len(domains) == 0 {
			return fmt.Errorf("domain catalog unavailable")
		}
		records := e.svc.Progress.All(ctx)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-3s  %-45s  %5s  %5s  %8s\n", "ID", "Name", "Exam", "Cards", "Mastered")
		rule(w, 74)

		for _, d := range domains {
			cards := e.svc.Catalog.FlashcardsByDomain(ctx, d.ID)
			mastered := 0
			for _, c := range cards {
				if records[c.ID].Mastered {
					mastered++
				}
			}
			fmt.Fprintf(w, "%-3d  %-45s  %4.0f%%  %5d  %s\n",
				d.ID, truncate(d.Name, 45), d.ExamPercentage, len(cards),
				green.Sprintf("%8d", mastered))
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, gray.Sprintf("Study order for all domains: %v", content.PriorityOrder))
		return nil
	},
}
