package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/mastery"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List or search flashcards",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetInt("domain")
		section, _ := cmd.Flags().GetString("section")
		query, _ := cmd.Flags().GetString("query")

		if section != "" && domain == 0 {
			return fmt.Errorf("--section requires --domain")
		}

		e, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		var cards []content.Flashcard
		if section != "" {
			f := content.Filter{Query: query}
			for _, c := range e.svc.Catalog.FlashcardsBySection(ctx, domain, section) {
				if f.Matches(c) {
					cards = append(cards, c)
				}
			}
		} else {
			cards = e.svc.Catalog.Search(ctx, content.Filter{Query: query, Domain: domain})
		}

		w := cmd.OutOrStdout()
		if len(cards) == 0 {
			fmt.Fprintln(w, "No cards match.")
			return nil
		}

		records := e.svc.Progress.All(ctx)
		for _, g := range content.Group(cards) {
			if d, ok := e.svc.Catalog.Domain(ctx, g.DomainID); ok {
				fmt.Fprintln(w, cyan.Sprint(content.DomainLabel(d)))
			}
			for _, sec := range g.Sections {
				fmt.Fprintln(w, "  "+bold.Sprint(sec.Name))
				for _, c := range sec.Cards {
					status := mastery.StatusOf(records[c.ID])
					fmt.Fprintf(w, "    %-28s %s  %s\n",
						truncate(c.Front, 28), truncate(c.Back.Level1, 60), statusMark(status))
				}
			}
		}
		fmt.Fprintf(w, "\n%d cards\n", len(cards))
		return nil
	},
}

func statusMark(s mastery.Status) string {
	switch s {
	case mastery.StatusMastered:
		return green.Sprint("✓")
	case mastery.StatusNeedsReview:
		return yellow.Sprint("⚑")
	}
	return ""
}

func init() {
	cardsCmd.Flags().Int("domain", 0, "Only cards from this domain (1-5)")
	cardsCmd.Flags().String("section", "", "Only cards from this section (needs --domain)")
	cardsCmd.Flags().String("query", "", "Case-insensitive match on front, section or short answer")
}
