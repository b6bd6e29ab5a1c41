package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all study progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		w := cmd.OutOrStdout()

		if !yes {
			fmt.Fprint(w, yellow.Sprint("Delete all study progress? This cannot be undone. [y/N] "))
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(w, "Aborted.")
				return nil
			}
		}

		e, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if !e.svc.Progress.ClearAll(cmd.Context()) {
			return fmt.Errorf("clear progress: storage unavailable")
		}
		fmt.Fprintln(w, green.Sprint("Progress cleared."))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
