package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/secplus/internal/content"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "secplus", version)

		src, err := content.Embedded()
		if err != nil {
			return fmt.Errorf("read built-in content: %w", err)
		}
		m := src.Manifest()
		fmt.Fprintf(w, "content: %s (format %s)\n", m.Title, m.Format)
		return nil
	},
}
