package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/secplus/internal/app"
	"github.com/abhisek/secplus/internal/screen"
)

// runApp bootstraps dependencies and launches the TUI. start, when non-nil,
// builds the screen shown above home.
func runApp(cmd *cobra.Command, start func(screen.Services) screen.Screen) error {
	e, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	var first screen.Screen
	if start != nil {
		first = start(e.svc)
	}
	return app.Run(cmd.Context(), e.svc, first)
}
