package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/secplus/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "secplus",
	Short:         "Security+ flashcards in the terminal",
	Long:          "secplus: study CompTIA Security+ (SY0-701) flashcards with tiered answers, mastery tracking and a searchable reference.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides db_path and SECPLUS_DB_PATH)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config.yaml file")
	rootCmd.PersistentFlags().String("content", "", "Directory with manifest.json, domains.json and flashcard files (overrides the built-in content)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, and makes sure its directory exists.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = configured
	}
	if p == "" {
		var err error
		if p, err = store.DefaultDBPath(); err != nil {
			return "", err
		}
	}
	return p, store.EnsureDir(p)
}
