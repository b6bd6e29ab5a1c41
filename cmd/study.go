package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/secplus/internal/prefs"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/screens/study"
)

var studyCmd = &cobra.Command{
	Use:   "study [domain|all|flagged]",
	Short: "Start a study session straight away",
	Long: `Start a study session without going through the menu.

  secplus study 4        study domain 4
  secplus study all      every domain, highest exam weight first
  secplus study flagged  cards flagged for review`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "all"
		if len(args) == 1 {
			target = args[0]
		}
		mode, err := parseStudyTarget(target)
		if err != nil {
			return err
		}
		return runApp(cmd, func(svc screen.Services) screen.Screen {
			return study.New(svc, mode)
		})
	},
}

func parseStudyTarget(s string) (study.Mode, error) {
	switch s {
	case "all":
		return study.AllDomains(), nil
	case "flagged":
		return study.Flagged(), nil
	}
	id, err := strconv.Atoi(s)
	if err != nil || id < prefs.MinDomain || id > prefs.MaxDomain {
		return study.Mode{}, fmt.Errorf("study target must be a domain %d-%d, \"all\" or \"flagged\", got %q",
			prefs.MinDomain, prefs.MaxDomain, s)
	}
	return study.ForDomain(id), nil
}
