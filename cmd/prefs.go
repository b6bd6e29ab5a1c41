package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/secplus/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change display preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		printPrefs(cmd, e.svc.Prefs.Get(cmd.Context()))
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set theme|size|domain VALUE",
	Short: "Change one preference",
	Long: `Change one preference.

  secplus prefs set theme light|dark
  secplus prefs set size cozy|normal|large
  secplus prefs set domain 1-5|none`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		key, value := args[0], args[1]

		var p prefs.Preferences
		switch key {
		case "theme":
			t, perr := prefs.ParseTheme(value)
			if perr != nil {
				return perr
			}
			p, err = e.svc.Prefs.UpdateTheme(ctx, t)
		case "size":
			u, perr := prefs.ParseUISize(value)
			if perr != nil {
				return perr
			}
			p, err = e.svc.Prefs.UpdateUISize(ctx, u)
		case "domain":
			var d *int
			if value != "none" {
				n, perr := strconv.Atoi(value)
				if perr != nil {
					return fmt.Errorf("%w: %q", prefs.ErrInvalidDomain, value)
				}
				d = &n
			}
			p, err = e.svc.Prefs.UpdateLastStudiedDomain(ctx, d)
		default:
			return fmt.Errorf("unknown preference %q (want theme, size or domain)", key)
		}
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}

		printPrefs(cmd, p)
		return nil
	},
}

func printPrefs(cmd *cobra.Command, p prefs.Preferences) {
	w := cmd.OutOrStdout()
	last := "none"
	if p.LastStudiedDomain != nil {
		last = strconv.Itoa(*p.LastStudiedDomain)
	}
	fmt.Fprintf(w, "%-8s %s\n", "theme", cyan.Sprint(p.Theme))
	fmt.Fprintf(w, "%-8s %s\n", "size", cyan.Sprint(p.UISize))
	fmt.Fprintf(w, "%-8s %s\n", "domain", cyan.Sprint(last))
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
