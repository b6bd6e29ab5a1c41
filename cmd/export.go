package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress or the card reference to a file",
}

var exportProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Write study progress to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		e, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		cat := e.svc.Catalog
		return writeFile(out, func(f *os.File) error {
			return export.WriteProgress(f, cat.Domains(ctx), cat.AllFlashcards(ctx), e.svc.Progress.All(ctx))
		}, cmd)
	},
}

var exportReferenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Write the card reference to an HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		domain, _ := cmd.Flags().GetInt("domain")
		query, _ := cmd.Flags().GetString("query")

		e, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		cards := e.svc.Catalog.Search(ctx, content.Filter{Query: query, Domain: domain})
		ref := export.Reference{
			Title:   e.source.Manifest().Title,
			Domains: e.svc.Catalog.Domains(ctx),
			Groups:  content.Group(cards),
		}
		return writeFile(out, func(f *os.File) error {
			return export.WriteReference(f, ref)
		}, cmd)
	},
}

// writeFile creates path, runs write and reports the result.
func writeFile(path string, write func(*os.File) error, cmd *cobra.Command) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), green.Sprint("Wrote ")+path)
	return nil
}

func init() {
	exportProgressCmd.Flags().String("out", "secplus-progress.xlsx", "Output file")
	exportReferenceCmd.Flags().String("out", "secplus-reference.html", "Output file")
	exportReferenceCmd.Flags().Int("domain", 0, "Only cards from this domain (1-5)")
	exportReferenceCmd.Flags().String("query", "", "Only cards matching this search")

	exportCmd.AddCommand(exportProgressCmd)
	exportCmd.AddCommand(exportReferenceCmd)
}
