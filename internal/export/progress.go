// Package export writes study data to files for use outside the app.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/mastery"
)

const (
	ProgressSheet = "Progress"
	SummarySheet  = "Summary"
)

var progressHeader = []any{
	"Card ID", "Domain", "Section", "Front", "Status",
	"Correct", "Missed", "Last Seen", "Mastered", "Needs Review",
}

var summaryHeader = []any{"Domain", "Name", "Cards", "Studied", "Mastered", "Needs Review"}

// WriteProgress writes an .xlsx workbook with one row per card and a
// per-domain summary sheet. Cards never studied are listed with zero counts.
func WriteProgress(w io.Writer, domains []content.Domain, cards []content.Flashcard, records map[string]mastery.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProgressSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	if err := writeRow(f, ProgressSheet, 1, progressHeader); err != nil {
		return err
	}
	if err := f.SetRowStyle(ProgressSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	type tally struct{ cards, studied, mastered, review int }
	perDomain := make(map[int]*tally)

	for i, card := range cards {
		rec, studied := records[card.ID]
		if !studied {
			rec = mastery.ZeroRecord(card.ID)
		}

		lastSeen := ""
		if rec.LastSeen != nil {
			lastSeen = rec.LastSeen.UTC().Format(time.RFC3339)
		}

		row := []any{
			card.ID, card.Domain, card.Section, card.Front, mastery.StatusOf(rec).Label(),
			rec.TimesCorrect, rec.TimesMissed, lastSeen, yesNo(rec.Mastered), yesNo(rec.NeedsReview),
		}
		if err := writeRow(f, ProgressSheet, i+2, row); err != nil {
			return err
		}

		t := perDomain[card.Domain]
		if t == nil {
			t = &tally{}
			perDomain[card.Domain] = t
		}
		t.cards++
		if studied {
			t.studied++
		}
		if rec.Mastered {
			t.mastered++
		}
		if rec.NeedsReview {
			t.review++
		}
	}

	if err := writeRow(f, SummarySheet, 1, summaryHeader); err != nil {
		return err
	}
	if err := f.SetRowStyle(SummarySheet, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	for i, d := range domains {
		t := perDomain[d.ID]
		if t == nil {
			t = &tally{}
		}
		row := []any{d.ID, d.Name, t.cards, t.studied, t.mastered, t.review}
		if err := writeRow(f, SummarySheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(ProgressSheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(ProgressSheet, "C", "D", 36); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
