package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/secplus/internal/router"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/session"
	"github.com/abhisek/secplus/internal/ui/layout"
	"github.com/abhisek/secplus/internal/ui/theme"
)

// SummaryScreen displays the result of a finished study session.
type SummaryScreen struct {
	summary session.Summary
	subject string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. subject names what was studied.
func New(summary session.Summary, subject string) *SummaryScreen {
	return &SummaryScreen{summary: summary, subject: subject}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n")
	if s.subject != "" {
		b.WriteString(center.Foreground(theme.Secondary).Render(s.subject))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Cards: %d        Graded: %d        Accuracy: %.0f%%",
		sum.Cards, sum.Tally.Graded(), sum.Tally.Accuracy()*100)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	counts := theme.Correct.Render(fmt.Sprintf("✓ %d correct", sum.Tally.Correct)) +
		"     " + theme.Incorrect.Render(fmt.Sprintf("✗ %d missed", sum.Tally.Missed)) +
		"     " + theme.Flagged.Render(fmt.Sprintf("⚑ %d flagged", sum.Tally.Flagged))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counts))
	b.WriteString("\n\n")

	if sum.Tally.Missed+sum.Tally.Flagged > 0 {
		b.WriteString(center.Foreground(theme.TextDim).
			Render("Missed and flagged cards are waiting in \"Review flagged\"."))
	}

	return b.String()
}
