package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/session"
	"github.com/abhisek/secplus/internal/ui/components"
	"github.com/abhisek/secplus/internal/ui/layout"
	"github.com/abhisek/secplus/internal/ui/theme"
)

var tierNames = [content.MaxDisclosure]string{"Answer", "Detail", "Deep dive"}

func (s *StudyScreen) View(width, height int) string {
	if s.sess == nil {
		return layout.CenterBlock(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading flashcards..."),
			width, height)
	}
	if s.sess.Empty() {
		return s.renderEmpty(width, height)
	}
	return s.renderCard(width)
}

func (s *StudyScreen) renderEmpty(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(s.subject),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(s.mode.emptyMessage()),
		"",
		theme.Hint.Render("Press Enter or Esc to go back"),
	)
	return layout.CenterBlock(msg, width, height)
}

func (s *StudyScreen) renderCard(width int) string {
	card, _ := s.sess.Current()
	cw := components.ContentWidth(width)

	var b strings.Builder

	// Subject and position.
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s.subject)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Card %d/%d", s.sess.Index()+1, s.sess.Len()))
	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", components.Ratio(s.sess.Index()+1, s.sess.Len()), false, cw).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Card.Width(cw).Height(theme.CardMinLines).Render(s.renderBody(card, cw-6)))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(s.noticeStyle().Render(s.notice))
		b.WriteString("\n")
	}

	tally := s.sess.Tally()
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("This session: ✓ %d  ✗ %d  ⚑ %d", tally.Correct, tally.Missed, tally.Flagged)))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *StudyScreen) renderBody(card content.Flashcard, w int) string {
	var b strings.Builder

	meta := []string{card.Section, string(card.Type), string(card.Metadata.Difficulty)}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(meta, " · ")))
	if card.Metadata.CommonlyTested {
		b.WriteString("  " + theme.Badge.Render("commonly tested"))
	}
	b.WriteString("  " + s.statusBadge(card.ID))
	b.WriteString(theme.LineGap)

	front := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(w)
	if s.sess.Face() == session.FaceBack {
		front = front.Foreground(theme.TextDim)
	}
	b.WriteString(front.Render(card.Front))

	if s.sess.Face() == session.FaceFront {
		b.WriteString(theme.LineGap)
		b.WriteString(theme.Hint.Render("Press Space to reveal the answer"))
		return b.String()
	}

	for level := 1; level <= s.sess.Disclosure(); level++ {
		b.WriteString(theme.LineGap)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(tierNames[level-1]))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(w).Render(card.Back.Level(level)))
	}

	if s.sess.Disclosure() < content.MaxDisclosure {
		b.WriteString(theme.LineGap)
		b.WriteString(theme.Hint.Render("↑ more detail"))
	} else if len(card.Metadata.RelatedTerms) > 0 {
		b.WriteString(theme.LineGap)
		b.WriteString(theme.Hint.Render("Related: " + strings.Join(card.Metadata.RelatedTerms, ", ")))
	}
	return b.String()
}

func (s *StudyScreen) statusBadge(cardID string) string {
	status, ok := s.statuses[cardID]
	if !ok {
		status = mastery.StatusNew
	}
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch status {
	case mastery.StatusMastered:
		style = theme.Correct
	case mastery.StatusNeedsReview:
		style = theme.Flagged
	}
	return style.Render(status.Label())
}

func (s *StudyScreen) noticeStyle() lipgloss.Style {
	switch s.noticeKind {
	case noticeCorrect:
		return theme.Correct
	case noticeMissed, noticeWarn:
		return theme.Incorrect
	case noticeFlagged:
		return theme.Flagged
	default:
		return theme.Body
	}
}
