// Package reference is the searchable card reference: every card grouped
// by domain and section, filtered by a query and an optional domain.
package reference

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/ui/components"
	"github.com/abhisek/secplus/internal/ui/layout"
	"github.com/abhisek/secplus/internal/ui/theme"
)

type rowKind int

const (
	rowDomainHeader rowKind = iota
	rowSectionHeader
	rowCard
)

type row struct {
	kind  rowKind
	label string
	count int
	card  content.Flashcard
}

type referenceLoadedMsg struct {
	Domains []content.Domain
	Cards   []content.Flashcard
}

// ReferenceScreen lists cards for lookup.
type ReferenceScreen struct {
	svc     screen.Services
	loaded  bool
	domains []content.Domain
	cards   []content.Flashcard

	input     components.TextInput
	query     string
	domainIdx int // 0 = all domains, else index+1 into domains

	rows         []row
	matches      int
	cursor       int
	scrollOffset int
	expanded     string
}

var _ screen.Screen = (*ReferenceScreen)(nil)
var _ screen.KeyHintProvider = (*ReferenceScreen)(nil)

// New creates a ReferenceScreen.
func New(svc screen.Services) *ReferenceScreen {
	return &ReferenceScreen{
		svc:   svc,
		input: components.NewTextInput("Search: ", "acronym, term or section", 64),
	}
}

func (r *ReferenceScreen) Init() tea.Cmd {
	svc := r.svc
	load := func() tea.Msg {
		ctx := context.Background()
		return referenceLoadedMsg{
			Domains: svc.Catalog.Domains(ctx),
			Cards:   svc.Catalog.AllFlashcards(ctx),
		}
	}
	return tea.Batch(r.input.Init(), load)
}

func (r *ReferenceScreen) Title() string {
	return "Reference"
}

func (r *ReferenceScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "Tab", Description: "Domain"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Expand"},
		{Key: "Esc", Description: "Back"},
	}
}

// Filter returns the active card filter.
func (r *ReferenceScreen) Filter() content.Filter {
	f := content.Filter{Query: r.query}
	if r.domainIdx > 0 && r.domainIdx <= len(r.domains) {
		f.Domain = r.domains[r.domainIdx-1].ID
	}
	return f
}

func (r *ReferenceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case referenceLoadedMsg:
		r.loaded = true
		r.domains = msg.Domains
		r.cards = msg.Cards
		r.rebuild()
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			r.moveCursor(-1)
			return r, nil
		case "down":
			r.moveCursor(1)
			return r, nil
		case "tab":
			r.domainIdx = (r.domainIdx + 1) % (len(r.domains) + 1)
			r.rebuild()
			return r, nil
		case "shift+tab":
			r.domainIdx = (r.domainIdx + len(r.domains)) % (len(r.domains) + 1)
			r.rebuild()
			return r, nil
		case "enter":
			r.toggleExpanded()
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	if q := r.input.Value(); q != r.query {
		r.query = q
		r.rebuild()
	}
	return r, cmd
}

// rebuild regroups the matching cards and resets the cursor.
func (r *ReferenceScreen) rebuild() {
	f := r.Filter()
	var matched []content.Flashcard
	for _, card := range r.cards {
		if f.Matches(card) {
			matched = append(matched, card)
		}
	}
	r.matches = len(matched)

	names := make(map[int]string, len(r.domains))
	for _, d := range r.domains {
		names[d.ID] = content.DomainLabel(d)
	}

	r.rows = r.rows[:0]
	for _, g := range content.Group(matched) {
		label, ok := names[g.DomainID]
		if !ok {
			label = fmt.Sprintf("Domain %d", g.DomainID)
		}
		r.rows = append(r.rows, row{kind: rowDomainHeader, label: label, count: g.Count()})
		for _, sec := range g.Sections {
			r.rows = append(r.rows, row{kind: rowSectionHeader, label: sec.Name, count: len(sec.Cards)})
			for _, card := range sec.Cards {
				r.rows = append(r.rows, row{kind: rowCard, card: card})
			}
		}
	}

	r.cursor, r.scrollOffset, r.expanded = 0, 0, ""
	r.moveCursor(1)
}

// moveCursor moves the cursor by delta, skipping headers.
func (r *ReferenceScreen) moveCursor(delta int) {
	start := r.cursor
	if len(r.rows) > 0 && r.rows[start].kind != rowCard {
		start -= delta
	}
	for next := start + delta; next >= 0 && next < len(r.rows); next += delta {
		if r.rows[next].kind == rowCard {
			r.cursor = next
			return
		}
	}
}

func (r *ReferenceScreen) toggleExpanded() {
	if r.cursor >= len(r.rows) || r.rows[r.cursor].kind != rowCard {
		return
	}
	id := r.rows[r.cursor].card.ID
	if r.expanded == id {
		r.expanded = ""
		return
	}
	r.expanded = id
}

// adjustScroll keeps the cursor and its headers within the window.
func (r *ReferenceScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := r.cursor
	for top > 0 && r.rows[top-1].kind != rowCard {
		top--
	}
	if top < r.scrollOffset {
		r.scrollOffset = top
	}
	if r.cursor >= r.scrollOffset+height {
		r.scrollOffset = r.cursor - height + 1
	}
}

func (r *ReferenceScreen) View(width, height int) string {
	if !r.loaded {
		return layout.CenterBlock(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading reference..."),
			width, height)
	}

	cw := components.ContentWidth(width)
	header := r.input.View() + "\n" + r.renderFilterLine()

	listHeight := height - lipgloss.Height(header) - 2
	if r.expanded != "" {
		listHeight -= 8
	}

	var lines []string
	if len(r.rows) == 0 {
		lines = append(lines, "", theme.Hint.Render("No cards match this search."))
	} else {
		r.adjustScroll(listHeight)
		visible := 0
		for i, rw := range r.rows {
			if i < r.scrollOffset {
				continue
			}
			if visible >= listHeight {
				break
			}
			lines = append(lines, r.renderRow(rw, i == r.cursor, cw))
			visible++
		}
	}

	block := header + "\n\n" + strings.Join(lines, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(block))
}

func (r *ReferenceScreen) renderFilterLine() string {
	label := "All domains"
	if f := r.Filter(); f.Domain != 0 {
		label = fmt.Sprintf("Domain %d", f.Domain)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Filter: %s  ·  %d of %d cards", label, r.matches, len(r.cards)))
}

func (r *ReferenceScreen) renderRow(rw row, selected bool, width int) string {
	switch rw.kind {
	case rowDomainHeader:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("%s (%d)", rw.label, rw.count))
	case rowSectionHeader:
		return lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("  %s (%d)", rw.label, rw.count))
	}

	card := rw.card
	line := fmt.Sprintf("    %s  ", card.Front)
	summary := lipgloss.NewStyle().Foreground(theme.TextDim).
		MaxWidth(max(width-lipgloss.Width(line), 0)).
		Render(firstLine(card.Back.Level1))

	if selected {
		line = theme.Selected.Render("  ▸ "+card.Front) + "  " + summary
	} else {
		line = theme.Unselected.Render(line) + summary
	}

	if r.expanded != card.ID {
		return line
	}

	body := make([]string, 0, content.MaxDisclosure+1)
	for level := 1; level <= content.MaxDisclosure; level++ {
		body = append(body, theme.Body.Width(width-10).Render(card.Back.Level(level)))
	}
	if len(card.Metadata.RelatedTerms) > 0 {
		body = append(body, theme.Hint.Render("Related: "+strings.Join(card.Metadata.RelatedTerms, ", ")))
	}
	return line + "\n" + lipgloss.NewStyle().PaddingLeft(6).Render(strings.Join(body, "\n"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
