// Package domains is the domain picker: one entry per exam domain plus
// "all domains" and "flagged for review".
package domains

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/router"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/screens/study"
	"github.com/abhisek/secplus/internal/ui/components"
	"github.com/abhisek/secplus/internal/ui/layout"
	"github.com/abhisek/secplus/internal/ui/theme"
)

// domainProgress is the mastery count for one domain.
type domainProgress struct {
	Domain   content.Domain
	Cards    int
	Mastered int
}

type domainsLoadedMsg struct {
	Domains []domainProgress
	Flagged int
}

// DomainsScreen lists the study targets.
type DomainsScreen struct {
	svc     screen.Services
	loaded  bool
	domains []domainProgress
	flagged int
	menu    components.Menu
}

var _ screen.Screen = (*DomainsScreen)(nil)
var _ screen.KeyHintProvider = (*DomainsScreen)(nil)

// New creates a DomainsScreen.
func New(svc screen.Services) *DomainsScreen {
	return &DomainsScreen{svc: svc}
}

func (d *DomainsScreen) Init() tea.Cmd {
	return d.load()
}

func (d *DomainsScreen) load() tea.Cmd {
	svc := d.svc
	return func() tea.Msg {
		ctx := context.Background()
		records := svc.Progress.All(ctx)

		var msg domainsLoadedMsg
		for _, dom := range svc.Catalog.Domains(ctx) {
			p := domainProgress{Domain: dom}
			for _, card := range svc.Catalog.FlashcardsByDomain(ctx, dom.ID) {
				p.Cards++
				if records[card.ID].Mastered {
					p.Mastered++
				}
			}
			msg.Domains = append(msg.Domains, p)
		}
		for _, r := range records {
			if r.NeedsReview {
				msg.Flagged++
			}
		}
		return msg
	}
}

func (d *DomainsScreen) Title() string {
	return "Choose a Domain"
}

func (d *DomainsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DomainsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case domainsLoadedMsg:
		d.loaded = true
		d.domains = msg.Domains
		d.flagged = msg.Flagged
		selected := d.menu.Selected
		d.menu = components.NewMenu(d.items())
		if selected < len(d.menu.Items) {
			d.menu.Selected = selected
		}
		return d, nil

	case router.PoppedMsg:
		return d, d.load()
	}

	if !d.loaded {
		return d, nil
	}
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DomainsScreen) items() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(d.domains)+2)
	for _, p := range d.domains {
		items = append(items, components.MenuItem{
			Label:  content.DomainLabel(p.Domain),
			Detail: fmt.Sprintf("%.0f%% of exam · %d/%d mastered", p.Domain.ExamPercentage, p.Mastered, p.Cards),
			Action: d.studyAction(study.ForDomain(p.Domain.ID)),
		})
	}
	items = append(items,
		components.MenuItem{
			Label:  "All domains",
			Detail: "highest exam weight first",
			Action: d.studyAction(study.AllDomains()),
		},
		components.MenuItem{
			Label:    "Flagged for review",
			Detail:   fmt.Sprintf("%d cards", d.flagged),
			Action:   d.studyAction(study.Flagged()),
			Disabled: d.flagged == 0,
		},
	)
	return items
}

func (d *DomainsScreen) studyAction(mode study.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		next := study.New(d.svc, mode)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (d *DomainsScreen) View(width, height int) string {
	if !d.loaded {
		return layout.CenterBlock(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading domains..."),
			width, height)
	}
	if len(d.domains) == 0 {
		return layout.CenterBlock(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("The domain catalog could not be loaded."),
			"",
			theme.Hint.Render("Press Esc to go back"),
		), width, height)
	}

	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("What do you want to study?"))
	sections = append(sections, components.Panel(d.menu.View(), cw))

	if sel := d.menu.Selected; sel < len(d.domains) {
		p := d.domains[sel]
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 4).Render(p.Domain.Description))
		b.WriteString("\n\n")
		b.WriteString(components.NewProgressBar("Mastery", components.Ratio(p.Mastered, p.Cards), true, cw-4).View())
		sections = append(sections, components.Panel(b.String(), cw))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n\n"))
}
