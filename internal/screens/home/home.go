// Package home is the landing screen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/router"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/screens/domains"
	"github.com/abhisek/secplus/internal/screens/reference"
	"github.com/abhisek/secplus/internal/screens/settings"
	"github.com/abhisek/secplus/internal/screens/study"
	"github.com/abhisek/secplus/internal/ui/components"
	"github.com/abhisek/secplus/internal/ui/theme"
)

const (
	itemContinue = iota
	itemDomains
	itemAll
	itemFlagged
	itemReference
	itemSettings
	itemQuit
)

type homeLoadedMsg struct {
	Stats      mastery.Stats
	Total      int
	LastDomain *content.Domain
}

// HomeScreen is the main menu.
type HomeScreen struct {
	svc        screen.Services
	menu       components.Menu
	stats      mastery.Stats
	total      int
	lastDomain *content.Domain
	loaded     bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc screen.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}

	items := []components.MenuItem{
		itemContinue: {Label: "Continue studying", Disabled: true, Action: func() tea.Cmd {
			if h.lastDomain == nil {
				return nil
			}
			return h.push(study.New(svc, study.ForDomain(h.lastDomain.ID)))
		}},
		itemDomains: {Label: "Study by domain", Action: func() tea.Cmd {
			return h.push(domains.New(svc))
		}},
		itemAll: {Label: "Study all domains", Action: func() tea.Cmd {
			return h.push(study.New(svc, study.AllDomains()))
		}},
		itemFlagged: {Label: "Review flagged cards", Action: func() tea.Cmd {
			return h.push(study.New(svc, study.Flagged()))
		}},
		itemReference: {Label: "Reference", Action: func() tea.Cmd {
			return h.push(reference.New(svc))
		}},
		itemSettings: {Label: "Settings", Action: func() tea.Cmd {
			return h.push(settings.New(svc))
		}},
		itemQuit: {Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		ctx := context.Background()
		msg := homeLoadedMsg{
			Stats: svc.Progress.Stats(ctx),
			Total: len(svc.Catalog.AllFlashcards(ctx)),
		}
		if last := svc.Prefs.Get(ctx).LastStudiedDomain; last != nil {
			if d, ok := svc.Catalog.Domain(ctx, *last); ok {
				msg.LastDomain = &d
			}
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		h.stats, h.total, h.lastDomain = msg.Stats, msg.Total, msg.LastDomain
		h.loaded = true
		item := &h.menu.Items[itemContinue]
		if h.lastDomain != nil {
			item.Disabled = false
			h.menu.SetLabel(itemContinue, "Continue: "+content.DomainLabel(*h.lastDomain))
		} else {
			item.Disabled = true
			h.menu.SetLabel(itemContinue, "Continue studying")
			if h.menu.Selected == itemContinue {
				h.menu.Selected = itemDomains
			}
		}
		return h, nil

	case router.PoppedMsg:
		return h, h.load()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok && !h.loaded {
		// The first load went to a screen pushed over this one.
		return h, tea.Batch(cmd, h.load())
	}
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || width < 90
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, renderBanner(width, compact)))
	sections = append(sections, theme.Subtitle.Width(cw).Render("CompTIA Security+ flashcards"))
	sections = append(sections, components.Panel(h.renderStats(cw-4), cw))
	sections = append(sections, components.Panel(h.menu.View(), cw))

	return placeTop(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStats(width int) string {
	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%d/%d studied", h.stats.Studied, h.total)),
		theme.Correct.Render(fmt.Sprintf("✓ %d mastered", h.stats.Mastered)),
		theme.Flagged.Render(fmt.Sprintf("⚑ %d to review", h.stats.NeedsReview)),
	}
	line := strings.Join(parts, "    ")
	bar := components.NewProgressBar("", components.Ratio(h.stats.Mastered, h.total), true, width).View()
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n" + bar
}

func placeTop(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top).
		Render(content)
}
