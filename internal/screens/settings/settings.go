// Package settings edits display preferences, shows progress totals and
// clears progress behind a confirmation.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/prefs"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/ui/components"
	"github.com/abhisek/secplus/internal/ui/layout"
	"github.com/abhisek/secplus/internal/ui/theme"
)

const (
	rowTheme = iota
	rowSize
	rowClear
	rowCount
)

type statsLoadedMsg struct {
	Stats mastery.Stats
	Total int
}

// SettingsScreen implements screen.Screen for preferences.
type SettingsScreen struct {
	svc    screen.Services
	prefs  prefs.Preferences
	stats  mastery.Stats
	total  int
	cursor int

	confirm *components.Confirm
	status  string
	failed  bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.EscCapturer = (*SettingsScreen)(nil)

// New creates a SettingsScreen showing the stored preferences.
func New(svc screen.Services) *SettingsScreen {
	return &SettingsScreen{
		svc:   svc,
		prefs: svc.Prefs.Get(context.Background()),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return s.loadStats()
}

func (s *SettingsScreen) loadStats() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx := context.Background()
		return statsLoadedMsg{
			Stats: svc.Progress.Stats(ctx),
			Total: len(svc.Catalog.AllFlashcards(ctx)),
		}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// CapturesEsc reports whether the confirmation dialog is open.
func (s *SettingsScreen) CapturesEsc() bool {
	return s.confirm != nil
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.confirm != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.stats, s.total = msg.Stats, msg.Total
		return s, nil

	case tea.KeyMsg:
		if s.confirm != nil {
			return s.updateConfirm(msg)
		}

		switch msg.String() {
		case "up", "k":
			s.cursor = (s.cursor + rowCount - 1) % rowCount
		case "down", "j":
			s.cursor = (s.cursor + 1) % rowCount
		case "left", "h":
			s.change(-1)
		case "right", "l":
			s.change(1)
		case "enter", "space", " ":
			if s.cursor == rowClear {
				c := components.NewConfirm("Delete all study progress? This cannot be undone.")
				s.confirm = &c
				return s, nil
			}
			s.change(1)
		}
	}
	return s, nil
}

func (s *SettingsScreen) updateConfirm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	c := s.confirm.Update(msg)
	if !c.Answered() {
		s.confirm = &c
		return s, nil
	}
	s.confirm = nil
	if !c.Accepted() {
		return s, nil
	}

	if s.svc.Progress.ClearAll(context.Background()) {
		s.setStatus("All progress cleared", false)
		s.svc.Log().Info("progress cleared from settings")
	} else {
		s.setStatus("Progress could not be cleared", true)
	}
	return s, s.loadStats()
}

// change steps the option under the cursor by delta and saves it.
func (s *SettingsScreen) change(delta int) {
	ctx := context.Background()

	var (
		p   prefs.Preferences
		err error
	)
	switch s.cursor {
	case rowTheme:
		p, err = s.svc.Prefs.UpdateTheme(ctx, step(prefs.Themes(), s.prefs.Theme, delta))
	case rowSize:
		p, err = s.svc.Prefs.UpdateUISize(ctx, step(prefs.UISizes(), s.prefs.UISize, delta))
	default:
		return
	}

	if err != nil {
		s.svc.Log().Warn("preference not saved", zap.Error(err))
		s.setStatus("Preference could not be saved", true)
		return
	}
	s.prefs = p
	s.setStatus("Saved", false)
}

func (s *SettingsScreen) setStatus(text string, failed bool) {
	s.status, s.failed = text, failed
}

// step returns the option delta positions from cur, wrapping around.
func step[T comparable](options []T, cur T, delta int) T {
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.confirm != nil {
		return layout.CenterBlock(components.Panel(s.confirm.View(), cw), width, height)
	}

	var rows []string
	rows = append(rows,
		s.renderOption(rowTheme, "Theme", optionList(prefs.Themes(), s.prefs.Theme)),
		s.renderOption(rowSize, "UI size", optionList(prefs.UISizes(), s.prefs.UISize)),
		s.renderOption(rowClear, "Clear all progress", ""),
	)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Settings"))
	sections = append(sections, components.Panel(strings.Join(rows, "\n"), cw))
	sections = append(sections, components.Panel(s.renderStats(cw-4), cw))

	if s.status != "" {
		style := theme.Correct
		if s.failed {
			style = theme.Incorrect
		}
		sections = append(sections, style.Render(s.status))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n\n"))
}

func (s *SettingsScreen) renderOption(row int, label, value string) string {
	name := fmt.Sprintf("%-20s", label)
	if row == s.cursor {
		name = theme.Selected.Render("▸ " + name)
	} else {
		name = theme.Unselected.Render("  " + name)
	}
	return name + value
}

func optionList[T ~string](options []T, cur T) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		if o == cur {
			parts = append(parts, theme.Badge.Render(string(o)))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1).Render(string(o)))
		}
	}
	return strings.Join(parts, " ")
}

func (s *SettingsScreen) renderStats(width int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	lines := []string{
		label.Render("Cards studied     ") + value.Render(fmt.Sprintf("%d of %d", s.stats.Studied, s.total)),
		label.Render("Mastered          ") + value.Render(fmt.Sprintf("%d", s.stats.Mastered)),
		label.Render("Needs review      ") + value.Render(fmt.Sprintf("%d", s.stats.NeedsReview)),
		"",
		components.NewProgressBar("Mastery", components.Ratio(s.stats.Mastered, s.total), true, width).View(),
	}
	return strings.Join(lines, "\n")
}
