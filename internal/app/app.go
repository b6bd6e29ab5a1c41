// Package app hosts the Bubble Tea program: the screen router, the shared
// header and footer, and live preference changes.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/prefs"
	"github.com/abhisek/secplus/internal/router"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/screens/home"
	"github.com/abhisek/secplus/internal/ui/layout"
	"github.com/abhisek/secplus/internal/ui/theme"
)

// prefsChangedMsg carries preferences saved anywhere in the app.
type prefsChangedMsg struct {
	Prefs prefs.Preferences
}

// statsMsg carries refreshed header counters.
type statsMsg struct {
	Stats mastery.Stats
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    screen.Services
	width  int
	height int
	stats  mastery.Stats
}

// newAppModel creates a new AppModel with the home screen at the bottom of
// the stack and start, when non-nil, on top of it.
func newAppModel(svc screen.Services, start screen.Screen) AppModel {
	m := AppModel{
		router: router.New(home.New(svc)),
		svc:    svc,
	}
	if start != nil {
		m.router.Push(start)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	// A home screen covered by a start screen loads on the PoppedMsg that
	// reveals it.
	return tea.Batch(m.router.Active().Init(), m.refreshStats())
}

func (m AppModel) refreshStats() tea.Cmd {
	progress := m.svc.Progress
	if progress == nil {
		return nil
	}
	return func() tea.Msg {
		return statsMsg{Stats: progress.Stats(context.Background())}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case prefsChangedMsg:
		applyPrefs(msg.Prefs)
		return m, nil

	case statsMsg:
		m.stats = msg.Stats
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.EscCapturer); ok && c.CapturesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshStats())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.HeaderStats{
		Mastered: m.stats.Mastered,
		Flagged:  m.stats.NeedsReview,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// applyPrefs switches the global theme to match p.
func applyPrefs(p prefs.Preferences) {
	theme.Use(theme.ForPrefs(string(p.Theme), string(p.UISize)))
}

// Run starts the Bubble Tea program and blocks until it exits. A non-nil
// start screen opens on top of the home screen.
func Run(ctx context.Context, svc screen.Services, start screen.Screen) error {
	log := svc.Log()
	applyPrefs(svc.Prefs.Get(ctx))

	p := tea.NewProgram(newAppModel(svc, start), tea.WithContext(ctx))

	// Listeners run inside the writer's Update; hand off so Send never
	// blocks the event loop.
	unsubscribe := svc.Prefs.Subscribe(func(prefs prefs.Preferences) {
		go p.Send(prefsChangedMsg{Prefs: prefs})
	})
	defer unsubscribe()

	log.Info("tui started")
	if _, err := p.Run(); err != nil {
		log.Error("tui exited with error", zap.Error(err))
		return err
	}
	log.Info("tui stopped")
	return nil
}
