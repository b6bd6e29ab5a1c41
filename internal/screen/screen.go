package screen

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/prefs"
	"github.com/abhisek/secplus/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscCapturer is implemented by screens that handle esc themselves while
// CapturesEsc returns true, e.g. while a confirmation dialog is open.
type EscCapturer interface {
	CapturesEsc() bool
}

// Services bundles the shared backends screens read from and write to.
type Services struct {
	Catalog  *content.Catalog
	Progress *mastery.Service
	Prefs    *prefs.Service
	Logger   *zap.Logger
}

// Log returns the services logger, or a no-op logger when unset.
func (s Services) Log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
