package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/secplus/internal/ui/theme"
)

// Confirm is a yes/no prompt. No is selected initially.
type Confirm struct {
	Prompt   string
	yes      bool
	answered bool
	accepted bool
}

// NewConfirm creates a confirmation prompt.
func NewConfirm(prompt string) Confirm {
	return Confirm{Prompt: prompt}
}

// Update handles left/right selection, y/n shortcuts and enter.
func (c Confirm) Update(msg tea.Msg) Confirm {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || c.answered {
		return c
	}

	switch kmsg.String() {
	case "left", "right", "tab", "h", "l":
		c.yes = !c.yes
	case "y", "Y":
		c.answered, c.accepted = true, true
	case "n", "N", "esc":
		c.answered, c.accepted = true, false
	case "enter":
		c.answered, c.accepted = true, c.yes
	}
	return c
}

// Answered reports whether the user has decided.
func (c Confirm) Answered() bool { return c.answered }

// Accepted reports whether the user chose yes.
func (c Confirm) Accepted() bool { return c.accepted }

// View renders the prompt with its two buttons.
func (c Confirm) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(c.Prompt)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		Button("Yes, delete", c.yes, 16),
		"  ",
		Button("Cancel", !c.yes, 16),
	)
	return lipgloss.JoinVertical(lipgloss.Center, prompt, "", buttons)
}
