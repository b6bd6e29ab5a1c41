package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Continue", Disabled: true},
		{Label: "Study"},
		{Label: "Reference"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("up onto disabled item moved selection to %d", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 2 {
		t.Errorf("down: selection = %d, want 2", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})

	m.Update(specialKey(tea.KeyEnter))
	if !ran {
		t.Error("expected action to run on enter")
	}
}

func TestMenuSetLabel(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}})
	m.SetLabel(0, "b")
	m.SetLabel(5, "ignored")
	if !strings.Contains(m.View(), "b") {
		t.Errorf("view missing new label: %q", m.View())
	}
}

func TestConfirmDefaultsToNo(t *testing.T) {
	c := NewConfirm("Clear?")
	c = c.Update(specialKey(tea.KeyEnter))
	if !c.Answered() || c.Accepted() {
		t.Errorf("enter without moving: answered=%v accepted=%v", c.Answered(), c.Accepted())
	}
}

func TestConfirmToggleAndAccept(t *testing.T) {
	c := NewConfirm("Clear?")
	c = c.Update(specialKey(tea.KeyLeft))
	c = c.Update(specialKey(tea.KeyEnter))
	if !c.Accepted() {
		t.Error("expected accept after toggling to yes")
	}

	c = NewConfirm("Clear?").Update(keyPress('y'))
	if !c.Accepted() {
		t.Error("expected y to accept")
	}

	c = NewConfirm("Clear?").Update(specialKey(tea.KeyEscape))
	if !c.Answered() || c.Accepted() {
		t.Error("expected esc to decline")
	}
}

func TestRatio(t *testing.T) {
	if Ratio(1, 0) != 0 {
		t.Error("Ratio with zero total should be 0")
	}
	if Ratio(1, 4) != 0.25 {
		t.Errorf("Ratio(1,4) = %v", Ratio(1, 4))
	}
}

func TestProgressBarClamps(t *testing.T) {
	bar := NewProgressBar("", 1.5, true, 20).View()
	if !strings.Contains(bar, "150%") {
		t.Errorf("expected raw percent label, got %q", bar)
	}
	if NewProgressBar("x", -1, false, 10).View() == "" {
		t.Error("expected a rendered bar for negative percent")
	}
}
