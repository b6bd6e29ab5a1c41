package settings

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/prefs"
	"github.com/abhisek/secplus/internal/screen/screentest"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSettingsScreen_ThemeToggleSavesAndNotifies(t *testing.T) {
	svc, _ := screentest.Services(t)

	var got []prefs.Preferences
	svc.Prefs.Subscribe(func(p prefs.Preferences) { got = append(got, p) })

	s := New(svc)
	s.Update(specialKey(tea.KeyRight))

	if stored := svc.Prefs.Get(context.Background()).Theme; stored != prefs.ThemeLight {
		t.Errorf("stored theme = %q, want light", stored)
	}
	if len(got) != 1 || got[0].Theme != prefs.ThemeLight {
		t.Errorf("listener calls = %+v", got)
	}
	if !strings.Contains(s.View(100, 30), "Saved") {
		t.Error("expected saved status")
	}
}

func TestSettingsScreen_SizeCycles(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := New(svc)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyRight))
	if got := svc.Prefs.Get(context.Background()).UISize; got != prefs.UISizeLarge {
		t.Errorf("size = %q, want large", got)
	}

	s.Update(specialKey(tea.KeyRight))
	if got := svc.Prefs.Get(context.Background()).UISize; got != prefs.UISizeCozy {
		t.Errorf("size should wrap to cozy, got %q", got)
	}
}

func TestSettingsScreen_WriteFailure(t *testing.T) {
	svc, mem := screentest.Services(t)
	mem.PutErr = context.DeadlineExceeded

	s := New(svc)
	s.Update(specialKey(tea.KeyEnter))

	if s.prefs.Theme != prefs.ThemeDark {
		t.Error("failed save must not change the shown theme")
	}
	if !strings.Contains(s.View(100, 30), "could not be saved") {
		t.Error("expected failure status")
	}
}

func TestSettingsScreen_ClearAllConfirm(t *testing.T) {
	svc, _ := screentest.Services(t)
	ctx := context.Background()
	svc.Progress.MarkCorrect(ctx, "d1-pki")

	s := New(svc)
	s.Update(specialKey(tea.KeyUp))
	if s.cursor != rowClear {
		t.Fatalf("cursor = %d, want clear row", s.cursor)
	}

	s.Update(specialKey(tea.KeyEnter))
	if !s.CapturesEsc() {
		t.Fatal("confirmation should be open")
	}

	// Esc cancels without clearing.
	s.Update(specialKey(tea.KeyEscape))
	if s.CapturesEsc() {
		t.Error("esc should close the confirmation")
	}
	if svc.Progress.Stats(ctx).Studied != 1 {
		t.Error("cancel must keep progress")
	}

	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(keyPress('y'))
	if svc.Progress.Stats(ctx) != (mastery.Stats{}) {
		t.Error("expected progress cleared")
	}
	if cmd == nil {
		t.Fatal("expected stats reload after clearing")
	}
	s.Update(cmd())
	if s.stats.Studied != 0 || s.total != 20 {
		t.Errorf("stats = %+v total = %d", s.stats, s.total)
	}
}

func TestSettingsScreen_StatsShown(t *testing.T) {
	svc, _ := screentest.Services(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		svc.Progress.MarkCorrect(ctx, "d4-mfa")
	}

	s := New(svc)
	s.Update(s.Init()())

	view := s.View(100, 30)
	if !strings.Contains(view, "1 of 20") {
		t.Error("expected studied count")
	}
}

func TestStep(t *testing.T) {
	opts := []string{"a", "b", "c"}
	if step(opts, "a", -1) != "c" {
		t.Error("step should wrap backwards")
	}
	if step(opts, "c", 1) != "a" {
		t.Error("step should wrap forwards")
	}
	if step(opts, "zz", 1) != "b" {
		t.Error("unknown value should step from the first option")
	}
}
