package reference

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/secplus/internal/screen/screentest"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func loaded(t *testing.T) *ReferenceScreen {
	t.Helper()
	svc, _ := screentest.Services(t)
	r := New(svc)

	ctx := t.Context()
	r.Update(referenceLoadedMsg{
		Domains: svc.Catalog.Domains(ctx),
		Cards:   svc.Catalog.AllFlashcards(ctx),
	})
	return r
}

func typeText(r *ReferenceScreen, s string) {
	for _, c := range s {
		r.Update(keyPress(c))
	}
}

func TestReferenceScreen_LoadingState(t *testing.T) {
	svc, _ := screentest.Services(t)
	r := New(svc)
	if !strings.Contains(r.View(80, 20), "Loading reference") {
		t.Error("expected loading indicator")
	}
}

func TestReferenceScreen_ListsEverything(t *testing.T) {
	r := loaded(t)

	if r.matches != 20 {
		t.Errorf("matches = %d, want 20", r.matches)
	}
	if r.rows[r.cursor].kind != rowCard {
		t.Error("cursor should start on a card row")
	}
	if r.rows[0].label != "Domain 1: General Security Concepts" {
		t.Errorf("first group = %q, want domain 1", r.rows[0].label)
	}
}

func TestReferenceScreen_Search(t *testing.T) {
	r := loaded(t)

	typeText(r, "SQL")
	if r.query != "SQL" {
		t.Fatalf("query = %q", r.query)
	}
	if r.matches != 1 {
		t.Errorf("matches = %d, want 1", r.matches)
	}
	if r.rows[r.cursor].card.ID != "d2-sqli" {
		t.Errorf("cursor card = %q", r.rows[r.cursor].card.ID)
	}

	typeText(r, "zzz")
	if r.matches != 0 {
		t.Errorf("matches = %d, want 0", r.matches)
	}
	if !strings.Contains(r.View(80, 20), "No cards match") {
		t.Error("expected empty search message")
	}
}

func TestReferenceScreen_DomainFilterCycles(t *testing.T) {
	r := loaded(t)

	r.Update(specialKey(tea.KeyTab))
	if f := r.Filter(); f.Domain != 1 {
		t.Errorf("filter domain = %d, want 1", f.Domain)
	}
	if r.matches != 4 {
		t.Errorf("matches = %d, want 4", r.matches)
	}

	for i := 0; i < 5; i++ {
		r.Update(specialKey(tea.KeyTab))
	}
	if f := r.Filter(); f.Domain != 0 {
		t.Errorf("filter should wrap to all domains, got %d", f.Domain)
	}
}

func TestReferenceScreen_NavigateAndExpand(t *testing.T) {
	r := loaded(t)
	first := r.cursor

	r.Update(specialKey(tea.KeyUp))
	if r.cursor != first {
		t.Error("up from the first card should stay put")
	}

	r.Update(specialKey(tea.KeyDown))
	if r.cursor == first || r.rows[r.cursor].kind != rowCard {
		t.Errorf("down should move to the next card, cursor = %d", r.cursor)
	}

	r.Update(specialKey(tea.KeyEnter))
	card := r.rows[r.cursor].card
	if r.expanded != card.ID {
		t.Fatalf("expanded = %q, want %q", r.expanded, card.ID)
	}
	if !strings.Contains(r.View(100, 40), "Related:") && len(card.Metadata.RelatedTerms) > 0 {
		t.Error("expanded card should list related terms")
	}

	r.Update(specialKey(tea.KeyEnter))
	if r.expanded != "" {
		t.Error("enter again should collapse")
	}
}

func TestReferenceScreen_ScrollKeepsCursorVisible(t *testing.T) {
	r := loaded(t)
	for i := 0; i < 19; i++ {
		r.Update(specialKey(tea.KeyDown))
	}
	if r.rows[r.cursor].card.Domain != 5 {
		t.Fatalf("cursor should reach the last domain, got domain %d", r.rows[r.cursor].card.Domain)
	}

	view := r.View(80, 20)
	if !strings.Contains(view, r.rows[r.cursor].card.Front) {
		t.Error("cursor card should be visible after scrolling")
	}
	if r.scrollOffset == 0 {
		t.Error("expected the list to scroll")
	}
}
