package study

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/secplus/internal/router"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/screen/screentest"
	"github.com/abhisek/secplus/internal/screens/summary"
	"github.com/abhisek/secplus/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func loaded(t *testing.T, svc screen.Services, mode Mode) *StudyScreen {
	t.Helper()
	s := New(svc, mode)
	msg := s.Init()()
	s.Update(msg)
	if s.Loading() {
		t.Fatal("screen still loading after cardsLoadedMsg")
	}
	return s
}

func TestStudyScreen_LoadingState(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := New(svc, ForDomain(4))

	if !strings.Contains(s.View(80, 20), "Loading flashcards") {
		t.Error("expected loading indicator before cards arrive")
	}
	if hints := s.KeyHints(); len(hints) != 1 {
		t.Errorf("loading KeyHints = %d, want 1", len(hints))
	}
}

func TestStudyScreen_DomainRecordsLastStudied(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, ForDomain(4))

	if s.sess.Len() != 4 {
		t.Errorf("cards = %d, want 4", s.sess.Len())
	}
	if s.subject != "Domain 4: Security Operations" {
		t.Errorf("subject = %q", s.subject)
	}

	last := svc.Prefs.Get(context.Background()).LastStudiedDomain
	if last == nil || *last != 4 {
		t.Errorf("LastStudiedDomain = %v, want 4", last)
	}
}

func TestStudyScreen_FlipAndGradeCorrect(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, ForDomain(4))
	first, _ := s.sess.Current()

	s.Update(keyPress(' '))
	if s.sess.Face() != session.FaceBack {
		t.Fatal("space should flip to the back")
	}
	if !strings.Contains(s.View(100, 30), "Answer") {
		t.Error("back face should show the first answer tier")
	}

	s.Update(keyPress('c'))
	if s.sess.Index() != 1 {
		t.Errorf("grading should advance, index = %d", s.sess.Index())
	}
	if s.sess.Face() != session.FaceFront {
		t.Error("next card should start on the front")
	}

	r := svc.Progress.GetOrDefault(context.Background(), first.ID)
	if r.TimesCorrect != 1 {
		t.Errorf("TimesCorrect = %d, want 1", r.TimesCorrect)
	}
	if !strings.Contains(s.View(100, 30), "Correct") {
		t.Error("expected correct notice")
	}
}

func TestStudyScreen_GradeOnFrontIgnored(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, ForDomain(4))

	s.Update(keyPress('x'))
	if s.sess.Index() != 0 {
		t.Error("grading on the front must not advance")
	}
	if got := svc.Progress.Stats(context.Background()).Studied; got != 0 {
		t.Errorf("Studied = %d, want 0", got)
	}
	if !strings.Contains(s.View(100, 30), "Flip the card") {
		t.Error("expected flip reminder")
	}
}

func TestStudyScreen_MissedFlagsCard(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, ForDomain(2))
	first, _ := s.sess.Current()

	s.Update(keyPress(' '))
	s.Update(keyPress('x'))

	r := svc.Progress.GetOrDefault(context.Background(), first.ID)
	if r.TimesMissed != 1 || !r.NeedsReview {
		t.Errorf("after miss: %+v", r)
	}
}

func TestStudyScreen_FlagKeepsPosition(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, ForDomain(1))
	first, _ := s.sess.Current()

	s.Update(keyPress('R'))
	if s.sess.Index() != 0 || s.sess.Face() != session.FaceFront {
		t.Error("flag must not change the view state")
	}
	if !svc.Progress.GetOrDefault(context.Background(), first.ID).NeedsReview {
		t.Error("expected card flagged for review")
	}
}

func TestStudyScreen_AdvancePastLastShowsSummary(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, ForDomain(5))

	var cmd tea.Cmd
	for i := 0; i < s.sess.Len(); i++ {
		_, cmd = s.Update(specialKey(tea.KeyRight))
	}
	if cmd == nil {
		t.Fatal("expected a command after advancing past the last card")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
}

func TestStudyScreen_AllDomainsPriorityOrder(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, AllDomains())

	if s.sess.Len() != 20 {
		t.Errorf("cards = %d, want 20", s.sess.Len())
	}
	card, _ := s.sess.Current()
	if card.Domain != 4 {
		t.Errorf("first card domain = %d, want 4", card.Domain)
	}
	if svc.Prefs.Get(context.Background()).LastStudiedDomain != nil {
		t.Error("studying all domains must not set the last studied domain")
	}
}

func TestStudyScreen_FlaggedEmpty(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, Flagged())

	if !s.sess.Empty() {
		t.Fatal("expected no flagged cards")
	}
	if !strings.Contains(s.View(80, 20), "Nothing is flagged") {
		t.Error("expected empty-state message")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected enter to go back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestStudyScreen_FlaggedOnlyReviewCards(t *testing.T) {
	svc, _ := screentest.Services(t)
	ctx := context.Background()
	svc.Progress.MarkMissed(ctx, "d2-sqli")
	svc.Progress.MarkForReview(ctx, "d5-ale")

	s := loaded(t, svc, Flagged())
	if s.sess.Len() != 2 {
		t.Fatalf("flagged cards = %d, want 2", s.sess.Len())
	}
	card, _ := s.sess.Current()
	if card.ID != "d5-ale" {
		t.Errorf("first flagged card = %q, want d5-ale (priority order)", card.ID)
	}
}

func TestStudyScreen_KeyHintsFollowFace(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := loaded(t, svc, ForDomain(3))

	front := len(s.KeyHints())
	s.Update(keyPress(' '))
	back := len(s.KeyHints())
	if back <= front {
		t.Errorf("back hints (%d) should list grading keys beyond front hints (%d)", back, front)
	}
}
