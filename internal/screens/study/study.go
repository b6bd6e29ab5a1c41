// Package study is the flashcard study screen: one pass through a card
// list with flip, reveal, flag and self-grading.
package study

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/router"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/screens/summary"
	"github.com/abhisek/secplus/internal/session"
	"github.com/abhisek/secplus/internal/ui/layout"
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeCorrect
	noticeMissed
	noticeFlagged
	noticeWarn
)

// StudyScreen implements screen.Screen for a study session.
type StudyScreen struct {
	svc     screen.Services
	mode    Mode
	subject string

	sess     *session.Session
	statuses map[string]mastery.Status
	done     *session.Summary

	notice     string
	noticeKind noticeKind
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a study screen. Cards are loaded by Init.
func New(svc screen.Services, mode Mode) *StudyScreen {
	return &StudyScreen{
		svc:      svc,
		mode:     mode,
		statuses: make(map[string]mastery.Status),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	svc, mode := s.svc, s.mode
	return func() tea.Msg {
		ctx := context.Background()
		if mode.Kind == KindDomain && svc.Prefs != nil {
			id := mode.Domain
			if _, err := svc.Prefs.UpdateLastStudiedDomain(ctx, &id); err != nil {
				svc.Log().Warn("last studied domain not saved", zap.Int("domain", id), zap.Error(err))
			}
		}
		subject, cards := mode.Load(ctx, svc)
		return cardsLoadedMsg{Subject: subject, Cards: cards}
	}
}

func (s *StudyScreen) Title() string {
	return "Study"
}

// Loading reports whether the cards are still being read.
func (s *StudyScreen) Loading() bool {
	return s.sess == nil
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.sess == nil:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.sess.Empty():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back"},
			{Key: "Esc", Description: "Back"},
		}
	case s.sess.Face() == session.FaceFront:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "←→", Description: "Prev/Next"},
			{Key: "R", Description: "Flag"},
			{Key: "Esc", Description: "Exit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "↑", Description: "Reveal"},
			{Key: "C", Description: "Correct"},
			{Key: "X", Description: "Missed"},
			{Key: "R", Description: "Flag"},
			{Key: "Esc", Description: "Exit"},
		}
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		return s.handleLoaded(msg)

	case tea.KeyMsg:
		if s.sess == nil {
			return s, nil
		}
		if s.sess.Empty() {
			if msg.String() == "enter" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *StudyScreen) handleLoaded(msg cardsLoadedMsg) (screen.Screen, tea.Cmd) {
	s.subject = msg.Subject
	s.sess = session.New(msg.Cards, s.grader(), func(sum session.Summary) {
		s.done = &sum
	})

	if s.svc.Progress != nil {
		for id, r := range s.svc.Progress.All(context.Background()) {
			s.statuses[id] = mastery.StatusOf(r)
		}
	}

	s.svc.Log().Info("study session started",
		zap.String("session", s.sess.ID),
		zap.String("subject", s.subject),
		zap.Int("cards", s.sess.Len()))
	return s, nil
}

func (s *StudyScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	action := session.KeyAction(key)

	switch action {
	case session.ActionNone, session.ActionExit:
		return s, nil

	case session.ActionFlag:
		res, ok := s.sess.Flag(ctx)
		if ok {
			s.record(res, noticeFlagged, "⚑ Flagged for review")
		}
		return s, nil

	case session.ActionCorrect, session.ActionMissed:
		var (
			res mastery.Result
			ok  bool
		)
		if action == session.ActionCorrect {
			res, ok = s.sess.MarkCorrect(ctx)
		} else {
			res, ok = s.sess.MarkMissed(ctx)
		}
		if !ok {
			s.setNotice(noticeWarn, "Flip the card before grading it")
			return s, nil
		}

		if action == session.ActionCorrect {
			text := "✓ Correct"
			if res.Transition != nil && res.Transition.To == mastery.StatusMastered {
				text += " · Mastered!"
			}
			s.record(res, noticeCorrect, text)
		} else {
			s.record(res, noticeMissed, "✗ Missed · added to review")
		}
		s.sess.Advance()

	default:
		s.setNotice(noticeNone, "")
		s.sess.Apply(action)
	}

	if s.done != nil {
		sum := *s.done
		s.done = nil
		s.svc.Log().Info("study session complete",
			zap.String("session", sum.SessionID),
			zap.Int("correct", sum.Tally.Correct),
			zap.Int("missed", sum.Tally.Missed),
			zap.Int("flagged", sum.Tally.Flagged),
			zap.Duration("duration", sum.Duration))
		next := summary.New(sum, s.subject)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *StudyScreen) record(res mastery.Result, kind noticeKind, text string) {
	s.statuses[res.Record.CardID] = mastery.StatusOf(res.Record)
	if !res.Saved {
		s.setNotice(noticeWarn, "Progress could not be saved")
		return
	}
	s.setNotice(kind, text)
}

func (s *StudyScreen) setNotice(kind noticeKind, text string) {
	s.noticeKind, s.notice = kind, text
}

func (s *StudyScreen) grader() session.Grader {
	if s.svc.Progress == nil {
		return nil
	}
	return s.svc.Progress
}
