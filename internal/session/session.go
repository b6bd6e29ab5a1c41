package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/mastery"
)

// Session is the view state over an ordered card list. It is not persisted;
// only flag and grade actions reach the progress store.
type Session struct {
	// ID identifies the session in logs.
	ID string

	cards      []content.Flashcard
	index      int
	face       Face
	disclosure int

	progress   Grader
	onComplete func(Summary)

	start time.Time
	now   func() time.Time
	tally Tally

	// LastTransition is the status change caused by the most recent flag or
	// grade action, nil when the action changed nothing.
	LastTransition *mastery.StateTransition
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used for the session duration.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a session on the first card, front face, disclosure level 1.
// progress may be nil, in which case flag and grade actions are no-ops.
// onComplete fires each time Advance is called on the last card.
func New(cards []content.Flashcard, progress Grader, onComplete func(Summary), opts ...Option) *Session {
	s := &Session{
		ID:         uuid.New().String(),
		cards:      cards,
		face:       FaceFront,
		disclosure: 1,
		progress:   progress,
		onComplete: onComplete,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.start = s.now()
	return s
}

// Len returns the number of cards in the session.
func (s *Session) Len() int { return len(s.cards) }

// Empty reports whether the session has no cards.
func (s *Session) Empty() bool { return len(s.cards) == 0 }

// Index returns the cursor position.
func (s *Session) Index() int { return s.index }

// Face returns the face currently shown.
func (s *Session) Face() Face { return s.face }

// Disclosure returns how many answer tiers are revealed (1..3).
func (s *Session) Disclosure() int { return s.disclosure }

// Tally returns the counts so far.
func (s *Session) Tally() Tally { return s.tally }

// Current returns the card under the cursor.
func (s *Session) Current() (content.Flashcard, bool) {
	if s.Empty() {
		return content.Flashcard{}, false
	}
	return s.cards[s.index], true
}

// IsLast reports whether the cursor is on the final card.
func (s *Session) IsLast() bool { return s.index >= len(s.cards)-1 }

// Flip toggles the face. Returning to the front collapses the answer.
func (s *Session) Flip() {
	if s.face == FaceFront {
		s.face = FaceBack
		return
	}
	s.face = FaceFront
	s.disclosure = 1
}

// Advance moves to the next card, or completes the session on the last one.
func (s *Session) Advance() {
	if s.IsLast() {
		if s.onComplete != nil {
			s.onComplete(s.Summary())
		}
		return
	}
	s.index++
	s.reset()
}

// Retreat moves to the previous card. It is a no-op on the first card.
func (s *Session) Retreat() {
	if s.index == 0 {
		return
	}
	s.index--
	s.reset()
}

// IncreaseDisclosure reveals the next answer tier, up to content.MaxDisclosure.
func (s *Session) IncreaseDisclosure() {
	if s.disclosure < content.MaxDisclosure {
		s.disclosure++
	}
}

// Flag marks the current card for review. The view state is unchanged.
func (s *Session) Flag(ctx context.Context) (mastery.Result, bool) {
	card, ok := s.Current()
	if !ok || s.progress == nil {
		return mastery.Result{}, false
	}
	res := s.progress.MarkForReview(ctx, card.ID)
	s.tally.Flagged++
	s.LastTransition = res.Transition
	return res, true
}

// MarkCorrect records a correct answer for the current card. Grading is
// only accepted while the back face is showing.
func (s *Session) MarkCorrect(ctx context.Context) (mastery.Result, bool) {
	return s.grade(ctx, true)
}

// MarkMissed records a missed answer for the current card.
func (s *Session) MarkMissed(ctx context.Context) (mastery.Result, bool) {
	return s.grade(ctx, false)
}

func (s *Session) grade(ctx context.Context, correct bool) (mastery.Result, bool) {
	card, ok := s.Current()
	if !ok || s.progress == nil || s.face != FaceBack {
		return mastery.Result{}, false
	}

	var res mastery.Result
	if correct {
		res = s.progress.MarkCorrect(ctx, card.ID)
		s.tally.Correct++
	} else {
		res = s.progress.MarkMissed(ctx, card.ID)
		s.tally.Missed++
	}
	s.LastTransition = res.Transition
	return res, true
}

func (s *Session) reset() {
	s.face = FaceFront
	s.disclosure = 1
	s.LastTransition = nil
}
