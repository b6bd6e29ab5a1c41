// Package session holds the view state of one pass through a list of
// flashcards: which card is showing, which face, and how much of the
// answer is revealed.
package session

import (
	"context"

	"github.com/abhisek/secplus/internal/mastery"
)

// Face is the side of the card currently shown.
type Face int

const (
	FaceFront Face = iota
	FaceBack
)

func (f Face) String() string {
	if f == FaceBack {
		return "back"
	}
	return "front"
}

// Flagger marks a card for later review.
type Flagger interface {
	MarkForReview(ctx context.Context, cardID string) mastery.Result
}

// Grader records self-graded answers. *mastery.Service satisfies it.
type Grader interface {
	Flagger
	MarkCorrect(ctx context.Context, cardID string) mastery.Result
	MarkMissed(ctx context.Context, cardID string) mastery.Result
}

// Tally counts the actions taken during a session.
type Tally struct {
	Correct int
	Missed  int
	Flagged int
}

// Graded returns the number of self-graded answers.
func (t Tally) Graded() int { return t.Correct + t.Missed }

// Accuracy returns Correct / Graded, or 0 before any grading.
func (t Tally) Accuracy() float64 {
	if t.Graded() == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Graded())
}
