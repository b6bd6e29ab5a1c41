package mastery

// Status represents a card's position in the mastery lifecycle.
type Status string

const (
	StatusNew         Status = "new"
	StatusLearning    Status = "learning"
	StatusMastered    Status = "mastered"
	StatusNeedsReview Status = "needs-review"
)

// Trigger names the action that produced a transition.
type Trigger string

const (
	TriggerCorrect Trigger = "correct"
	TriggerMissed  Trigger = "missed"
	TriggerFlag    Trigger = "flag"
)

// StateTransition records a status change for display and logging.
type StateTransition struct {
	CardID  string
	From    Status
	To      Status
	Trigger Trigger
}

// StatusOf derives the display status of a record. A flagged card shows as
// needing review even when it is also mastered.
func StatusOf(r Record) Status {
	switch {
	case r.NeedsReview:
		return StatusNeedsReview
	case r.Mastered:
		return StatusMastered
	case r.TimesCorrect == 0 && r.TimesMissed == 0 && r.LastSeen == nil:
		return StatusNew
	default:
		return StatusLearning
	}
}

// Label returns a short human-readable label for the status.
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusLearning:
		return "Learning"
	case StatusMastered:
		return "Mastered"
	case StatusNeedsReview:
		return "Needs review"
	default:
		return string(s)
	}
}
