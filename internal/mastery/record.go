package mastery

import "time"

// MasteryThreshold is the number of correct answers that marks a card mastered.
const MasteryThreshold = 3

// Record is the persisted study progress for one card.
type Record struct {
	CardID       string     `json:"cardId"`
	TimesCorrect int        `json:"timesCorrect"`
	TimesMissed  int        `json:"timesMissed"`
	LastSeen     *time.Time `json:"lastSeen"`
	Mastered     bool       `json:"mastered"`
	NeedsReview  bool       `json:"needsReview"`
}

// ZeroRecord returns the record a card has before any interaction.
func ZeroRecord(cardID string) Record {
	return Record{CardID: cardID}
}

// applyCorrect counts a correct answer, then promotes to mastered once the
// threshold is reached.
func applyCorrect(r Record, now time.Time) Record {
	r.TimesCorrect++
	r.LastSeen = &now
	r.NeedsReview = false

	if r.TimesCorrect >= MasteryThreshold && !r.Mastered {
		r.Mastered = true
		r.NeedsReview = false
	}
	return r
}

// applyMissed counts a miss. Mastery is always revoked; it can only be
// regained through applyCorrect.
func applyMissed(r Record, now time.Time) Record {
	r.TimesMissed++
	r.LastSeen = &now
	r.NeedsReview = true
	r.Mastered = false
	return r
}

// applyFlag marks the card for review. Counters and mastery are untouched.
func applyFlag(r Record, now time.Time) Record {
	r.NeedsReview = true
	r.LastSeen = &now
	return r
}
