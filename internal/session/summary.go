package session

import "time"

// Summary describes a session at the moment it completed.
type Summary struct {
	SessionID string
	Cards     int
	Duration  time.Duration
	Tally     Tally
}

// Summary builds a Summary from the current state.
func (s *Session) Summary() Summary {
	return Summary{
		SessionID: s.ID,
		Cards:     len(s.cards),
		Duration:  s.now().Sub(s.start),
		Tally:     s.tally,
	}
}
