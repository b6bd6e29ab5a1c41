package session

// Action is a study command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionFlip
	ActionRetreat
	ActionAdvance
	ActionDisclose
	ActionFlag
	ActionCorrect
	ActionMissed
	ActionExit
)

var actionNames = map[Action]string{
	ActionNone:     "none",
	ActionFlip:     "flip",
	ActionRetreat:  "previous",
	ActionAdvance:  "next",
	ActionDisclose: "reveal",
	ActionFlag:     "flag",
	ActionCorrect:  "correct",
	ActionMissed:   "missed",
	ActionExit:     "exit",
}

func (a Action) String() string { return actionNames[a] }

// KeyAction maps a key string, as produced by bubbletea's KeyMsg.String(),
// to an action. Modified keys such as "ctrl+r" or "alt+r" map to nothing.
func KeyAction(key string) Action {
	switch key {
	case "space", " ":
		return ActionFlip
	case "left":
		return ActionRetreat
	case "right":
		return ActionAdvance
	case "up":
		return ActionDisclose
	case "r", "R":
		return ActionFlag
	case "c":
		return ActionCorrect
	case "x":
		return ActionMissed
	case "esc":
		return ActionExit
	}
	return ActionNone
}

// Apply performs a view-state action. Flag, grade and exit actions need a
// context or a host decision, so Apply reports them as unhandled.
func (s *Session) Apply(a Action) bool {
	switch a {
	case ActionFlip:
		s.Flip()
	case ActionRetreat:
		s.Retreat()
	case ActionAdvance:
		s.Advance()
	case ActionDisclose:
		s.IncreaseDisclosure()
	default:
		return false
	}
	return true
}
