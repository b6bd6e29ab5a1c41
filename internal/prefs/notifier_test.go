package prefs

import "testing"

func TestNotifier_Unsubscribe(t *testing.T) {
	n := NewNotifier()
	var a, b int
	unsubA := n.Subscribe(func(Preferences) { a++ })
	n.Subscribe(func(Preferences) { b++ })

	n.Notify(Defaults())
	unsubA()
	unsubA()
	n.Notify(Defaults())

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1 and 2", a, b)
	}
	if n.Len() != 1 {
		t.Errorf("Len = %d, want 1", n.Len())
	}
}

func TestNotifier_LateSubscriberMissesEarlierChange(t *testing.T) {
	n := NewNotifier()
	n.Notify(Defaults())

	calls := 0
	n.Subscribe(func(Preferences) { calls++ })
	if calls != 0 {
		t.Errorf("late subscriber called %d times", calls)
	}
}

func TestNotifier_SubscribeDuringNotify(t *testing.T) {
	n := NewNotifier()
	inner := 0
	n.Subscribe(func(Preferences) {
		n.Subscribe(func(Preferences) { inner++ })
	})

	n.Notify(Defaults())
	if inner != 0 {
		t.Errorf("listener added during notify was called %d times", inner)
	}
	n.Notify(Defaults())
	if inner != 1 {
		t.Errorf("inner = %d, want 1", inner)
	}
}

func TestNotifier_Order(t *testing.T) {
	n := NewNotifier()
	var seq []string
	n.Subscribe(func(Preferences) { seq = append(seq, "first") })
	n.Subscribe(func(Preferences) { seq = append(seq, "second") })
	n.Notify(Defaults())

	if len(seq) != 2 || seq[0] != "first" || seq[1] != "second" {
		t.Errorf("seq = %v", seq)
	}
}
