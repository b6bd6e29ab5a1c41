package mastery

import (
	"testing"
	"time"
)

func TestStatusOf(t *testing.T) {
	seen := time.Now()

	tests := []struct {
		name string
		rec  Record
		want Status
	}{
		{"zero record", ZeroRecord("a"), StatusNew},
		{"seen only", Record{LastSeen: &seen}, StatusLearning},
		{"some correct", Record{TimesCorrect: 2, LastSeen: &seen}, StatusLearning},
		{"mastered", Record{TimesCorrect: 3, Mastered: true}, StatusMastered},
		{"flagged", Record{NeedsReview: true}, StatusNeedsReview},
		{"flagged and mastered", Record{TimesCorrect: 3, Mastered: true, NeedsReview: true}, StatusNeedsReview},
	}

	for _, tt := range tests {
		if got := StatusOf(tt.rec); got != tt.want {
			t.Errorf("%s: StatusOf = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestApplyCorrect_PromotionAtThreshold(t *testing.T) {
	r := ZeroRecord("a")
	now := time.Now()

	for i := 1; i <= MasteryThreshold; i++ {
		r = applyCorrect(r, now)
		if i < MasteryThreshold && r.Mastered {
			t.Fatalf("mastered after %d correct", i)
		}
	}
	if !r.Mastered {
		t.Fatal("expected mastered at threshold")
	}
	if r.Mastered && r.NeedsReview {
		t.Error("mastered and needsReview must not both be set by applyCorrect")
	}
}

func TestApplyMissed_NeverLeavesMastered(t *testing.T) {
	r := Record{TimesCorrect: 10, Mastered: true}
	r = applyMissed(r, time.Now())
	if r.Mastered || !r.NeedsReview {
		t.Errorf("after miss: mastered=%v needsReview=%v", r.Mastered, r.NeedsReview)
	}
	if r.TimesCorrect != 10 {
		t.Errorf("TimesCorrect = %d, want 10", r.TimesCorrect)
	}
}

func TestStatusLabel(t *testing.T) {
	if StatusNeedsReview.Label() != "Needs review" {
		t.Errorf("Label = %q", StatusNeedsReview.Label())
	}
	if Status("odd").Label() != "odd" {
		t.Error("unknown status should label as itself")
	}
}
