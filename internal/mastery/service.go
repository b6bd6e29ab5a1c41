package mastery

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/secplus/internal/schema"
)

// ProgressKey is the storage key holding the whole progress collection.
const ProgressKey = "secplus_progress"

// Storage is the JSON key-value store the service persists through.
// kv.Adapter satisfies it.
type Storage interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Set(ctx context.Context, key string, value any) bool
	Remove(ctx context.Context, key string) bool
}

// Result is the outcome of a progress mutation.
type Result struct {
	Record Record

	// Transition is set when the card's status changed, nil otherwise.
	Transition *StateTransition

	// Saved reports whether the updated collection reached storage.
	Saved bool
}

// Stats summarizes the progress collection.
type Stats struct {
	Studied     int
	Mastered    int
	NeedsReview int
}

// Service records study outcomes and applies the mastery rules. Every
// mutation reads the whole collection, changes one record and writes the
// whole collection back.
type Service struct {
	storage Storage
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for validation diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for lastSeen.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a progress service over storage.
func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("progress")
	return s
}

// All returns a fresh copy of every stored record. A missing or corrupt
// collection yields an empty map.
func (s *Service) All(ctx context.Context) map[string]Record {
	raw, ok := s.storage.Get(ctx, ProgressKey)
	if !ok {
		return make(map[string]Record)
	}

	all := make(map[string]Record)
	if err := schema.Decode(ProgressSchema, raw, &all); err != nil {
		s.logger.Warn("discarding invalid progress collection", zap.Error(err))
		return make(map[string]Record)
	}
	return all
}

// Get returns the stored record for cardID.
func (s *Service) Get(ctx context.Context, cardID string) (Record, bool) {
	r, ok := s.All(ctx)[cardID]
	return r, ok
}

// GetOrDefault returns the stored record for cardID, or the zero record if
// the card has never been studied.
func (s *Service) GetOrDefault(ctx context.Context, cardID string) Record {
	if r, ok := s.Get(ctx, cardID); ok {
		return r
	}
	return ZeroRecord(cardID)
}

// MarkCorrect records a correct answer and promotes the card to mastered
// once it has MasteryThreshold correct answers.
func (s *Service) MarkCorrect(ctx context.Context, cardID string) Result {
	return s.update(ctx, cardID, TriggerCorrect, applyCorrect)
}

// MarkMissed records a miss, flags the card and revokes mastery.
func (s *Service) MarkMissed(ctx context.Context, cardID string) Result {
	return s.update(ctx, cardID, TriggerMissed, applyMissed)
}

// MarkForReview flags the card without touching counters or mastery.
func (s *Service) MarkForReview(ctx context.Context, cardID string) Result {
	return s.update(ctx, cardID, TriggerFlag, applyFlag)
}

// ClearAll deletes the whole progress collection.
func (s *Service) ClearAll(ctx context.Context) bool {
	ok := s.storage.Remove(ctx, ProgressKey)
	if ok {
		s.logger.Info("progress cleared")
	}
	return ok
}

// Stats counts studied, mastered and flagged cards.
func (s *Service) Stats(ctx context.Context) Stats {
	var st Stats
	for _, r := range s.All(ctx) {
		st.Studied++
		if r.Mastered {
			st.Mastered++
		}
		if r.NeedsReview {
			st.NeedsReview++
		}
	}
	return st
}

// NeedsReview returns the set of card ids flagged for review.
func (s *Service) NeedsReview(ctx context.Context) map[string]bool {
	flagged := make(map[string]bool)
	for id, r := range s.All(ctx) {
		if r.NeedsReview {
			flagged[id] = true
		}
	}
	return flagged
}

func (s *Service) update(ctx context.Context, cardID string, trigger Trigger, apply func(Record, time.Time) Record) Result {
	all := s.All(ctx)

	before, ok := all[cardID]
	if !ok {
		before = ZeroRecord(cardID)
	}
	before.CardID = cardID

	after := apply(before, s.now().UTC())
	all[cardID] = after

	res := Result{
		Record: after,
		Saved:  s.storage.Set(ctx, ProgressKey, all),
	}

	if from, to := StatusOf(before), StatusOf(after); from != to {
		res.Transition = &StateTransition{
			CardID:  cardID,
			From:    from,
			To:      to,
			Trigger: trigger,
		}
		s.logger.Debug("status changed",
			zap.String("card", cardID),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.String("trigger", string(trigger)))
	}
	return res
}
