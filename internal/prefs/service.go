package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/secplus/internal/schema"
)

// Storage is the JSON key-value store preferences persist through.
type Storage interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Set(ctx context.Context, key string, value any) bool
}

// Service reads and updates preferences. Each update is a whole-object
// read-modify-write followed by a notification.
type Service struct {
	storage  Storage
	notifier *Notifier
	logger   *zap.Logger
}

// NewService creates a preferences service. A nil notifier gets a fresh
// one; a nil logger discards output.
func NewService(storage Storage, notifier *Notifier, logger *zap.Logger) *Service {
	if notifier == nil {
		notifier = NewNotifier()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage:  storage,
		notifier: notifier,
		logger:   logger.Named("prefs"),
	}
}

// Notifier returns the registry this service notifies after writes.
func (s *Service) Notifier() *Notifier { return s.notifier }

// Subscribe is shorthand for s.Notifier().Subscribe.
func (s *Service) Subscribe(fn Listener) func() { return s.notifier.Subscribe(fn) }

// Get returns the stored preferences with defaults for missing fields.
// Anything invalid yields Defaults().
func (s *Service) Get(ctx context.Context) Preferences {
	raw, ok := s.storage.Get(ctx, PreferencesKey)
	if !ok {
		return Defaults()
	}

	p := Defaults()
	if err := schema.Decode(PreferencesSchema, raw, &p); err != nil {
		s.logger.Warn("discarding invalid preferences", zap.Error(err))
		return Defaults()
	}
	return p
}

// UpdateTheme stores a new theme.
func (s *Service) UpdateTheme(ctx context.Context, t Theme) (Preferences, error) {
	if _, err := ParseTheme(string(t)); err != nil {
		return Preferences{}, err
	}
	return s.update(ctx, func(p *Preferences) { p.Theme = t })
}

// UpdateUISize stores a new layout density.
func (s *Service) UpdateUISize(ctx context.Context, u UISize) (Preferences, error) {
	if _, err := ParseUISize(string(u)); err != nil {
		return Preferences{}, err
	}
	return s.update(ctx, func(p *Preferences) { p.UISize = u })
}

// UpdateLastStudiedDomain stores the last studied domain; nil clears it.
func (s *Service) UpdateLastStudiedDomain(ctx context.Context, domain *int) (Preferences, error) {
	if domain != nil && (*domain < MinDomain || *domain > MaxDomain) {
		return Preferences{}, fmt.Errorf("%w: %d", ErrInvalidDomain, *domain)
	}
	return s.update(ctx, func(p *Preferences) {
		if domain == nil {
			p.LastStudiedDomain = nil
			return
		}
		d := *domain
		p.LastStudiedDomain = &d
	})
}

func (s *Service) update(ctx context.Context, mutate func(*Preferences)) (Preferences, error) {
	p := s.Get(ctx)
	mutate(&p)

	if !s.storage.Set(ctx, PreferencesKey, p) {
		return p, ErrNotSaved
	}
	s.notifier.Notify(p)
	return p, nil
}
