package study

import (
	"context"
	"fmt"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/screen"
)

// Kind selects which cards a study session covers.
type Kind int

const (
	KindDomain Kind = iota
	KindAll
	KindFlagged
)

// Mode is a card selection for a study session.
type Mode struct {
	Kind   Kind
	Domain int
}

// ForDomain studies one domain.
func ForDomain(id int) Mode { return Mode{Kind: KindDomain, Domain: id} }

// AllDomains studies every domain in priority order.
func AllDomains() Mode { return Mode{Kind: KindAll} }

// Flagged studies the cards marked for review, across all domains.
func Flagged() Mode { return Mode{Kind: KindFlagged} }

// Load resolves the mode to its subject label and cards.
func (m Mode) Load(ctx context.Context, svc screen.Services) (string, []content.Flashcard) {
	switch m.Kind {
	case KindAll:
		return "All domains", svc.Catalog.AllFlashcards(ctx)

	case KindFlagged:
		if svc.Progress == nil {
			return "Flagged for review", nil
		}
		flagged := svc.Progress.NeedsReview(ctx)
		var cards []content.Flashcard
		for _, card := range svc.Catalog.AllFlashcards(ctx) {
			if flagged[card.ID] {
				cards = append(cards, card)
			}
		}
		return "Flagged for review", cards

	default:
		subject := fmt.Sprintf("Domain %d", m.Domain)
		if d, ok := svc.Catalog.Domain(ctx, m.Domain); ok {
			subject = content.DomainLabel(d)
		}
		return subject, svc.Catalog.FlashcardsByDomain(ctx, m.Domain)
	}
}

// emptyMessage explains why the mode produced no cards.
func (m Mode) emptyMessage() string {
	switch m.Kind {
	case KindFlagged:
		return "Nothing is flagged for review.\nPress R on a card, or grade it missed, to add it here."
	case KindAll:
		return "No flashcards could be loaded."
	default:
		return "No flashcards are available for this domain."
	}
}
