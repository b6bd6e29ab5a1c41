package content

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// PriorityOrder is the domain order used when studying all domains.
var PriorityOrder = []int{4, 5, 2, 3, 1}

// Catalog serves validated content. Domains and each domain's cards are
// loaded at most once per successful read; failed loads are retried on the
// next call.
type Catalog struct {
	src    Source
	logger *zap.Logger

	mu      sync.Mutex
	domains []Domain
	loaded  bool
	cards   map[int][]Flashcard
}

// NewCatalog creates a catalog over src.
func NewCatalog(src Source, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		src:    src,
		logger: logger.Named("content"),
		cards:  make(map[int][]Flashcard),
	}
}

// Domains returns a copy of every domain in document order. A missing or
// invalid catalog yields nil. Nested slices are shared with the cache.
func (c *Catalog) Domains(ctx context.Context) []Domain {
	if ctx.Err() != nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return slices.Clone(c.domains)
	}

	raw, err := c.src.ReadDomains()
	if err != nil {
		c.logger.Error("domain catalog unavailable", zap.Error(err))
		return nil
	}
	domains, err := decodeList[Domain](DomainsSchema, raw)
	if err != nil {
		c.logger.Error("domain catalog dropped", zap.Error(err))
		return nil
	}

	c.domains = domains
	c.loaded = true
	return slices.Clone(domains)
}

// Domain returns the domain with the given id.
func (c *Catalog) Domain(ctx context.Context, id int) (Domain, bool) {
	for _, d := range c.Domains(ctx) {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}

// FlashcardsByDomain returns a copy of one domain's cards. A failed load
// yields nil for that domain only. Nested slices are shared with the cache.
func (c *Catalog) FlashcardsByDomain(ctx context.Context, id int) []Flashcard {
	if ctx.Err() != nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cards, ok := c.cards[id]; ok {
		return slices.Clone(cards)
	}

	log := c.logger.With(zap.Int("domain", id))
	raw, err := c.src.ReadFlashcards(id)
	if err != nil {
		log.Error("flashcards unavailable", zap.Error(err))
		return nil
	}
	cards, err := decodeList[Flashcard](FlashcardsSchema, raw)
	if err != nil {
		log.Error("flashcards dropped", zap.Error(err))
		return nil
	}

	c.cards[id] = cards
	log.Debug("flashcards loaded", zap.Int("count", len(cards)))
	return slices.Clone(cards)
}

// AllFlashcards concatenates every domain's cards in PriorityOrder.
func (c *Catalog) AllFlashcards(ctx context.Context) []Flashcard {
	var all []Flashcard
	for _, id := range PriorityOrder {
		all = append(all, c.FlashcardsByDomain(ctx, id)...)
	}
	return all
}

// FlashcardsBySection returns the cards of one section within a domain.
func (c *Catalog) FlashcardsBySection(ctx context.Context, domainID int, section string) []Flashcard {
	var out []Flashcard
	for _, card := range c.FlashcardsByDomain(ctx, domainID) {
		if card.Section == section {
			out = append(out, card)
		}
	}
	return out
}

// Card looks up a card by id across all domains.
func (c *Catalog) Card(ctx context.Context, id string) (Flashcard, bool) {
	for _, card := range c.AllFlashcards(ctx) {
		if card.ID == id {
			return card, true
		}
	}
	return Flashcard{}, false
}

// Filter selects cards for the reference view. A zero Filter matches all.
type Filter struct {
	Query  string
	Domain int
}

// Matches reports whether card satisfies f. The query is matched
// case-insensitively against the front, the section and the first tier.
func (f Filter) Matches(card Flashcard) bool {
	if f.Domain != 0 && card.Domain != f.Domain {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(card.Front), q) ||
		strings.Contains(strings.ToLower(card.Section), q) ||
		strings.Contains(strings.ToLower(card.Back.Level1), q)
}

// Search returns the cards matching f in PriorityOrder.
func (c *Catalog) Search(ctx context.Context, f Filter) []Flashcard {
	var out []Flashcard
	for _, card := range c.AllFlashcards(ctx) {
		if f.Matches(card) {
			out = append(out, card)
		}
	}
	return out
}

// SectionGroup is the cards of one section.
type SectionGroup struct {
	Name  string
	Cards []Flashcard
}

// DomainGroup is the cards of one domain grouped by section.
type DomainGroup struct {
	DomainID int
	Sections []SectionGroup
}

// Count returns the number of cards in the group.
func (g DomainGroup) Count() int {
	n := 0
	for _, s := range g.Sections {
		n += len(s.Cards)
	}
	return n
}

// Group buckets cards by domain, ascending by id, then by section in
// first-seen order.
func Group(cards []Flashcard) []DomainGroup {
	index := make(map[int]int)
	var groups []DomainGroup

	for _, card := range cards {
		gi, ok := index[card.Domain]
		if !ok {
			gi = len(groups)
			index[card.Domain] = gi
			groups = append(groups, DomainGroup{DomainID: card.Domain})
		}

		g := &groups[gi]
		si := -1
		for i, s := range g.Sections {
			if s.Name == card.Section {
				si = i
				break
			}
		}
		if si < 0 {
			g.Sections = append(g.Sections, SectionGroup{Name: card.Section})
			si = len(g.Sections) - 1
		}
		g.Sections[si].Cards = append(g.Sections[si].Cards, card)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].DomainID < groups[j].DomainID
	})
	return groups
}

// DomainLabel formats a domain heading such as "Domain 4: Security Operations".
func DomainLabel(d Domain) string {
	return fmt.Sprintf("Domain %d: %s", d.ID, d.Name)
}
