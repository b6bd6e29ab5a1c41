// Package content loads the read-only study material: the domain catalog
// and one flashcard document per domain.
package content

// Domain is a top-level exam content category.
type Domain struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	ExamPercentage float64  `json:"examPercentage"`
	Description    string   `json:"description"`
	Sections       []string `json:"sections"`
}

// CardType classifies what a flashcard teaches.
type CardType string

const (
	TypeAcronym  CardType = "acronym"
	TypeConcept  CardType = "concept"
	TypeTool     CardType = "tool"
	TypeProcess  CardType = "process"
	TypeAttack   CardType = "attack"
	TypeStandard CardType = "standard"
)

// Difficulty is the author-assigned difficulty of a card.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MaxDisclosure is the number of answer tiers on the back of a card.
const MaxDisclosure = 3

// Back holds the three answer tiers, shortest first.
type Back struct {
	Level1 string `json:"level1"`
	Level2 string `json:"level2"`
	Level3 string `json:"level3"`
}

// Level returns tier n (1..3). Out-of-range values clamp.
func (b Back) Level(n int) string {
	switch {
	case n <= 1:
		return b.Level1
	case n == 2:
		return b.Level2
	default:
		return b.Level3
	}
}

// Metadata carries study hints for a card.
type Metadata struct {
	Difficulty     Difficulty `json:"difficulty"`
	CommonlyTested bool       `json:"commonlyTested"`
	RelatedTerms   []string   `json:"relatedTerms,omitempty"`
}

// Flashcard is a single study unit.
type Flashcard struct {
	ID       string   `json:"id"`
	Domain   int      `json:"domain"`
	Section  string   `json:"section"`
	Type     CardType `json:"type"`
	Front    string   `json:"front"`
	Back     Back     `json:"back"`
	Metadata Metadata `json:"metadata"`
}

// Manifest describes a content bundle.
type Manifest struct {
	Format  string `json:"format"`
	Title   string `json:"title"`
	Updated string `json:"updated,omitempty"`
}
