package study

import "github.com/abhisek/secplus/internal/content"

// cardsLoadedMsg is sent when the session's cards have been read.
type cardsLoadedMsg struct {
	Subject string
	Cards   []content.Flashcard
}
