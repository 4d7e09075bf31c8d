package deck

import (
	"fmt"

	"github.com/arcanaland/decksmith/internal/card"
)

// Deck is an ordered sequence of playing cards.
type Deck []card.Card

// Standard returns a fresh 52-card deck. Suits run in declaration order
// (club, diamond, heart, spade); within each suit the numeric cards 2
// through 10 come first, then J, Q, K, A. Construction is deterministic, so
// two calls yield value-identical decks.
func Standard() Deck {
	deck := make(Deck, 0, 52)

	for suit := card.Club; suit <= card.Spade; suit++ {
		for n := 2; n <= 10; n++ {
			c, err := card.NewNumericCard(suit, n)
			if err != nil {
				// Unreachable: 2-10 are always valid numbers.
				panic(fmt.Sprintf("deck: numeric card %d: %v", n, err))
			}
			deck = append(deck, c)
		}

		for _, abbrev := range "JQKA" {
			c, err := card.NewFaceCard(suit, abbrev)
			if err != nil {
				panic(fmt.Sprintf("deck: face card %c: %v", abbrev, err))
			}
			deck = append(deck, c)
		}
	}

	return deck
}

// BySuit splits the deck into four groups, one per suit in declaration
// order, preserving deck order within each group.
func (d Deck) BySuit() [4]Deck {
	var groups [4]Deck
	for _, c := range d {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	return groups
}
