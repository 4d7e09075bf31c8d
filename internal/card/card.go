package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCardSpec is returned when a factory is asked for a card that
// does not exist in a standard deck. Check for it with errors.Is.
var ErrInvalidCardSpec = errors.New("invalid card spec")

// Suit is one of the four card categories in a standard deck.
type Suit int

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// Display characters per suit, indexed by declaration order.
var glyphs = [4]rune{'♣', '♦', '♥', '♠'} // ♣ ♦ ♥ ♠

var suitNames = [4]string{"club", "diamond", "heart", "spade"}

// Glyph returns the Unicode character for the suit.
func (s Suit) Glyph() rune {
	return glyphs[s]
}

// String returns the suit name in lowercase.
func (s Suit) String() string {
	return suitNames[s]
}

// ParseSuit maps a suit name like "heart" or "Spade" to its Suit. The match
// is case-insensitive.
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if strings.EqualFold(name, n) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCardSpec, name)
}

// faceOrder fixes the face-card sequence; position in it plus 9 is the rank,
// so J=9, Q=10, K=11, A=12.
const faceOrder = "JQKA"

// Card is a single playing card. Build one through NewNumericCard,
// NewFaceCard or NewCard; the factories keep Face and Rank consistent, so a
// Card is never seen with a mismatched pair.
type Card struct {
	Suit Suit
	Face string
	Rank int
}

// NewNumericCard builds a numeric card. The card number must be between 2
// and 10 inclusive; the rank is the number minus two, giving 0 through 8.
func NewNumericCard(suit Suit, number int) (Card, error) {
	if number < 2 || number > 10 {
		return Card{}, fmt.Errorf("%w: numeric card %d outside 2-10", ErrInvalidCardSpec, number)
	}
	return Card{Suit: suit, Face: strconv.Itoa(number), Rank: number - 2}, nil
}

// NewFaceCard builds a face card from one of the abbreviations J, Q, K or A
// (uppercase). Face cards rank 9 through 12 in that order.
func NewFaceCard(suit Suit, abbrev rune) (Card, error) {
	i := strings.IndexRune(faceOrder, abbrev)
	if i < 0 {
		return Card{}, fmt.Errorf("%w: face card %q is not one of J, Q, K, A", ErrInvalidCardSpec, abbrev)
	}
	return Card{Suit: suit, Face: string(abbrev), Rank: i + 9}, nil
}

// NewCard builds a card from its face label, accepting "2" through "10" and
// the face abbreviations.
func NewCard(suit Suit, face string) (Card, error) {
	if n, err := strconv.Atoi(face); err == nil {
		return NewNumericCard(suit, n)
	}
	r := []rune(face)
	if len(r) != 1 {
		return Card{}, fmt.Errorf("%w: unknown face %q", ErrInvalidCardSpec, face)
	}
	return NewFaceCard(suit, r[0])
}

// Format renders the card as face, suit glyph and rank, e.g. "7♥(5)" or
// "A♠(12)". The face is cut to its first character except for "10", which
// keeps both digits.
func (c Card) Format() string {
	short := c.Face
	if short != "10" && len(short) > 1 {
		short = short[:1]
	}
	return fmt.Sprintf("%s%c(%d)", short, c.Suit.Glyph(), c.Rank)
}

// String implements fmt.Stringer.
func (c Card) String() string {
	return c.Format()
}
