package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/decksmith/internal/card"
	"github.com/arcanaland/decksmith/internal/deck"
)

func renderLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestDeck_fourRows(t *testing.T) {
	var buf bytes.Buffer
	Deck(&buf, deck.Standard(), Options{Description: "Test", Rows: 4})

	lines := renderLines(&buf)
	assert.Len(t, lines, 6)
	assert.Equal(t, "------------------", lines[0])
	assert.Equal(t, "Test", lines[1])

	for _, row := range lines[2:] {
		assert.Len(t, strings.Fields(row), 13)
	}

	assert.True(t, strings.HasPrefix(lines[2], "2♣(0) 3♣(1) "))
	// Every row ends with a trailing space after its last card.
	assert.True(t, strings.HasSuffix(lines[2], "A♣(12) "))
	assert.True(t, strings.HasSuffix(lines[5], "A♠(12) "))
}

func TestDeck_truncatesRemainder(t *testing.T) {
	var buf bytes.Buffer
	Deck(&buf, deck.Standard(), Options{Description: "Test", Rows: 5})

	lines := renderLines(&buf)
	assert.Len(t, lines, 7)

	// 52/5 truncates to 10 cards per row; the last two cards are dropped.
	for _, row := range lines[2:] {
		assert.Len(t, strings.Fields(row), 10)
	}
	assert.NotContains(t, buf.String(), "K♠(11)")
	assert.NotContains(t, buf.String(), "A♠(12)")
}

func TestDeck_carryRemainder(t *testing.T) {
	var buf bytes.Buffer
	Deck(&buf, deck.Standard(), Options{Description: "Test", Rows: 5, CarryRemainder: true})

	lines := renderLines(&buf)
	assert.Len(t, lines, 8)
	assert.Equal(t, "K♠(11) A♠(12) ", lines[7])
}

func TestDeck_omitsEmptyDescription(t *testing.T) {
	var buf bytes.Buffer
	Deck(&buf, deck.Standard(), Options{Rows: 4})

	lines := renderLines(&buf)
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "2♣(0) "))
}

func TestDeck_colorMarksRedSuits(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	seven, err := card.NewNumericCard(card.Heart, 7)
	assert.NoError(t, err)
	two, err := card.NewNumericCard(card.Spade, 2)
	assert.NoError(t, err)

	var buf bytes.Buffer
	Deck(&buf, deck.Deck{seven, two}, Options{Rows: 1, Color: true})

	assert.Contains(t, buf.String(), "\x1b[31m7♥(5)\x1b[0m")
	assert.Contains(t, buf.String(), "2♠(0) ")
	assert.NotContains(t, buf.String(), "\x1b[31m2♠(0)")
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "Current Deck", opts.Description)
	assert.Equal(t, 4, opts.Rows)
	assert.False(t, opts.CarryRemainder)
	assert.False(t, opts.Color)
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, deck.Standard(), false)

	lines := renderLines(&buf)
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Suit")
	assert.Contains(t, lines[1], "club")
	assert.Contains(t, lines[4], "spade")
	assert.Contains(t, lines[4], "A♠(12)")
}
