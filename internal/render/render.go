// Package render writes decks of playing cards to a terminal as text.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/arcanaland/decksmith/internal/card"
	"github.com/arcanaland/decksmith/internal/deck"
)

// separator precedes every deck printout.
const separator = "------------------"

// Options controls the deck layout.
type Options struct {
	// Description is printed under the separator. Leave it empty to omit
	// the line entirely.
	Description string

	// Rows is the number of lines the deck is split across. The row size is
	// the truncating division len(deck)/Rows, so when the deck does not
	// divide evenly the remainder cards are dropped from the output.
	Rows int

	// CarryRemainder prints the leftover cards on one extra, shorter row
	// instead of dropping them.
	CarryRemainder bool

	// Color prints heart and diamond cards in red.
	Color bool
}

// DefaultOptions matches the historical printout: "Current Deck" across
// four rows, plain text.
func DefaultOptions() Options {
	return Options{Description: "Current Deck", Rows: 4}
}

var red = color.New(color.FgRed)

func formatCard(c card.Card, colorize bool) string {
	if colorize && (c.Suit == card.Heart || c.Suit == card.Diamond) {
		return red.Sprint(c.Format())
	}
	return c.Format()
}

// Deck writes the cards to w grouped into rows, in deck order. Each card is
// followed by a single space, trailing space included, matching the
// historical layout.
func Deck(w io.Writer, cards deck.Deck, opts Options) {
	fmt.Fprintln(w, separator)
	if opts.Description != "" {
		fmt.Fprintln(w, opts.Description)
	}

	if opts.Rows < 1 {
		opts.Rows = 1
	}
	perRow := len(cards) / opts.Rows

	for i := 0; i < opts.Rows; i++ {
		writeRow(w, cards[i*perRow:(i+1)*perRow], opts.Color)
	}

	if rest := cards[opts.Rows*perRow:]; opts.CarryRemainder && len(rest) > 0 {
		writeRow(w, rest, opts.Color)
	}
}

func writeRow(w io.Writer, row deck.Deck, colorize bool) {
	for _, c := range row {
		fmt.Fprintf(w, "%s ", formatCard(c, colorize))
	}
	fmt.Fprintln(w)
}

// Print writes the cards to standard output with DefaultOptions.
func Print(cards deck.Deck) {
	Deck(os.Stdout, cards, DefaultOptions())
}

// Table writes the deck as a grid, one row per suit and one column per
// face, in deck order within each suit.
func Table(w io.Writer, cards deck.Deck, colorize bool) {
	tbl := table.New("Suit", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A")
	tbl.WithWriter(w)

	if colorize {
		headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
		suitFmt := color.New(color.FgYellow).SprintfFunc()
		tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(suitFmt)
	}

	for suit, group := range cards.BySuit() {
		row := make([]interface{}, 0, len(group)+1)
		row = append(row, card.Suit(suit).String())
		for _, c := range group {
			row = append(row, c.Format())
		}
		tbl.AddRow(row...)
	}

	tbl.Print()
}
