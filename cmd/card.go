package cmd

import (
	"fmt"

	"github.com/arcanaland/decksmith/internal/card"

	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card [suit] [face]",
	Short: "Build a single card and print it",
	Long: `Card builds one playing card from a suit name and a face label and prints
its formatted text.

Suits are club, diamond, heart and spade. Faces are 2 through 10 and the
abbreviations J, Q, K, A (uppercase).

Examples:
  decksmith card heart 7
  decksmith card club 10
  decksmith card spade A`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := card.ParseSuit(args[0])
		if err != nil {
			return err
		}

		c, err := card.NewCard(suit, args[1])
		if err != nil {
			return err
		}

		fmt.Println(c.Format())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)
}
