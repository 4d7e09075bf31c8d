package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "decksmith",
	Short: "Tool for building and displaying standard playing card decks",
	Long: `Decksmith models a standard 52-card deck. It builds the ordered deck and
prints it in a row-grouped layout or as a suit-by-face grid, and can build
single cards from a suit name and a face label.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
