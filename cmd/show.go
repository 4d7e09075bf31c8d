package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/arcanaland/decksmith/internal/config"
	"github.com/arcanaland/decksmith/internal/deck"
	"github.com/arcanaland/decksmith/internal/render"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the standard 52-card deck",
	Long: `Show prints the standard deck in deck order: clubs, diamonds, hearts,
spades, each suit running 2 through 10 and then J, Q, K, A.

Layout defaults come from your config file (XDG_CONFIG_HOME/decksmith/config.toml).
Pass --rows 0 to fit the rows to the current terminal width. When the deck
does not divide evenly across the rows the leftover cards are dropped from
the output; pass --carry to print them on one extra row instead.

Examples:
  decksmith show
  decksmith show --rows 13 --description "Fresh deck"
  decksmith show --table --color`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		opts := render.Options{
			Description: cfg.Description,
			Rows:        cfg.Rows,
			Color:       cfg.Color,
		}

		if cmd.Flags().Changed("rows") {
			opts.Rows, _ = cmd.Flags().GetInt("rows")
		}
		if cmd.Flags().Changed("description") {
			opts.Description, _ = cmd.Flags().GetString("description")
		}
		if noDesc, _ := cmd.Flags().GetBool("no-description"); noDesc {
			opts.Description = ""
		}
		if cmd.Flags().Changed("color") {
			opts.Color, _ = cmd.Flags().GetBool("color")
		}
		opts.CarryRemainder, _ = cmd.Flags().GetBool("carry")

		d := deck.Standard()

		if useTable, _ := cmd.Flags().GetBool("table"); useTable {
			render.Table(os.Stdout, d, opts.Color)
			return nil
		}

		if opts.Rows == 0 {
			opts.Rows = fitRows(len(d))
		}

		render.Deck(os.Stdout, d, opts)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().IntP("rows", "r", 4, "Number of rows to split the deck across (0 fits the terminal width)")
	showCmd.Flags().StringP("description", "d", "", "Description line printed above the deck")
	showCmd.Flags().Bool("no-description", false, "Omit the description line")
	showCmd.Flags().Bool("carry", false, "Print remainder cards on an extra row instead of dropping them")
	showCmd.Flags().Bool("table", false, "Print the deck as a suit-by-face grid")
	showCmd.Flags().Bool("color", false, "Print hearts and diamonds in red")
}

// fitRows picks the smallest row count whose lines fit the terminal width.
// A formatted card occupies at most six characters plus its trailing space.
func fitRows(cards int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	perRow := width / 7
	if perRow < 1 {
		perRow = 1
	}

	rows := (cards + perRow - 1) / perRow
	if rows < 1 {
		rows = 1
	}
	return rows
}
