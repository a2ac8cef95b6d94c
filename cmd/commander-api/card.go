package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/McManusDaniel/mtg-commander-app/pkg/scryfall"
)

func newCardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "card <name>",
		Short: "Look up one card and its rulings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			card, err := client.FetchFullCard(cmd.Context(), args[0])
			if err != nil {
				if scryfall.IsNotFound(err) {
					return fmt.Errorf("'%s' was not found", args[0])
				}
				return err
			}

			printCard(cmd.OutOrStdout(), card)
			return nil
		},
	}
}

// printCard renders a card the way a player would read it off the card face.
func printCard(w io.Writer, card *scryfall.Card) {
	color.New(color.FgYellow, color.Bold).Fprintln(w, card.Name)

	if card.ManaCost != "" {
		fmt.Fprintf(w, "%s  (cmc %g)\n", card.ManaCost, card.CMC)
	}
	fmt.Fprintln(w, card.TypeLine)

	if card.OracleText != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, card.OracleText)
	}
	if len(card.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords: %s\n", strings.Join(card.Keywords, ", "))
	}

	fmt.Fprint(w, "Commander: ")
	legalityColor(card.Legality).Fprintln(w, displayLegality(card.Legality))

	if len(card.Rulings) > 0 {
		fmt.Fprintln(w)
		color.New(color.Bold).Fprintln(w, "Rulings:")
		for _, ruling := range card.Rulings {
			fmt.Fprintf(w, "  %s\n", ruling)
		}
	}
}

func legalityColor(legality string) *color.Color {
	switch legality {
	case "legal":
		return color.New(color.FgGreen)
	case "banned":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func displayLegality(legality string) string {
	if legality == "" {
		return "unknown"
	}
	return strings.ReplaceAll(legality, "_", " ")
}
