package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/McManusDaniel/mtg-commander-app/pkg/batch"
)

func newDeckCommand() *cobra.Command {
	var showProgress bool

	cmd := &cobra.Command{
		Use:   "deck <file>",
		Short: "Fetch every card in a deck list",
		Long: `Fetch full records for every card named in a deck list file.
The file holds one card name per line; blank lines and lines starting
with # are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := readDeckList(args[0])
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return fmt.Errorf("deck list %s contains no card names", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			var batchCfg batch.Config
			if showProgress {
				bar := progressbar.Default(int64(len(names)))
				batchCfg.OnProgress = func(done, total int) {
					bar.Add(1)
				}
			}

			results := batch.NewFetcher(client, batchCfg).FetchAll(cmd.Context(), names)

			out := cmd.OutOrStdout()
			failures := 0
			for _, r := range results {
				if r.Err != nil {
					failures++
					color.New(color.FgRed).Fprintf(out, "  %s: %v\n", r.Name, r.Err)
					continue
				}
				fmt.Fprintf(out, "  %s (%s, %d rulings)\n",
					r.Card.Name, displayLegality(r.Card.Legality), len(r.Card.Rulings))
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d lookups failed", failures, len(results))
			}
			fmt.Fprintf(out, "Fetched %d cards\n", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showProgress, "progress", true, "show a progress bar")

	return cmd
}

// readDeckList reads card names from a deck list file, one per line.
func readDeckList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck list: %w", err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read deck list: %w", err)
	}

	return names, nil
}
