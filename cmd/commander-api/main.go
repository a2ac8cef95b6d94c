// Command commander-api is the MTG Commander backend: an HTTP API and CLI
// for card metadata lookups against Scryfall.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/McManusDaniel/mtg-commander-app/internal/config"
	"github.com/McManusDaniel/mtg-commander-app/pkg/logging"
	"github.com/McManusDaniel/mtg-commander-app/pkg/scryfall"
)

var (
	configFile string
	logLevel   string
	prettyLogs bool
)

func main() {
	rootCommand := cobra.Command{
		Use:           "commander-api",
		Short:         "MTG card metadata backend over the Scryfall API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logging.Config{
				Level:  logging.LogLevel(logLevel),
				Pretty: prettyLogs,
				Output: os.Stderr,
			})
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCommand.PersistentFlags().BoolVar(&prettyLogs, "pretty", false, "human-readable log output")

	rootCommand.AddCommand(
		newServeCommand(),
		newCardCommand(),
		newDeckCommand(),
	)

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "commander-api: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.NewLoader(configFile).Load()
}

// newClient builds the shared Scryfall client from the loaded configuration.
// Each command constructs exactly one client and closes it on exit.
func newClient(cfg *config.Config) (*scryfall.Client, error) {
	return scryfall.New(scryfall.Config{
		BaseURL:        cfg.Scryfall.BaseURL,
		UserAgent:      cfg.Scryfall.UserAgent,
		RateLimitDelay: cfg.Scryfall.Delay(),
		RequestTimeout: cfg.Scryfall.Timeout(),
	})
}
