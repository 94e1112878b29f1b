package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hannesw/tgeld/internal/config"
	"github.com/hannesw/tgeld/internal/db"
	"github.com/hannesw/tgeld/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tgeld",
	Short: "A CLI allowance tracker",
	Long: `tgeld tracks a child's chores and what they earn from them.
Define chargeable tasks (billed per hour or per count), log entries against
them, and generate weekly, monthly or quarterly statements.`,
}

// withStore wraps a command handler with store initialization. The first
// caller opens the database; later callers share that one attempt and its
// outcome.
func withStore(fn func(*cobra.Command, []string, *db.Store)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		store, err := db.Default()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fn(cmd, args, store)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		if cfg, err := config.Load(); err == nil {
			log.Setup(cfg.LogLevel)
		}
	})

	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// currency returns the configured price suffix, falling back to the default
// when the config cannot be read.
func currency() string {
	cfg, err := config.Load()
	if err != nil {
		return "€"
	}
	return cfg.Currency
}
