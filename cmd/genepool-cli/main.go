package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/machinery-systems/genepool-go/cmd/genepool-cli/internal/commands"
)

var rootCmd = &cobra.Command{
	Use:   "genepool-cli",
	Short: "Run genetic algorithm searches from the command line",
	Long: `A command-line interface for the genepool evolution engine that solves
the built-in problems without writing any code.

The CLI provides:
- Quick runs of the built-in problems with sensible defaults
- Reproducible experiments from YAML files or flags
- Concurrent independent trials of the same search
- A SQLite journal of past runs for comparison`,
	Version:      "0.1.0",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(
		commands.NewListCommand(),
		commands.NewDescribeCommand(),
		commands.NewSolveCommand(),
		commands.NewRunsCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
