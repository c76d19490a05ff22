package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/machinery-systems/genepool-go/cmd/genepool-cli/internal/catalog"
)

func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in problems",
		Long: `Display the problems that ship with the engine, one line each.

Use "describe <problem>" for the full story on any of them, or
"solve <problem>" to start evolving right away.`,
		Example: `  # List all problems
  genepool-cli list`,
		Run: func(cmd *cobra.Command, args []string) {
			bold := color.New(color.Bold).SprintFunc()
			for _, problem := range catalog.All() {
				fmt.Printf("%s\n  %s\n\n", bold(problem.Name), problem.Summary)
			}
		},
	}
}
