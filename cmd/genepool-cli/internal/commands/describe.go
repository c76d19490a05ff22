package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/machinery-systems/genepool-go/cmd/genepool-cli/internal/catalog"
)

func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <problem>",
		Short: "Explain one of the built-in problems",
		Long: `Display what a problem evolves, how specimens are scored, and which
flags parameterize it, together with a ready-to-run example.`,
		Example: `  # Describe the phrase problem
  genepool-cli describe phrase

  # Case insensitive
  genepool-cli describe ONEMAX`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := catalog.Get(strings.ToLower(args[0]))
			if err != nil {
				fmt.Println("Available problems:")
				for _, name := range catalog.Names() {
					fmt.Printf("  - %s\n", name)
				}
				fmt.Println()
				return err
			}

			bold := color.New(color.Bold).SprintFunc()
			label := color.New(color.FgCyan).SprintFunc()

			fmt.Printf("%s: %s\n\n", bold(problem.DisplayName), problem.Summary)
			fmt.Println(problem.Description)
			fmt.Println()
			fmt.Printf("%s %s\n", label("Fitness:"), problem.Fitness)
			if len(problem.Flags) > 0 {
				fmt.Printf("%s %s\n", label("Flags:"), strings.Join(problem.Flags, ", "))
			}
			fmt.Printf("%s %s\n", label("Example:"), problem.Example)
			return nil
		},
	}
}
