package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/journal"
)

func NewRunsCommand() *cobra.Command {
	var journalPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "Show journaled runs",
		Long: `List runs recorded with "solve --journal", newest first. Pass a run id
to see one run in full, including its fitness trajectory.`,
		Example: `  # The ten most recent runs
  genepool-cli runs --journal runs.db

  # Everything ever recorded
  genepool-cli runs --journal runs.db --limit 0

  # One run in detail
  genepool-cli runs 1b4e28ba-2fa1-11d2-883f-0016d3cca427 --journal runs.db`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(journalPath); err != nil {
				return errors.WithFields(
					errors.New(errors.NotFound, "no journal found"),
					errors.Fields{"path": journalPath},
				)
			}

			j, err := journal.Open(journalPath)
			if err != nil {
				return err
			}
			defer j.Close()

			if len(args) == 1 {
				entry, err := j.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printEntry(entry)
				return nil
			}

			entries, err := j.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no runs recorded yet")
				return nil
			}

			bold := color.New(color.Bold).SprintFunc()
			fmt.Println(bold(fmt.Sprintf("%-36s  %-8s  %10s  %6s  %10s  %s",
				"RUN", "PROBLEM", "FITNESS", "GENS", "DURATION", "WHEN")))
			for _, entry := range entries {
				fmt.Printf("%-36s  %-8s  %10.4f  %6d  %10s  %s\n",
					entry.RunID,
					entry.Problem,
					entry.BestFitness,
					entry.Generations,
					entry.Duration.Round(time.Millisecond),
					entry.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&journalPath, "journal", "genepool.db", "Path to the journal database")
	cmd.Flags().IntVar(&limit, "limit", 10, "Show at most this many runs (0 = all)")

	return cmd
}

func printEntry(entry *journal.Entry) {
	bold := color.New(color.Bold).SprintFunc()
	label := color.New(color.FgCyan).SprintFunc()

	fmt.Printf("%s\n", bold(entry.RunID))
	fmt.Printf("%s %s\n", label("problem:"), entry.Problem)
	fmt.Printf("%s %s\n", label("champion:"), entry.BestDecoded)
	fmt.Printf("%s %.4f\n", label("fitness:"), entry.BestFitness)
	fmt.Printf("%s population %d, mutation %.4f, elite %d\n", label("engine:"),
		entry.PopulationSize, entry.MutationProbability, entry.EliteChildren)
	if entry.CullThreshold != nil {
		fmt.Printf("%s %.4f\n", label("cull:"), *entry.CullThreshold)
	}
	if entry.Seed != nil {
		fmt.Printf("%s %d\n", label("seed:"), *entry.Seed)
	}
	fmt.Printf("%s %d generations in %s\n", label("run:"),
		entry.Generations, entry.Duration.Round(time.Millisecond))
	fmt.Printf("%s %s\n", label("when:"), entry.CreatedAt.Local().Format("2006-01-02 15:04:05"))

	if len(entry.Trajectory) > 0 {
		fmt.Printf("\n%s\n", label("trajectory:"))
		for _, sample := range entry.Trajectory {
			fmt.Printf("  generation %4d  best %.4f\n", sample.Generation, sample.BestFitness)
		}
	}
}
