package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/machinery-systems/genepool-go/cmd/genepool-cli/internal/catalog"
	"github.com/machinery-systems/genepool-go/pkg/config"
	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/evolution"
	"github.com/machinery-systems/genepool-go/pkg/journal"
	"github.com/machinery-systems/genepool-go/pkg/logging"
	"github.com/machinery-systems/genepool-go/pkg/problems"
	"github.com/machinery-systems/genepool-go/pkg/runner"
)

func NewSolveCommand() *cobra.Command {
	var (
		configPath  string
		journalPath string
		quiet       bool

		population int
		mutation   float64
		cull       float64
		elite      int
		seed       int64

		generations int
		sampleEvery int
		trials      int
		concurrency int

		input  string
		length int
		target string
	)

	cmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "Evolve solutions to a built-in problem",
		Long: `Run the evolution engine against one of the built-in problems and print
the fittest specimen of the final generation.

Settings come from three layers: built-in defaults, then an optional
experiment file given with --config, then any flags set on the command
line. The problem argument may be omitted when the experiment file
names one.`,
		Example: `  # Quick start with defaults
  genepool-cli solve onemax

  # A reproducible phrase search with culling
  genepool-cli solve phrase --target "gopher" --seed 42 --cull 1

  # Five concurrent trials, journaled for later comparison
  genepool-cli solve onemax --length 64 --trials 5 --concurrency 5 --journal runs.db

  # Everything from a file
  genepool-cli solve --config experiment.yaml`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				cfg = config.GetDefaultConfig()
			}

			if len(args) == 1 {
				cfg.Problem.Name = strings.ToLower(args[0])
			}

			flags := cmd.Flags()
			if flags.Changed("population") {
				cfg.Engine.PopulationSize = population
			}
			if flags.Changed("mutation") {
				cfg.Engine.MutationProbability = mutation
			}
			if flags.Changed("cull") {
				threshold := cull
				cfg.Engine.CullThreshold = &threshold
			}
			if flags.Changed("elite") {
				cfg.Engine.EliteChildren = elite
			}
			if flags.Changed("seed") {
				fixed := seed
				cfg.Engine.Seed = &fixed
			}
			if flags.Changed("generations") {
				cfg.Run.Generations = generations
			}
			if flags.Changed("sample-every") {
				cfg.Run.SampleEvery = sampleEvery
			}
			if flags.Changed("trials") {
				cfg.Run.Trials = trials
			}
			if flags.Changed("concurrency") {
				cfg.Run.Concurrency = concurrency
			}
			if flags.Changed("journal") {
				cfg.Journal.Path = journalPath
			}
			if flags.Changed("input") {
				cfg.Problem.Input = input
			}
			if flags.Changed("target") {
				cfg.Problem.Target = target
			}
			if flags.Changed("length") {
				cfg.Problem.Length = length
			} else if cfg.Problem.Name == "onemax" && cfg.Problem.Length == 0 {
				cfg.Problem.Length = length
			}

			if cfg.Problem.Name == "" {
				return errors.New(errors.InvalidInput,
					"no problem selected; name one as an argument or in the experiment file")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			configureLogging(cfg, quiet)

			ctx := cmd.Context()
			switch cfg.Problem.Name {
			case "onemax":
				phenotype, err := problems.NewOneMax(cfg.Problem.Length)
				if err != nil {
					return err
				}
				return solveProblem[int](ctx, phenotype, cfg)
			case "phrase":
				phenotype, err := problems.NewPhrase(cfg.Problem.Target, problems.EnglishAlphabet())
				if err != nil {
					return err
				}
				return solveProblem[rune](ctx, phenotype, cfg)
			case "introns":
				phenotype, err := readIntronsPuzzle(cfg.Problem.Input)
				if err != nil {
					return err
				}
				return solveProblem[problems.Expression](ctx, phenotype, cfg)
			default:
				_, err := catalog.Get(cfg.Problem.Name)
				return err
			}
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Experiment file (YAML)")
	cmd.Flags().StringVar(&journalPath, "journal", "", "Record results to this journal database")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Log errors only")

	cmd.Flags().IntVar(&population, "population", 100, "Population size (positive and even)")
	cmd.Flags().Float64Var(&mutation, "mutation", 0.05, "Per-slot mutation probability")
	cmd.Flags().Float64Var(&cull, "cull", 0, "Cull specimens at or below this fitness (off unless set)")
	cmd.Flags().IntVar(&elite, "elite", 2, "Elite children copied into each generation (even)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Fix the random seed for reproducible runs")

	cmd.Flags().IntVar(&generations, "generations", 100, "Generations to evolve")
	cmd.Flags().IntVar(&sampleEvery, "sample-every", 0, "Record best fitness every N generations (0 = off)")
	cmd.Flags().IntVar(&trials, "trials", 1, "Independent replicates to run")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "Trials allowed to run at once")

	cmd.Flags().StringVar(&input, "input", "", "Introns puzzle file (\"-\" or empty = stdin)")
	cmd.Flags().IntVar(&length, "length", 16, "Bit string length for onemax")
	cmd.Flags().StringVar(&target, "target", "", "Target phrase for phrase")

	return cmd
}

func configureLogging(cfg *config.Config, quiet bool) {
	severity := logging.ParseSeverity(cfg.Logging.Level)
	if quiet {
		severity = logging.ERROR
	}

	outputs := []logging.Output{logging.NewConsoleOutput(true)}
	if cfg.Logging.File != "" {
		fileOutput, err := logging.NewFileOutput(cfg.Logging.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file, logging to console only: %v\n", err)
		} else {
			outputs = append(outputs, fileOutput)
		}
	}

	logging.SetLogger(logging.NewLogger(logging.Config{
		Severity: severity,
		Outputs:  outputs,
	}))
}

func readIntronsPuzzle(path string) (*problems.Introns, error) {
	if path == "" || path == "-" {
		return problems.ParseIntronsPuzzle(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidInput, "failed to open puzzle file"),
			errors.Fields{"path": path},
		)
	}
	defer file.Close()
	return problems.ParseIntronsPuzzle(file)
}

func solveProblem[T any](ctx context.Context, phenotype evolution.Phenotype[T], cfg *config.Config) error {
	newPool := func(seed int64) (*evolution.GenePool[T], error) {
		opts := []evolution.Option{
			evolution.WithSeed(seed),
			evolution.WithEliteChildren(cfg.Engine.EliteChildren),
		}
		if cfg.Engine.CullThreshold != nil {
			opts = append(opts, evolution.WithCullThreshold(*cfg.Engine.CullThreshold))
		}
		return evolution.New[T](phenotype, cfg.Engine.PopulationSize, cfg.Engine.MutationProbability, opts...)
	}

	batch, err := runner.Trials(ctx, phenotype, runner.TrialsConfig{
		Run: runner.Config{
			Problem:     cfg.Problem.Name,
			Generations: cfg.Run.Generations,
			SampleEvery: cfg.Run.SampleEvery,
		},
		Trials:      cfg.Run.Trials,
		Concurrency: cfg.Run.Concurrency,
		Seed:        cfg.Engine.Seed,
	}, newPool)
	if err != nil {
		return err
	}

	printBatch(cfg, batch)

	if cfg.Journal.Path != "" {
		if err := journalBatch(ctx, cfg, batch); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", color.New(color.FgCyan).Sprint("journal:"), cfg.Journal.Path)
	}
	return nil
}

func printBatch[T any](cfg *config.Config, batch *runner.TrialsResult[T]) {
	headline := color.New(color.FgGreen, color.Bold)
	label := color.New(color.FgCyan).SprintFunc()
	printer := message.NewPrinter(language.English)

	best := batch.Best
	if len(batch.Results) == 1 {
		headline.Printf("solved %s: best fitness %.4f\n", cfg.Problem.Name, best.BestFitness)
	} else {
		headline.Printf("solved %s: best fitness %.4f across %d trials\n",
			cfg.Problem.Name, best.BestFitness, len(batch.Results))
	}

	fmt.Printf("%s %s\n", label("champion:"), best.BestDecoded)
	fmt.Printf("%s %s\n", label("run id:"), best.RunID)
	fmt.Printf("%s %s\n", label("duration:"), best.Duration.Round(time.Millisecond))

	examined := int64(cfg.Engine.PopulationSize) * int64(cfg.Run.Generations) * int64(cfg.Run.Trials)
	fmt.Printf("%s %s\n", label("searched:"),
		printer.Sprintf("%d specimens over %d generations", examined, cfg.Run.Generations*cfg.Run.Trials))

	if len(batch.Results) > 1 {
		fmt.Println()
		for i, result := range batch.Results {
			marker := " "
			if i == batch.BestTrial {
				marker = "*"
			}
			fmt.Printf(" %s trial %d: fitness %.4f  %s\n", marker, i, result.BestFitness, result.BestDecoded)
		}
	}
}

func journalBatch[T any](ctx context.Context, cfg *config.Config, batch *runner.TrialsResult[T]) error {
	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()

	for i, result := range batch.Results {
		entry := journal.Entry{
			RunID:               result.RunID,
			Problem:             result.Problem,
			PopulationSize:      cfg.Engine.PopulationSize,
			MutationProbability: cfg.Engine.MutationProbability,
			CullThreshold:       cfg.Engine.CullThreshold,
			EliteChildren:       cfg.Engine.EliteChildren,
			Generations:         result.Generations,
			BestFitness:         result.BestFitness,
			BestDecoded:         result.BestDecoded,
			Duration:            result.Duration,
		}
		if cfg.Engine.Seed != nil {
			trialSeed := *cfg.Engine.Seed + int64(i)
			entry.Seed = &trialSeed
		}
		for _, sample := range result.Trajectory {
			entry.Trajectory = append(entry.Trajectory, journal.Sample{
				Generation:  sample.Generation,
				BestFitness: sample.BestFitness,
			})
		}
		if err := j.Record(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
