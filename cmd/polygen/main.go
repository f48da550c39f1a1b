package main

import (
	"fmt"
	"os"

	"polygen/adapters/rng"
	"polygen/adapters/textfile"
	"polygen/app"
	"polygen/internal"
	"polygen/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env if present; real env vars still win
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		trials int
		length int
		gProb  float64
		fixed  bool
		dimers bool
		seed   int64
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "polygen",
		Short: "Generate synthetic G/L polymer batches and report pair statistics",
		Long: `Generate a batch of random two-letter (G/L) polymer sequences, persist them
one per line to a plain-text file, and print mean/SEM aggregates of the
adjacent-pair counts (GG, LL, GL, LG) plus derived block-length metrics.

Runs are deterministic for a given seed.

Example: polygen --trials 10000 --length 100 --g-prob 0.25 --fixed --seed 42`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags override env-derived settings when set explicitly
			flags := cmd.Flags()
			if flags.Changed("trials") {
				cfg.Batch.Trials = trials
			}
			if flags.Changed("length") {
				cfg.Batch.Length = length
			}
			if flags.Changed("g-prob") {
				cfg.Batch.GProbability = gProb
			}
			if flags.Changed("fixed") {
				cfg.Batch.FixedCount = fixed
			}
			if flags.Changed("dimers") {
				cfg.Batch.DimerMode = dimers
			}
			if flags.Changed("seed") {
				cfg.Batch.Seed = seed
			}
			if flags.Changed("out-dir") {
				cfg.Output.Dir = outDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runBatch(cfg)
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 10000, "Number of polymers to generate")
	cmd.Flags().IntVar(&length, "length", 100, "Polymer length in monomers")
	cmd.Flags().Float64Var(&gProb, "g-prob", 0.25, "Probability of a G monomer")
	cmd.Flags().BoolVar(&fixed, "fixed", true, "Fix the exact number of G monomers")
	cmd.Flags().BoolVar(&dimers, "dimers", false, "Build polymers from identical-symbol dimers")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic runs")
	cmd.Flags().StringVar(&outDir, "out-dir", "data", "Directory for the sequence output file")

	return cmd
}

func runBatch(cfg *config.Config) error {
	logger := internal.DefaultLogger

	sink, err := textfile.NewSink(cfg.Output.Dir, cfg.Batch.Length)
	if err != nil {
		return err
	}

	service := app.NewBatchService(rng.NewStreamFactory(), logger)
	result, runErr := service.Run(app.BatchRequest{
		Batch:  cfg.Batch,
		Sink:   sink,
		Report: os.Stdout,
	})

	// Flush whatever made it out, even on a failed batch
	if closeErr := sink.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return runErr
	}

	logger.Debug("batch %s: sequences written to %s", result.RunID, sink.Path())
	return nil
}
