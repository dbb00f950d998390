package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/incomeengine/internal/config"
	"github.com/osse101/incomeengine/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		p        params
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the income engine offline for a number of days",
		Long: "simulate launches assets against a catalog, closes days and prints the\n" +
			"resulting payouts. Several seeds can run in parallel with --runs.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLoggerWithWriter(logger.CLIConfig(logLevel), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.validate(); err != nil {
				return err
			}
			outcomes, err := runAll(cmd.Context(), p)
			if err != nil {
				return err
			}
			if p.Out != "" {
				if err := saveOutcomes(p.Out, outcomes); err != nil {
					return err
				}
			}
			if p.JSON {
				return printJSON(cmd.OutOrStdout(), outcomes)
			}
			renderOutcomes(cmd.OutOrStdout(), outcomes)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.CatalogPath, "catalog", config.ConfigPathCatalog, "catalog YAML file")
	cmd.Flags().IntVar(&p.Days, "days", 30, "days to simulate")
	cmd.Flags().Int64Var(&p.Seed, "seed", 1, "random seed of the first run")
	cmd.Flags().IntVar(&p.Runs, "runs", 1, "number of runs, each with the next seed")
	cmd.Flags().IntVar(&p.Parallel, "parallel", 4, "runs executed at once")
	cmd.Flags().Float64Var(&p.Money, "money", config.DefaultStartingMoney, "starting money")
	cmd.Flags().Float64Var(&p.Hours, "hours", config.DefaultDailyHours, "hours available per day")
	cmd.Flags().Float64Var(&p.SpawnChance, "spawn-chance", config.DefaultEventSpawnChance, "daily niche event chance")
	cmd.Flags().StringSliceVar(&p.Launch, "launch", []string{"blog"}, "asset types to launch on day 1")
	cmd.Flags().StringVar(&p.Niche, "niche", "", "niche assigned to every launched asset")
	cmd.Flags().BoolVar(&p.Work, "work", false, "perform every available quality action each day")
	cmd.Flags().BoolVar(&p.JSON, "json", false, "print outcomes as JSON")
	cmd.Flags().StringVar(&p.Out, "out", "", "also write outcomes as JSON to this file")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level")
	return cmd
}
