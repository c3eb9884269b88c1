package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/cogarch/prw/datarecording"
	"github.com/cogarch/prw/experiment"
)

var reportCmd = &cobra.Command{
	Use:   "report [database]",
	Short: "Summarize a previously recorded run.",
	Long: `report reads the per-trial results of a recorded run from its ` +
		`SQLite database and reprints the summary statistics of the ` +
		`reaction-time distribution.`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		reader := datarecording.NewReader(args[0])
		defer reader.Close()

		reader.MapTable("runs", experiment.RunRow{})
		reader.MapTable("trials", experiment.TrialRow{})

		printRuns(reader)
		printTrialSummary(reader)
	},
}

func printRuns(reader datarecording.DataReader) {
	runs, _, err := reader.Query(
		context.Background(), "runs", datarecording.QueryParams{})
	if err != nil {
		log.Fatalf("Error reading runs: %v", err)
	}

	for _, r := range runs {
		run := r.(*experiment.RunRow)
		fmt.Printf("Run %s: %d trials, threshold %g, seed %d\n",
			run.ID, run.NumTrials, run.Threshold, run.Seed)
	}
}

func printTrialSummary(reader datarecording.DataReader) {
	trials, _, err := reader.Query(
		context.Background(), "trials",
		datarecording.QueryParams{OrderBy: "Trial"})
	if err != nil {
		log.Fatalf("Error reading trials: %v", err)
	}

	rts := make([]int64, 0, len(trials))
	for _, t := range trials {
		rts = append(rts, t.(*experiment.TrialRow).ReactionTime)
	}

	summary, err := experiment.Summarize(rts)
	if err != nil {
		log.Fatalf("Error summarizing trials: %v", err)
	}

	fmt.Printf("Mean RT:   %.2f steps\n", summary.Mean)
	fmt.Printf("Median RT: %.2f steps\n", summary.Median)
	fmt.Printf("Std dev:   %.2f steps\n", summary.StdDev)
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
