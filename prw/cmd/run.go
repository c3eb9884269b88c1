package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cogarch/prw/experiment"
	"github.com/cogarch/prw/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an experiment and report the reaction-time distribution.",
	Long: `run executes the configured number of independent trials, prints ` +
		`the summary statistics of the reaction-time distribution, and records ` +
		`the per-trial results to an SQLite database.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := configFromFlags(cmd)

		// Sequential IDs are only deterministic when one worker runs at a
		// time.
		if config.Workers != 1 {
			sim.UseParallelIDGenerator()
		}

		builder := experiment.MakeBuilder().WithConfig(config)

		noRecord, _ := cmd.Flags().GetBool("no-record")
		if noRecord {
			builder = builder.WithoutRecording()
		} else if output := outputFileName(cmd); output != "" {
			builder = builder.WithOutputFileName(output)
		}

		monitorOn, _ := cmd.Flags().GetBool("monitor")
		if monitorOn {
			builder = builder.WithMonitoring()
			if port := monitorPort(cmd); port > 0 {
				builder = builder.WithMonitorPort(port)
			}
		}

		e := builder.Build()
		defer e.Terminate()

		result, err := e.Run()
		if err != nil {
			log.Fatalf("Error running experiment: %v", err)
		}

		printResult(e, result)
	},
}

func configFromFlags(cmd *cobra.Command) experiment.Config {
	config := experiment.DefaultConfig()

	config.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	config.NumTrials, _ = cmd.Flags().GetInt("trials")
	config.LeftIncrement, _ = cmd.Flags().GetFloat64("left-increment")
	config.RightIncrement, _ = cmd.Flags().GetFloat64("right-increment")
	config.NoiseStdDev, _ = cmd.Flags().GetFloat64("noise")
	config.StepCeiling, _ = cmd.Flags().GetInt64("step-ceiling")
	config.Seed, _ = cmd.Flags().GetInt64("seed")
	config.Workers, _ = cmd.Flags().GetInt("workers")
	config.LogEvents, _ = cmd.Flags().GetBool("log-events")

	return config
}

func outputFileName(cmd *cobra.Command) string {
	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		return output
	}

	return os.Getenv("PRW_OUTPUT")
}

func monitorPort(cmd *cobra.Command) int {
	port, _ := cmd.Flags().GetInt("monitor-port")
	if port > 0 {
		return port
	}

	port, _ = strconv.Atoi(os.Getenv("PRW_MONITOR_PORT"))

	return port
}

func printResult(e *experiment.Experiment, result experiment.Result) {
	config := e.Config()

	fmt.Printf("Run %s: %d trials, threshold %g, seed %d\n",
		e.ID(), config.NumTrials, config.Threshold, result.Seed)
	fmt.Printf("Mean RT:   %.2f steps\n", result.Summary.Mean)
	fmt.Printf("Median RT: %.2f steps\n", result.Summary.Median)
	fmt.Printf("Std dev:   %.2f steps\n", result.Summary.StdDev)
}

func init() {
	defaults := experiment.DefaultConfig()

	runCmd.Flags().Float64("threshold", defaults.Threshold,
		"activation level that ends a trial")
	runCmd.Flags().Int("trials", defaults.NumTrials,
		"number of independent trials")
	runCmd.Flags().Float64("left-increment", defaults.LeftIncrement,
		"base activation increment of the left category")
	runCmd.Flags().Float64("right-increment", defaults.RightIncrement,
		"base activation increment of the right category")
	runCmd.Flags().Float64("noise", defaults.NoiseStdDev,
		"standard deviation of the selection noise")
	runCmd.Flags().Int64("step-ceiling", defaults.StepCeiling,
		"maximum steps per trial before the trial fails")
	runCmd.Flags().Int64("seed", 0,
		"random seed, 0 derives one from the wall clock")
	runCmd.Flags().Int("workers", 0,
		"number of trial workers, 0 uses all CPUs")
	runCmd.Flags().Bool("log-events", false,
		"log every tick event of every trial")
	runCmd.Flags().String("output", "",
		"output database name, without the .sqlite3 suffix")
	runCmd.Flags().Bool("no-record", false,
		"do not record results to SQLite")
	runCmd.Flags().Bool("monitor", false,
		"start the monitoring server")
	runCmd.Flags().Int("monitor-port", 0,
		"port of the monitoring server, 0 picks a random port")

	rootCmd.AddCommand(runCmd)
}
