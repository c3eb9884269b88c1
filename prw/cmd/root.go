// Package cmd provides the command-line interface for the perceptual random
// walk simulator.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "prw",
	Short: "prw simulates a binary perceptual decision task and collects " +
		"the reaction-time distribution.",
	Long: `prw simulates a binary perceptual decision task. Each trial races ` +
		`two noisy evidence accumulators toward a threshold; the step count at ` +
		`the crossing is the reaction time. The run and report commands run ` +
		`experiments and summarize recorded runs.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can override the built-in defaults.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
