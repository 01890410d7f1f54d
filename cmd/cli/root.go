package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "review-crew",
	Short: "review-crew is the command-line interface for the Review-Crew service.",
	Long: `A CLI for the Review-Crew automated code review service.

It can run a review pipeline offline over a patch file or a local repository's
HEAD commit, validate an agents file, and report token spend from the
configured database.`,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig reads ENV variables with the RC_ prefix.
func initConfig() {
	viper.SetEnvPrefix("RC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
