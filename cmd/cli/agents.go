package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-crew/internal/config"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Work with agent seed files",
}

var agentsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an agents file and print its contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := "agents.yml"
		if len(args) == 1 {
			path = args[0]
		}

		file, err := config.LoadAgentsFile(path)
		if err != nil {
			return err
		}

		successColor.Printf("%s is valid (%d agents)\n\n", path, len(file.Agents))
		for i := range file.Agents {
			a := &file.Agents[i]
			state := "enabled"
			if !a.IsEnabled() {
				state = "disabled"
			}
			titleColor.Printf("%s (%s)\n", a.Name, state)
			fmt.Printf("  threshold:    %d\n", a.SeverityThreshold)
			fmt.Printf("  dimensions:   %s\n", strings.Join(a.Dimensions, ", "))
			if len(a.FileFilters) > 0 {
				fmt.Printf("  file filters: %s\n", strings.Join(a.FileFilters, ", "))
			}
			if len(a.Repositories) > 0 {
				fmt.Printf("  repositories: %s\n", strings.Join(a.Repositories, ", "))
			}
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	agentsCmd.AddCommand(agentsValidateCmd)
	rootCmd.AddCommand(agentsCmd)
}
