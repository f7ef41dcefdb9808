// ABOUTME: CLI command for the step count query.
// ABOUTME: Prints the step total and goal for one day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps [date]",
	Short: "Show the step count for a date",
	Long: `Show the step total and daily goal for a calendar date.

The date is ISO format (YYYY-MM-DD) and defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.Steps(cmd.Context(), dateArg(args))
		if err != nil {
			return err
		}

		fmt.Printf("%s  %d / %d steps", s.Date, s.Steps, s.Goal)
		if s.GoalMet() {
			color.New(color.FgGreen).Print("  goal met")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}
