// ABOUTME: CLI command for the weight and body composition query.
// ABOUTME: Prints weigh-ins for a date range, one line per entry.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight [start end]",
	Short: "Show weight entries for a date range",
	Long: `Show weight and body composition entries for a date range.

Dates are ISO format (YYYY-MM-DD). With no arguments the trailing 30 days
are shown; a single date shows that day only.

EXAMPLES:

  garmin weight                          # Last 30 days
  garmin weight 2025-07-19               # One day
  garmin weight 2025-07-01 2025-07-31    # One month`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var start, end string
		if len(args) == 2 {
			start, end = args[0], args[1]
		} else if len(args) == 1 {
			start = args[0]
		}

		entries, err := client.BodyComposition(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No weight entries in range.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s  %.1f kg", e.Date, e.WeightKg)
			if e.BodyFatPercent > 0 {
				fmt.Printf("  %.1f%% fat", e.BodyFatPercent)
			}
			if e.BMI > 0 {
				fmt.Printf("  BMI %.1f", e.BMI)
			}
			if e.SourceType != "" {
				faint.Printf("  (%s)", e.SourceType)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
}
