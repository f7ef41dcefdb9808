// ABOUTME: CLI command for the daily heart rate query.
// ABOUTME: Prints the resting/min/max summary and sample count.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var hrSamples bool

var heartrateCmd = &cobra.Command{
	Use:     "heartrate [date]",
	Aliases: []string{"hr"},
	Short:   "Show heart rate data for a date",
	Long: `Show the daily heart rate summary for a calendar date.

The date is ISO format (YYYY-MM-DD) and defaults to today. Pass --samples
to print the full (timestamp, bpm) time series.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hr, err := client.HeartRate(cmd.Context(), dateArg(args))
		if err != nil {
			return err
		}

		fmt.Printf("%s  resting %d bpm, range %d-%d bpm, %d samples\n",
			hr.Date, hr.RestingHeartRate, hr.MinHeartRate, hr.MaxHeartRate, len(hr.Samples))

		if hrSamples {
			faint := color.New(color.Faint)
			for _, s := range hr.Samples {
				faint.Printf("  %s  %d\n", s.Timestamp.Format("15:04"), s.BPM)
			}
		}
		return nil
	},
}

func init() {
	heartrateCmd.Flags().BoolVar(&hrSamples, "samples", false, "print the full time series")
	rootCmd.AddCommand(heartrateCmd)
}
