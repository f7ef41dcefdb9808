// ABOUTME: CLI commands for the activity list and activity detail queries.
// ABOUTME: Lists recent activities and prints one activity in full.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/garmin/internal/models"
	"github.com/spf13/cobra"
)

var (
	activitiesStart string
	activitiesEnd   string
	activitiesLimit int
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List recent activities",
	Long: `List activities in a date range, most recent first.

With no flags the trailing 30 days are listed, capped at 10 entries.

EXAMPLES:

  garmin activities
  garmin activities --limit 20
  garmin activities --start 2025-07-01 --end 2025-07-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := client.Activities(cmd.Context(), activitiesStart, activitiesEnd, activitiesLimit)
		if err != nil {
			return err
		}

		if len(activities) == 0 {
			fmt.Println("No activities in range.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			fmt.Printf("%d  %s  %-12s  %s",
				a.ID, a.StartTime.Format("2006-01-02 15:04"), a.Type, a.Name)
			faint.Printf("  %s, %.2f km\n",
				models.FormatDuration(int(a.DurationSeconds)), a.DistanceMeters/1000)
		}
		return nil
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity <id>",
	Short: "Show one activity in full",
	Long: `Show full metadata and metrics for one activity.

The id is the provider-assigned activity identifier shown by
'garmin activities'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := client.Activity(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("%s (%s)\n", a.Name, a.Type)
		fmt.Printf("  id        %d\n", a.ID)
		fmt.Printf("  start     %s\n", a.StartTime.Format("2006-01-02 15:04"))
		fmt.Printf("  duration  %s\n", models.FormatDuration(int(a.DurationSeconds)))
		fmt.Printf("  distance  %.2f km\n", a.DistanceMeters/1000)
		fmt.Printf("  calories  %.0f kcal\n", a.Calories)
		if a.AverageHeartRate > 0 {
			fmt.Printf("  heart     %.0f avg / %.0f max bpm\n", a.AverageHeartRate, a.MaxHeartRate)
		}
		if a.ElevationGainMeters > 0 {
			fmt.Printf("  climb     +%.0f / -%.0f m\n", a.ElevationGainMeters, a.ElevationLossMeters)
		}
		if a.LocationName != "" {
			fmt.Printf("  location  %s\n", a.LocationName)
		}
		if a.Description != "" {
			fmt.Printf("  notes     %s\n", a.Description)
		}
		return nil
	},
}

func init() {
	activitiesCmd.Flags().StringVar(&activitiesStart, "start", "", "range start date (YYYY-MM-DD)")
	activitiesCmd.Flags().StringVar(&activitiesEnd, "end", "", "range end date (YYYY-MM-DD)")
	activitiesCmd.Flags().IntVarP(&activitiesLimit, "limit", "n", 0, "max activities to list (default 10)")
	rootCmd.AddCommand(activitiesCmd)
	rootCmd.AddCommand(activityCmd)
}
