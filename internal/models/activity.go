// ABOUTME: Activity payload models for list and detail query results.
// ABOUTME: IDs and metric values are assigned by the provider.
package models

import "time"

// Activity is one entry in the account's activity list.
type Activity struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	StartTime        time.Time `json:"start_time"`
	DurationSeconds  float64   `json:"duration_seconds"`
	DistanceMeters   float64   `json:"distance_meters"`
	Calories         float64   `json:"calories"`
	AverageHeartRate float64   `json:"average_heart_rate,omitempty"`
	MaxHeartRate     float64   `json:"max_heart_rate,omitempty"`
}

// ActivityDetail is the full record for a single activity.
type ActivityDetail struct {
	Activity
	Description         string  `json:"description,omitempty"`
	LocationName        string  `json:"location_name,omitempty"`
	ElevationGainMeters float64 `json:"elevation_gain_meters,omitempty"`
	ElevationLossMeters float64 `json:"elevation_loss_meters,omitempty"`
	AverageSpeedMPS     float64 `json:"average_speed_mps,omitempty"`
	MaxSpeedMPS         float64 `json:"max_speed_mps,omitempty"`
	Steps               int     `json:"steps,omitempty"`
}
