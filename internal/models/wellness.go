// ABOUTME: Wellness payload models for daily summary, steps, heart rate,
// ABOUTME: sleep, and body composition query results.
package models

import (
	"fmt"
	"time"
)

// DailySummary is the per-day account summary.
type DailySummary struct {
	Date                string  `json:"date"`
	TotalSteps          int     `json:"total_steps"`
	StepGoal            int     `json:"step_goal"`
	TotalKilocalories   float64 `json:"total_kilocalories"`
	ActiveKilocalories  float64 `json:"active_kilocalories"`
	TotalDistanceMeters int     `json:"total_distance_meters"`
	FloorsAscended      float64 `json:"floors_ascended"`
	RestingHeartRate    int     `json:"resting_heart_rate"`
	MinHeartRate        int     `json:"min_heart_rate"`
	MaxHeartRate        int     `json:"max_heart_rate"`
	AverageStressLevel  int     `json:"average_stress_level"`
	SleepSeconds        int     `json:"sleep_seconds"`
}

// DailySteps is the step total and goal for one day.
type DailySteps struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
	Goal  int    `json:"goal"`
}

// GoalMet reports whether the step total reached the daily goal.
func (d *DailySteps) GoalMet() bool {
	return d.Goal > 0 && d.Steps >= d.Goal
}

// HeartRateSample is one (timestamp, bpm) point in a daily series.
type HeartRateSample struct {
	Timestamp time.Time `json:"timestamp"`
	BPM       int       `json:"bpm"`
}

// HeartRateSeries is the daily heart rate summary plus its time series.
type HeartRateSeries struct {
	Date             string            `json:"date"`
	RestingHeartRate int               `json:"resting_heart_rate"`
	MinHeartRate     int               `json:"min_heart_rate"`
	MaxHeartRate     int               `json:"max_heart_rate"`
	Samples          []HeartRateSample `json:"samples"`
}

// SleepSummary is one night's sleep stages and timestamps.
type SleepSummary struct {
	Date              string    `json:"date"`
	SleepStart        time.Time `json:"sleep_start"`
	SleepEnd          time.Time `json:"sleep_end"`
	TotalSleepSeconds int       `json:"total_sleep_seconds"`
	DeepSeconds       int       `json:"deep_seconds"`
	LightSeconds      int       `json:"light_seconds"`
	RemSeconds        int       `json:"rem_seconds"`
	AwakeSeconds      int       `json:"awake_seconds"`
}

// SleepScore is the provider's nightly sleep quality rating.
type SleepScore struct {
	Date      string `json:"date"`
	Score     int    `json:"score"`
	Qualifier string `json:"qualifier"`
}

// WeightEntry is one weigh-in with body composition metrics.
type WeightEntry struct {
	Date           string  `json:"date"`
	WeightKg       float64 `json:"weight_kg"`
	BMI            float64 `json:"bmi,omitempty"`
	BodyFatPercent float64 `json:"body_fat_percent,omitempty"`
	BodyWater      float64 `json:"body_water_percent,omitempty"`
	BoneMassKg     float64 `json:"bone_mass_kg,omitempty"`
	MuscleMassKg   float64 `json:"muscle_mass_kg,omitempty"`
	SourceType     string  `json:"source_type,omitempty"`
}

// FormatDuration renders a second count as "7h 32m" for CLI output.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
