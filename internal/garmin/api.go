// ABOUTME: The eight read-only query operations against Garmin Connect.
// ABOUTME: Each follows validate, ensure session, one GET, normalize.
package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/garmin/internal/models"
)

// API is the read-only query surface over an authenticated Garmin account.
// Client implements it against the real provider; tests substitute fakes.
type API interface {
	UserSummary(ctx context.Context, date string) (*models.DailySummary, error)
	Steps(ctx context.Context, date string) (*models.DailySteps, error)
	HeartRate(ctx context.Context, date string) (*models.HeartRateSeries, error)
	Sleep(ctx context.Context, date string) (*models.SleepSummary, error)
	SleepScore(ctx context.Context, date string) (*models.SleepScore, error)
	BodyComposition(ctx context.Context, start, end string) ([]models.WeightEntry, error)
	Activities(ctx context.Context, start, end string, limit int) ([]models.Activity, error)
	Activity(ctx context.Context, id string) (*models.ActivityDetail, error)
}

var _ API = (*Client)(nil)

// defaultActivityLimit caps the activity list when the caller gives none.
const defaultActivityLimit = 10

// Provider response envelopes. Pointer fields distinguish "absent" from
// zero-valued presence.

type summaryDTO struct {
	CalendarDate        string   `json:"calendarDate"`
	TotalSteps          *int     `json:"totalSteps"`
	DailyStepGoal       int      `json:"dailyStepGoal"`
	TotalKilocalories   *float64 `json:"totalKilocalories"`
	ActiveKilocalories  float64  `json:"activeKilocalories"`
	TotalDistanceMeters int      `json:"totalDistanceMeters"`
	FloorsAscended      float64  `json:"floorsAscended"`
	RestingHeartRate    int      `json:"restingHeartRate"`
	MinHeartRate        int      `json:"minHeartRate"`
	MaxHeartRate        int      `json:"maxHeartRate"`
	AverageStressLevel  int      `json:"averageStressLevel"`
	SleepingSeconds     int      `json:"sleepingSeconds"`
}

type heartRateDTO struct {
	CalendarDate     string     `json:"calendarDate"`
	RestingHeartRate *int       `json:"restingHeartRate"`
	MinHeartRate     int        `json:"minHeartRate"`
	MaxHeartRate     int        `json:"maxHeartRate"`
	HeartRateValues  [][]*int64 `json:"heartRateValues"`
}

type sleepEnvelope struct {
	DailySleepDTO *struct {
		ID                     *int64 `json:"id"`
		CalendarDate           string `json:"calendarDate"`
		SleepTimeSeconds       int    `json:"sleepTimeSeconds"`
		DeepSleepSeconds       int    `json:"deepSleepSeconds"`
		LightSleepSeconds      int    `json:"lightSleepSeconds"`
		RemSleepSeconds        int    `json:"remSleepSeconds"`
		AwakeSleepSeconds      int    `json:"awakeSleepSeconds"`
		SleepStartTimestampGMT int64  `json:"sleepStartTimestampGMT"`
		SleepEndTimestampGMT   int64  `json:"sleepEndTimestampGMT"`
		SleepScores            *struct {
			Overall *struct {
				Value        int    `json:"value"`
				QualifierKey string `json:"qualifierKey"`
			} `json:"overall"`
		} `json:"sleepScores"`
	} `json:"dailySleepDTO"`
}

type weightEnvelope struct {
	DateWeightList []struct {
		CalendarDate string   `json:"calendarDate"`
		Weight       float64  `json:"weight"` // grams
		BMI          float64  `json:"bmi"`
		BodyFat      float64  `json:"bodyFat"`
		BodyWater    float64  `json:"bodyWater"`
		BoneMass     float64  `json:"boneMass"`   // grams
		MuscleMass   float64  `json:"muscleMass"` // grams
		SourceType   string   `json:"sourceType"`
		Date         *float64 `json:"date"` // epoch millis, fallback when calendarDate absent
	} `json:"dateWeightList"`
}

type activityDTO struct {
	ActivityID   int64  `json:"activityId"`
	ActivityName string `json:"activityName"`
	ActivityType struct {
		TypeKey string `json:"typeKey"`
	} `json:"activityType"`
	StartTimeLocal string  `json:"startTimeLocal"`
	Duration       float64 `json:"duration"`
	Distance       float64 `json:"distance"`
	Calories       float64 `json:"calories"`
	AverageHR      float64 `json:"averageHR"`
	MaxHR          float64 `json:"maxHR"`
}

type activityDetailDTO struct {
	ActivityID      *int64 `json:"activityId"`
	ActivityName    string `json:"activityName"`
	Description     string `json:"description"`
	LocationName    string `json:"locationName"`
	ActivityTypeDTO struct {
		TypeKey string `json:"typeKey"`
	} `json:"activityTypeDTO"`
	SummaryDTO struct {
		StartTimeLocal string  `json:"startTimeLocal"`
		Duration       float64 `json:"duration"`
		Distance       float64 `json:"distance"`
		Calories       float64 `json:"calories"`
		AverageHR      float64 `json:"averageHR"`
		MaxHR          float64 `json:"maxHR"`
		ElevationGain  float64 `json:"elevationGain"`
		ElevationLoss  float64 `json:"elevationLoss"`
		AverageSpeed   float64 `json:"averageSpeed"`
		MaxSpeed       float64 `json:"maxSpeed"`
		Steps          int     `json:"steps"`
	} `json:"summaryDTO"`
}

// UserSummary returns the daily summary metrics for one calendar date.
func (c *Client) UserSummary(ctx context.Context, date string) (*models.DailySummary, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	var dto summaryDTO
	path := fmt.Sprintf("/proxy/usersummary-service/usersummary/daily/%s?calendarDate=%s",
		url.PathEscape(c.sessionDisplayName()), day)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	if dto.TotalSteps == nil && dto.TotalKilocalories == nil {
		return nil, notFoundErr("no summary data for %s", day)
	}

	s := &models.DailySummary{
		Date:                day,
		StepGoal:            dto.DailyStepGoal,
		ActiveKilocalories:  dto.ActiveKilocalories,
		TotalDistanceMeters: dto.TotalDistanceMeters,
		FloorsAscended:      dto.FloorsAscended,
		RestingHeartRate:    dto.RestingHeartRate,
		MinHeartRate:        dto.MinHeartRate,
		MaxHeartRate:        dto.MaxHeartRate,
		AverageStressLevel:  dto.AverageStressLevel,
		SleepSeconds:        dto.SleepingSeconds,
	}
	if dto.TotalSteps != nil {
		s.TotalSteps = *dto.TotalSteps
	}
	if dto.TotalKilocalories != nil {
		s.TotalKilocalories = *dto.TotalKilocalories
	}
	return s, nil
}

// Steps returns the step total and goal for one calendar date.
func (c *Client) Steps(ctx context.Context, date string) (*models.DailySteps, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	var dto summaryDTO
	path := fmt.Sprintf("/proxy/usersummary-service/usersummary/daily/%s?calendarDate=%s",
		url.PathEscape(c.sessionDisplayName()), day)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	if dto.TotalSteps == nil {
		return nil, notFoundErr("no step data for %s", day)
	}

	return &models.DailySteps{
		Date:  day,
		Steps: *dto.TotalSteps,
		Goal:  dto.DailyStepGoal,
	}, nil
}

// HeartRate returns the daily heart rate summary and time series.
func (c *Client) HeartRate(ctx context.Context, date string) (*models.HeartRateSeries, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	var dto heartRateDTO
	path := fmt.Sprintf("/proxy/wellness-service/wellness/dailyHeartRate/%s?date=%s",
		url.PathEscape(c.sessionDisplayName()), day)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	if dto.RestingHeartRate == nil && len(dto.HeartRateValues) == 0 {
		return nil, notFoundErr("no heart rate data for %s", day)
	}

	series := &models.HeartRateSeries{
		Date:         day,
		MinHeartRate: dto.MinHeartRate,
		MaxHeartRate: dto.MaxHeartRate,
	}
	if dto.RestingHeartRate != nil {
		series.RestingHeartRate = *dto.RestingHeartRate
	}
	for _, v := range dto.HeartRateValues {
		// Each value is [epoch millis, bpm]; bpm is null during gaps.
		if len(v) != 2 || v[0] == nil || v[1] == nil {
			continue
		}
		series.Samples = append(series.Samples, models.HeartRateSample{
			Timestamp: time.UnixMilli(*v[0]).UTC(),
			BPM:       int(*v[1]),
		})
	}
	sort.Slice(series.Samples, func(i, j int) bool {
		return series.Samples[i].Timestamp.Before(series.Samples[j].Timestamp)
	})
	return series, nil
}

// Sleep returns sleep stage durations and timestamps for one night.
func (c *Client) Sleep(ctx context.Context, date string) (*models.SleepSummary, error) {
	dto, day, err := c.fetchSleep(ctx, date)
	if err != nil {
		return nil, err
	}

	d := dto.DailySleepDTO
	return &models.SleepSummary{
		Date:              day,
		SleepStart:        time.UnixMilli(d.SleepStartTimestampGMT).UTC(),
		SleepEnd:          time.UnixMilli(d.SleepEndTimestampGMT).UTC(),
		TotalSleepSeconds: d.SleepTimeSeconds,
		DeepSeconds:       d.DeepSleepSeconds,
		LightSeconds:      d.LightSleepSeconds,
		RemSeconds:        d.RemSleepSeconds,
		AwakeSeconds:      d.AwakeSleepSeconds,
	}, nil
}

// SleepScore returns the nightly sleep quality score and qualifier.
func (c *Client) SleepScore(ctx context.Context, date string) (*models.SleepScore, error) {
	dto, day, err := c.fetchSleep(ctx, date)
	if err != nil {
		return nil, err
	}

	scores := dto.DailySleepDTO.SleepScores
	if scores == nil || scores.Overall == nil {
		return nil, notFoundErr("no sleep score for %s", day)
	}
	return &models.SleepScore{
		Date:      day,
		Score:     scores.Overall.Value,
		Qualifier: strings.ToLower(scores.Overall.QualifierKey),
	}, nil
}

func (c *Client) fetchSleep(ctx context.Context, date string) (*sleepEnvelope, string, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, "", err
	}
	if err := c.ensureSession(ctx); err != nil {
		return nil, "", err
	}

	var dto sleepEnvelope
	path := fmt.Sprintf("/proxy/wellness-service/wellness/dailySleepData/%s?date=%s&nonSleepBufferMinutes=60",
		url.PathEscape(c.sessionDisplayName()), day)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, "", err
	}
	if dto.DailySleepDTO == nil || dto.DailySleepDTO.ID == nil {
		return nil, "", notFoundErr("no sleep data for %s", day)
	}
	return &dto, day, nil
}

// BodyComposition returns weigh-ins in the given date range, oldest first.
// An empty list is a valid result, not an error.
func (c *Client) BodyComposition(ctx context.Context, start, end string) ([]models.WeightEntry, error) {
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	var dto weightEnvelope
	path := fmt.Sprintf("/proxy/weight-service/weight/dateRange?startDate=%s&endDate=%s", from, to)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}

	entries := make([]models.WeightEntry, 0, len(dto.DateWeightList))
	for _, w := range dto.DateWeightList {
		day := w.CalendarDate
		if day == "" && w.Date != nil {
			day = time.UnixMilli(int64(*w.Date)).UTC().Format(DateLayout)
		}
		entries = append(entries, models.WeightEntry{
			Date:           day,
			WeightKg:       w.Weight / 1000,
			BMI:            w.BMI,
			BodyFatPercent: w.BodyFat,
			BodyWater:      w.BodyWater,
			BoneMassKg:     w.BoneMass / 1000,
			MuscleMassKg:   w.MuscleMass / 1000,
			SourceType:     w.SourceType,
		})
	}
	return entries, nil
}

// Activities returns activity summaries in the given range, most recent
// first. Defaults to the trailing 30 days and 10 entries.
func (c *Client) Activities(ctx context.Context, start, end string, limit int) ([]models.Activity, error) {
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	var dtos []activityDTO
	path := fmt.Sprintf("/proxy/activitylist-service/activities/search/activities?start=0&limit=%d&startDate=%s&endDate=%s",
		limit, from, to)
	if err := c.getJSON(ctx, path, &dtos); err != nil {
		return nil, err
	}

	activities := make([]models.Activity, 0, len(dtos))
	for _, a := range dtos {
		activities = append(activities, models.Activity{
			ID:               a.ActivityID,
			Name:             a.ActivityName,
			Type:             a.ActivityType.TypeKey,
			StartTime:        parseProviderTime(a.StartTimeLocal),
			DurationSeconds:  a.Duration,
			DistanceMeters:   a.Distance,
			Calories:         a.Calories,
			AverageHeartRate: a.AverageHR,
			MaxHeartRate:     a.MaxHR,
		})
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].StartTime.After(activities[j].StartTime)
	})
	return activities, nil
}

// Activity returns the full record for one activity by provider-assigned id.
func (c *Client) Activity(ctx context.Context, id string) (*models.ActivityDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, validationErr("activity id must not be empty")
	}

	var dto activityDetailDTO
	path := fmt.Sprintf("/proxy/activity-service/activity/%s", url.PathEscape(id))
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	if dto.ActivityID == nil {
		return nil, notFoundErr("no activity with id %s", id)
	}

	return &models.ActivityDetail{
		Activity: models.Activity{
			ID:               *dto.ActivityID,
			Name:             dto.ActivityName,
			Type:             dto.ActivityTypeDTO.TypeKey,
			StartTime:        parseProviderTime(dto.SummaryDTO.StartTimeLocal),
			DurationSeconds:  dto.SummaryDTO.Duration,
			DistanceMeters:   dto.SummaryDTO.Distance,
			Calories:         dto.SummaryDTO.Calories,
			AverageHeartRate: dto.SummaryDTO.AverageHR,
			MaxHeartRate:     dto.SummaryDTO.MaxHR,
		},
		Description:         dto.Description,
		LocationName:        dto.LocationName,
		ElevationGainMeters: dto.SummaryDTO.ElevationGain,
		ElevationLossMeters: dto.SummaryDTO.ElevationLoss,
		AverageSpeedMPS:     dto.SummaryDTO.AverageSpeed,
		MaxSpeedMPS:         dto.SummaryDTO.MaxSpeed,
		Steps:               dto.SummaryDTO.Steps,
	}, nil
}

// sessionDisplayName reads the cached display name established at login.
func (c *Client) sessionDisplayName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayName
}

// parseProviderTime handles the timestamp layouts the provider emits.
func parseProviderTime(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.0",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func decodeJSON(body []byte, out any) error {
	return json.Unmarshal(body, out)
}
