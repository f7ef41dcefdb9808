// ABOUTME: Tests for the Garmin client session lifecycle and query façade.
// ABOUTME: Runs against an httptest fixture server standing in for Connect.
package garmin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fixture is a local stand-in for the Garmin Connect SSO and data endpoints.
type fixture struct {
	mu         sync.Mutex
	authCalls  int
	dataCalls  int
	rejectAuth bool
	expireNext bool

	// Per-endpoint body overrides for degraded-provider cases.
	summaryOverride string
	sleepOverride   string

	srv *httptest.Server
}

func (f *fixture) setSummaryBody(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaryOverride = body
}

func (f *fixture) setSleepBody(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sleepOverride = body
}

func (f *fixture) counts() (auth, data int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authCalls, f.dataCalls
}

const summaryBody = `{
	"calendarDate": "2025-07-19",
	"totalSteps": 8342,
	"dailyStepGoal": 10000,
	"totalKilocalories": 2210.0,
	"activeKilocalories": 450.0,
	"totalDistanceMeters": 6120,
	"restingHeartRate": 52,
	"minHeartRate": 48,
	"maxHeartRate": 141,
	"averageStressLevel": 27,
	"sleepingSeconds": 27000
}`

const sleepBody = `{
	"dailySleepDTO": {
		"id": 1721347200000,
		"calendarDate": "2025-07-19",
		"sleepTimeSeconds": 27000,
		"deepSleepSeconds": 5400,
		"lightSleepSeconds": 14400,
		"remSleepSeconds": 7200,
		"awakeSleepSeconds": 1800,
		"sleepStartTimestampGMT": 1721340000000,
		"sleepEndTimestampGMT": 1721368800000,
		"sleepScores": {
			"overall": {"value": 82, "qualifierKey": "GOOD"}
		}
	}
}`

// setupFixture starts the fixture server and returns a client wired to it.
func setupFixture(t *testing.T) (*Client, *fixture) {
	t.Helper()

	f := &fixture{}
	mux := http.NewServeMux()

	mux.HandleFunc("/sso/signin", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.authCalls++
		reject := f.rejectAuth
		f.mu.Unlock()
		if reject {
			fmt.Fprint(w, `<html>locked out</html>`)
			return
		}
		fmt.Fprint(w, `var response_url = "?ticket=ST-0123456789";`)
	})
	mux.HandleFunc("/modern/", func(w http.ResponseWriter, r *http.Request) {
		// Ticket exchange; session cookies are irrelevant to the fixture.
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/modern/proxy/userprofile-service/socialProfile", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"displayName": "testuser"}`)
	})

	data := func(body string, override *string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.dataCalls++
			expired := f.expireNext
			f.expireNext = false
			resp := body
			if override != nil && *override != "" {
				resp = *override
			}
			f.mu.Unlock()
			if expired {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprint(w, resp)
		}
	}

	mux.HandleFunc("/modern/proxy/usersummary-service/usersummary/daily/testuser", data(summaryBody, &f.summaryOverride))
	mux.HandleFunc("/modern/proxy/wellness-service/wellness/dailyHeartRate/testuser", data(`{
		"calendarDate": "2025-07-19",
		"restingHeartRate": 52,
		"minHeartRate": 48,
		"maxHeartRate": 141,
		"heartRateValues": [[1721376000000, 55], [1721376120000, null], [1721375880000, 58]]
	}`, nil))
	mux.HandleFunc("/modern/proxy/wellness-service/wellness/dailySleepData/testuser", data(sleepBody, &f.sleepOverride))
	mux.HandleFunc("/modern/proxy/weight-service/weight/dateRange", data(`{
		"dateWeightList": [
			{"calendarDate": "2025-07-18", "weight": 82500.0, "bmi": 24.1, "bodyFat": 18.2, "sourceType": "INDEX_SCALE"}
		]
	}`, nil))
	mux.HandleFunc("/modern/proxy/activitylist-service/activities/search/activities", data(`[
		{"activityId": 111, "activityName": "Morning Run", "activityType": {"typeKey": "running"},
		 "startTimeLocal": "2025-07-18 06:30:00", "duration": 1800.0, "distance": 5200.0, "calories": 320.0},
		{"activityId": 222, "activityName": "Evening Ride", "activityType": {"typeKey": "cycling"},
		 "startTimeLocal": "2025-07-19 18:00:00", "duration": 3600.0, "distance": 24000.0, "calories": 610.0}
	]`, nil))
	mux.HandleFunc("/modern/proxy/activity-service/activity/111", data(`{
		"activityId": 111, "activityName": "Morning Run", "locationName": "Chicago",
		"activityTypeDTO": {"typeKey": "running"},
		"summaryDTO": {"startTimeLocal": "2025-07-18 06:30:00", "duration": 1800.0,
			"distance": 5200.0, "calories": 320.0, "averageHR": 142.0, "maxHR": 171.0,
			"elevationGain": 40.0, "steps": 4800}
	}`, nil))
	mux.HandleFunc("/modern/proxy/activity-service/activity/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.dataCalls++
		f.mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	client, err := NewClient(Credentials{Username: "test@example.com", Password: "hunter2"},
		"garmin.com", nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	client.ssoURL = f.srv.URL + "/sso"
	client.apiURL = f.srv.URL + "/modern"
	return client, f
}

func TestNewClientMissingCredentials(t *testing.T) {
	_, err := NewClient(Credentials{}, "garmin.com", nil)
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("Expected ErrAuthentication, got %v", err)
	}
}

func TestSessionReuse(t *testing.T) {
	client, f := setupFixture(t)
	ctx := context.Background()

	if _, err := client.Steps(ctx, "2025-07-19"); err != nil {
		t.Fatalf("First query failed: %v", err)
	}
	if _, err := client.UserSummary(ctx, "2025-07-19"); err != nil {
		t.Fatalf("Second query failed: %v", err)
	}

	auth, _ := f.counts()
	if auth != 1 {
		t.Errorf("Expected 1 authentication round-trip, got %d", auth)
	}
}

func TestStepsScenario(t *testing.T) {
	client, _ := setupFixture(t)

	s, err := client.Steps(context.Background(), "2025-07-19")
	if err != nil {
		t.Fatalf("Steps failed: %v", err)
	}

	if s.Date != "2025-07-19" {
		t.Errorf("Date = %s, want 2025-07-19", s.Date)
	}
	if s.Steps != 8342 {
		t.Errorf("Steps = %d, want 8342", s.Steps)
	}
	if s.Goal != 10000 {
		t.Errorf("Goal = %d, want 10000", s.Goal)
	}
}

func TestValidationBeforeNetwork(t *testing.T) {
	client, f := setupFixture(t)
	ctx := context.Background()

	calls := []struct {
		name string
		fn   func() error
	}{
		{"summary", func() error { _, err := client.UserSummary(ctx, "not-a-date"); return err }},
		{"steps", func() error { _, err := client.Steps(ctx, "07/19/2025"); return err }},
		{"heartrate", func() error { _, err := client.HeartRate(ctx, "2025-7-19x"); return err }},
		{"sleep", func() error { _, err := client.Sleep(ctx, "yesterday"); return err }},
		{"sleepscore", func() error { _, err := client.SleepScore(ctx, "2025/07/19"); return err }},
		{"weight range inverted", func() error {
			_, err := client.BodyComposition(ctx, "2025-07-31", "2025-07-01")
			return err
		}},
		{"activities end only", func() error {
			_, err := client.Activities(ctx, "", "2025-07-31", 5)
			return err
		}},
		{"activity empty id", func() error { _, err := client.Activity(ctx, "   "); return err }},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}

	auth, data := f.counts()
	if auth != 0 || data != 0 {
		t.Errorf("Expected zero network calls, got auth=%d data=%d", auth, data)
	}
}

func TestAuthenticationRejected(t *testing.T) {
	client, f := setupFixture(t)
	f.rejectAuth = true

	_, err := client.Steps(context.Background(), "2025-07-19")
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("Expected ErrAuthentication, got %v", err)
	}
}

func TestConnectivityError(t *testing.T) {
	client, f := setupFixture(t)
	f.srv.Close()

	_, err := client.Steps(context.Background(), "2025-07-19")
	if !errors.Is(err, ErrConnectivity) {
		t.Errorf("Expected ErrConnectivity, got %v", err)
	}
}

func TestSessionExpiryReauthenticatesOnce(t *testing.T) {
	client, f := setupFixture(t)
	ctx := context.Background()

	// Establish the session, then force the next data response to 401.
	if _, err := client.Steps(ctx, "2025-07-19"); err != nil {
		t.Fatalf("Initial query failed: %v", err)
	}
	f.mu.Lock()
	f.expireNext = true
	f.mu.Unlock()

	s, err := client.Steps(ctx, "2025-07-19")
	if err != nil {
		t.Fatalf("Query after expiry failed: %v", err)
	}
	if s.Steps != 8342 {
		t.Errorf("Steps = %d, want 8342", s.Steps)
	}

	auth, _ := f.counts()
	if auth != 2 {
		t.Errorf("Expected exactly 2 authentication round-trips, got %d", auth)
	}
}

func TestUserSummaryDeterministic(t *testing.T) {
	client, _ := setupFixture(t)
	ctx := context.Background()

	first, err := client.UserSummary(ctx, "2025-07-19")
	if err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	second, err := client.UserSummary(ctx, "2025-07-19")
	if err != nil {
		t.Fatalf("Second call failed: %v", err)
	}

	if *first != *second {
		t.Errorf("Consecutive summaries differ: %+v vs %+v", first, second)
	}
}

func TestHeartRateSamples(t *testing.T) {
	client, _ := setupFixture(t)

	hr, err := client.HeartRate(context.Background(), "2025-07-19")
	if err != nil {
		t.Fatalf("HeartRate failed: %v", err)
	}

	if hr.RestingHeartRate != 52 {
		t.Errorf("RestingHeartRate = %d, want 52", hr.RestingHeartRate)
	}
	// The null bpm gap is dropped and samples are ordered by time.
	if len(hr.Samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(hr.Samples))
	}
	if !hr.Samples[0].Timestamp.Before(hr.Samples[1].Timestamp) {
		t.Error("Samples not in chronological order")
	}
	if hr.Samples[0].BPM != 58 {
		t.Errorf("First sample BPM = %d, want 58", hr.Samples[0].BPM)
	}
}

func TestSleepAndScore(t *testing.T) {
	client, _ := setupFixture(t)
	ctx := context.Background()

	s, err := client.Sleep(ctx, "2025-07-19")
	if err != nil {
		t.Fatalf("Sleep failed: %v", err)
	}
	if s.TotalSleepSeconds != 27000 {
		t.Errorf("TotalSleepSeconds = %d, want 27000", s.TotalSleepSeconds)
	}
	if s.DeepSeconds != 5400 {
		t.Errorf("DeepSeconds = %d, want 5400", s.DeepSeconds)
	}
	if s.SleepStart.IsZero() || s.SleepEnd.IsZero() {
		t.Error("Expected non-zero sleep window timestamps")
	}

	score, err := client.SleepScore(ctx, "2025-07-19")
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if score.Score != 82 {
		t.Errorf("Score = %d, want 82", score.Score)
	}
	if score.Qualifier != "good" {
		t.Errorf("Qualifier = %q, want %q", score.Qualifier, "good")
	}
}

func TestBodyComposition(t *testing.T) {
	client, _ := setupFixture(t)

	entries, err := client.BodyComposition(context.Background(), "2025-07-01", "2025-07-31")
	if err != nil {
		t.Fatalf("BodyComposition failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].WeightKg != 82.5 {
		t.Errorf("WeightKg = %.1f, want 82.5 (grams converted)", entries[0].WeightKg)
	}
	if entries[0].BodyFatPercent != 18.2 {
		t.Errorf("BodyFatPercent = %.1f, want 18.2", entries[0].BodyFatPercent)
	}
}

func TestActivitiesMostRecentFirst(t *testing.T) {
	client, _ := setupFixture(t)

	activities, err := client.Activities(context.Background(), "", "", 0)
	if err != nil {
		t.Fatalf("Activities failed: %v", err)
	}

	if len(activities) != 2 {
		t.Fatalf("Expected 2 activities, got %d", len(activities))
	}
	if activities[0].ID != 222 {
		t.Errorf("First activity = %d, want 222 (most recent)", activities[0].ID)
	}
	if activities[1].Type != "running" {
		t.Errorf("Second activity type = %s, want running", activities[1].Type)
	}
}

func TestActivityDetail(t *testing.T) {
	client, _ := setupFixture(t)

	a, err := client.Activity(context.Background(), "111")
	if err != nil {
		t.Fatalf("Activity failed: %v", err)
	}

	if a.ID != 111 {
		t.Errorf("ID = %d, want 111", a.ID)
	}
	if a.LocationName != "Chicago" {
		t.Errorf("LocationName = %s, want Chicago", a.LocationName)
	}
	if a.Steps != 4800 {
		t.Errorf("Steps = %d, want 4800", a.Steps)
	}
}

func TestActivityNotFound(t *testing.T) {
	client, _ := setupFixture(t)

	_, err := client.Activity(context.Background(), "123456789")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestNullBodyIsNotFound(t *testing.T) {
	client, f := setupFixture(t)
	f.setSummaryBody("null")

	_, err := client.Steps(context.Background(), "2025-07-19")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for null body, got %v", err)
	}
}

func TestUndecodableBodyIsProviderError(t *testing.T) {
	client, f := setupFixture(t)
	f.setSummaryBody("<html>down for maintenance</html>")

	_, err := client.Steps(context.Background(), "2025-07-19")
	if !errors.Is(err, ErrProvider) {
		t.Errorf("Expected ErrProvider for undecodable body, got %v", err)
	}
}

func TestSleepNullEnvelopeIsNotFound(t *testing.T) {
	client, f := setupFixture(t)
	f.setSleepBody(`{"dailySleepDTO": null}`)
	ctx := context.Background()

	if _, err := client.Sleep(ctx, "2025-07-19"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Sleep: expected ErrNotFound for null envelope, got %v", err)
	}
	if _, err := client.SleepScore(ctx, "2025-07-19"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SleepScore: expected ErrNotFound for null envelope, got %v", err)
	}
}
