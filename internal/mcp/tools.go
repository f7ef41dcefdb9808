// ABOUTME: MCP tool implementations for Garmin Connect queries.
// ABOUTME: Eight read-only tools, each one provider round-trip.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// user_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user_summary",
		Description: "Get the daily activity summary (steps, calories, distance, heart rate, stress) for a date",
	}, s.handleUserSummary)

	// user_steps
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user_steps",
		Description: "Get the step total and step goal for a date",
	}, s.handleSteps)

	// user_heart_rate
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user_heart_rate",
		Description: "Get the daily heart rate summary and time series for a date",
	}, s.handleHeartRate)

	// user_sleep
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user_sleep",
		Description: "Get sleep stage durations and timestamps for a date",
	}, s.handleSleep)

	// user_sleep_score
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user_sleep_score",
		Description: "Get the sleep quality score and qualifier for a date",
	}, s.handleSleepScore)

	// user_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user_weight",
		Description: "Get weight and body composition entries for a date range",
	}, s.handleWeight)

	// user_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user_activities",
		Description: "List activities in a date range, most recent first",
	}, s.handleActivities)

	// user_activity_details
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user_activity_details",
		Description: "Get full metadata and metrics for one activity by id",
	}, s.handleActivityDetails)
}

// Tool input types

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD). Defaults to today"`
}

type rangeInput struct {
	Start string `json:"start,omitempty" jsonschema:"Range start date (YYYY-MM-DD). Defaults to 30 days ago"`
	End   string `json:"end,omitempty" jsonschema:"Range end date (YYYY-MM-DD). Defaults to start when given, else today"`
}

type activitiesInput struct {
	Start string `json:"start,omitempty" jsonschema:"Range start date (YYYY-MM-DD). Defaults to 30 days ago"`
	End   string `json:"end,omitempty" jsonschema:"Range end date (YYYY-MM-DD). Defaults to today"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max activities to return (default 10)"`
}

type activityDetailsInput struct {
	ActivityID string `json:"activity_id" jsonschema:"Provider-assigned activity id"`
}

// Tool handlers

func (s *Server) handleUserSummary(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	summary, err := s.client.UserSummary(ctx, input.Date)
	if err != nil {
		return nil, nil, err
	}
	return nil, summary, nil
}

func (s *Server) handleSteps(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	steps, err := s.client.Steps(ctx, input.Date)
	if err != nil {
		return nil, nil, err
	}
	return nil, steps, nil
}

func (s *Server) handleHeartRate(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	series, err := s.client.HeartRate(ctx, input.Date)
	if err != nil {
		return nil, nil, err
	}
	return nil, series, nil
}

func (s *Server) handleSleep(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	sleep, err := s.client.Sleep(ctx, input.Date)
	if err != nil {
		return nil, nil, err
	}
	return nil, sleep, nil
}

func (s *Server) handleSleepScore(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	score, err := s.client.SleepScore(ctx, input.Date)
	if err != nil {
		return nil, nil, err
	}
	return nil, score, nil
}

func (s *Server) handleWeight(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, any, error) {
	entries, err := s.client.BodyComposition(ctx, input.Start, input.End)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, map[string]any{"message": "No weight entries in range."}, nil
	}
	return nil, entries, nil
}

func (s *Server) handleActivities(ctx context.Context, req *mcp.CallToolRequest, input activitiesInput) (*mcp.CallToolResult, any, error) {
	activities, err := s.client.Activities(ctx, input.Start, input.End, input.Limit)
	if err != nil {
		return nil, nil, err
	}
	if len(activities) == 0 {
		return nil, map[string]any{"message": "No activities in range."}, nil
	}
	return nil, activities, nil
}

func (s *Server) handleActivityDetails(ctx context.Context, req *mcp.CallToolRequest, input activityDetailsInput) (*mcp.CallToolResult, any, error) {
	detail, err := s.client.Activity(ctx, input.ActivityID)
	if err != nil {
		return nil, nil, err
	}
	return nil, detail, nil
}
