// ABOUTME: MCP resource implementations for Garmin Connect data.
// ABOUTME: Provides garmin://summary/today and garmin://activities/recent.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/garmin/internal/garmin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// garmin://summary/today - today's daily summary
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "garmin://summary/today",
		Name:        "Today's Summary",
		Description: "Daily activity summary for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// garmin://activities/recent - last 10 activities
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "garmin://activities/recent",
		Name:        "Recent Activities",
		Description: "Last 10 activities, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentActivitiesResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.client.UserSummary(ctx, "")
	if err != nil {
		// A day with no recorded data yet is an empty resource, not a failure.
		if errors.Is(err, garmin.ErrNotFound) {
			return jsonResource("garmin://summary/today", map[string]any{
				"message": "No summary data recorded today.",
			})
		}
		return nil, fmt.Errorf("failed to fetch summary: %w", err)
	}

	return jsonResource("garmin://summary/today", summary)
}

func (s *Server) handleRecentActivitiesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	activities, err := s.client.Activities(ctx, "", "", 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	result := map[string]any{
		"activities": activities,
		"count":      len(activities),
	}
	return jsonResource("garmin://activities/recent", result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
