package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with fitroutine tools: training day mapping, week progress,
// and, when the service has them, the DB schema and the caller's current week overview.
// Used by the main backend when mounting MCP at /mcp and by cmd/routine_mcp over stdio.
func NewServer(svc *ContextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitroutine-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "map_training_days",
		Description: "Maps a weekly training frequency (days_per_week, 1-7) to weekday labels spread across Monday-Sunday, and resolves each label to its date within the week starting at start_date (YYYY-MM-DD). Use when planning which days of a week to train.",
	}, h.MapTrainingDaysTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "compute_progress",
		Description: "Returns the share of the week's training days already completed as of now. A day counts as completed only after its calendar day is over. Args: days_per_week, start_date (YYYY-MM-DD); optional: now (RFC3339 or YYYY-MM-DD).",
	}, h.ComputeProgressTool())

	if svc.schema != nil {
		mcp.AddTool(s, &mcp.Tool{
			Name:        "get_fitroutine_schema",
			Description: "Returns the DB schema for the fitroutine tables (weekly_routine, user_profile, body_measurement): table names, columns, types, nullable, default.",
		}, h.GetSchemaTool())
	}

	if svc.overview != nil && svc.sessions != nil {
		mcp.AddTool(s, &mcp.Tool{
			Name:        "get_current_overview",
			Description: "Returns the current weekly routine of the authenticated user: labeled training days (Day N - Weekday), dates, completed flags, muscle groups and overall progress. Requires the Authorization bearer header on the MCP connection.",
		}, h.GetCurrentOverviewTool())
	}

	return s
}
