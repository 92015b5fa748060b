package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/fitroutine/internal/auth"
	"github.com/2beens/fitroutine/internal/schedule"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetSchemaTool returns the MCP tool handler for get_fitroutine_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// MapTrainingDaysInput is the input for map_training_days.
type MapTrainingDaysInput struct {
	DaysPerWeek int    `json:"days_per_week" jsonschema:"Training days per week (1-7)"`
	StartDate   string `json:"start_date,omitempty" jsonschema:"First day of the week window (YYYY-MM-DD), defaults to today"`
}

// MapTrainingDaysTool returns the MCP tool handler for map_training_days.
func (h *Handler) MapTrainingDaysTool() func(context.Context, *mcp.CallToolRequest, MapTrainingDaysInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in MapTrainingDaysInput) (*mcp.CallToolResult, any, error) {
		start, errRes := h.parseStartDate(in.StartDate)
		if errRes != nil {
			return errRes, nil, nil
		}
		resp, err := h.service.MapTrainingDays(in.DaysPerWeek, start)
		if err != nil {
			return errorResult("Error mapping training days: " + err.Error()), nil, nil
		}
		return jsonResult(resp), nil, nil
	}
}

// ComputeProgressInput is the input for compute_progress.
type ComputeProgressInput struct {
	DaysPerWeek int    `json:"days_per_week" jsonschema:"Training days per week (1-7)"`
	StartDate   string `json:"start_date,omitempty" jsonschema:"First day of the week window (YYYY-MM-DD), defaults to today"`
	Now         string `json:"now,omitempty" jsonschema:"Reference instant (RFC3339 or YYYY-MM-DD), defaults to the current time"`
}

// ComputeProgressTool returns the MCP tool handler for compute_progress.
func (h *Handler) ComputeProgressTool() func(context.Context, *mcp.CallToolRequest, ComputeProgressInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ComputeProgressInput) (*mcp.CallToolResult, any, error) {
		start, errRes := h.parseStartDate(in.StartDate)
		if errRes != nil {
			return errRes, nil, nil
		}

		now := h.service.Now()
		if in.Now != "" {
			t, err := schedule.ParseInstant(in.Now)
			if err != nil {
				return errorResult("Invalid now: use RFC3339 or YYYY-MM-DD"), nil, nil
			}
			now = t
		}

		resp, err := h.service.ComputeProgress(in.DaysPerWeek, start, now)
		if err != nil {
			return errorResult("Error computing progress: " + err.Error()), nil, nil
		}
		return jsonResult(resp), nil, nil
	}
}

// GetCurrentOverviewTool returns the MCP tool handler for get_current_overview.
// The user comes from the Authorization header of the MCP HTTP request.
func (h *Handler) GetCurrentOverviewTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		token := ""
		if req != nil && req.Extra != nil && req.Extra.Header != nil {
			token = auth.BearerToken(req.Extra.Header.Get("Authorization"))
		}
		overview, err := h.service.CurrentOverview(ctx, token)
		if err != nil {
			return errorResult("Error fetching overview: " + err.Error()), nil, nil
		}
		return jsonResult(overview), nil, nil
	}
}

func (h *Handler) parseStartDate(s string) (time.Time, *mcp.CallToolResult) {
	if s == "" {
		return schedule.DateOnly(h.service.Now()), nil
	}
	start, err := schedule.ParseCalendarDate(s)
	if err != nil {
		return time.Time{}, errorResult("Invalid start_date: use YYYY-MM-DD")
	}
	return start, nil
}
