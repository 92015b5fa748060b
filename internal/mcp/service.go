package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitroutine/internal/auth"
	"github.com/2beens/fitroutine/internal/routine"
)

var ErrUnauthorized = errors.New("valid bearer token required")

type overviewService interface {
	Overview(ctx context.Context, userID int, token string) (*routine.WeekOverview, error)
}

// contextService is what the tool handlers need. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	MapTrainingDays(daysPerWeek int, startDate time.Time) (*routine.ScheduleResponse, error)
	ComputeProgress(daysPerWeek int, startDate, now time.Time) (*routine.ProgressResponse, error)
	CurrentOverview(ctx context.Context, token string) (*routine.WeekOverview, error)
	Now() time.Time
}

// ContextService implements the tool logic on top of the routine service.
// schema, overview and sessions are optional.
type ContextService struct {
	routines *routine.Service
	schema   SchemaRepo
	overview overviewService
	sessions auth.Checker
}

func NewContextService(routines *routine.Service, schemaRepo SchemaRepo, overview overviewService, sessions auth.Checker) *ContextService {
	return &ContextService{
		routines: routines,
		schema:   schemaRepo,
		overview: overview,
		sessions: sessions,
	}
}

func (s *ContextService) Now() time.Time {
	return s.routines.Now()
}

func (s *ContextService) MapTrainingDays(daysPerWeek int, startDate time.Time) (*routine.ScheduleResponse, error) {
	return s.routines.Schedule(daysPerWeek, startDate)
}

func (s *ContextService) ComputeProgress(daysPerWeek int, startDate, now time.Time) (*routine.ProgressResponse, error) {
	return s.routines.Progress(daysPerWeek, startDate, now)
}

// CurrentOverview resolves the token to a user and returns that user's week overview.
func (s *ContextService) CurrentOverview(ctx context.Context, token string) (*routine.WeekOverview, error) {
	if s.overview == nil || s.sessions == nil {
		return nil, errors.New("routine overview not available")
	}
	if token == "" {
		return nil, ErrUnauthorized
	}
	session, err := s.sessions.Session(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return s.overview.Overview(ctx, session.UserID, token)
}

// GetSchema returns the DB schema (table names, columns, types) of the fitroutine tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	if s.schema == nil {
		return "", errors.New("schema not available")
	}
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# FitRoutine DB Schema\n\nNo fitroutine tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# FitRoutine DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(tableOrder, ", ") + " (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}
