package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/practicetracker/internal/tracker/ballet"
	"github.com/2beens/practicetracker/internal/tracker/calendar"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const maxAgendaDays = 90

type contextService interface {
	Today() program.Date
	Agenda(ctx context.Context, days int) ([]calendar.DayAgenda, error)
	ListPrograms(ctx context.Context) ([]program.Program, error)
	NextWorkout(ctx context.Context, programID string) (*gzclp.Workout, error)
}

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// AgendaInput is the input for get_agenda.
type AgendaInput struct {
	Days int `json:"days,omitempty" jsonschema:"Number of days starting today (default 7, max 90)"`
}

func (h *Handler) GetAgendaTool() func(context.Context, *mcp.CallToolRequest, AgendaInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AgendaInput) (*mcp.CallToolResult, any, error) {
		days := in.Days
		if days <= 0 {
			days = 7
		}
		if days > maxAgendaDays {
			return errorResult("Invalid days: must be between 1 and 90"), nil, nil
		}
		agenda, err := h.service.Agenda(ctx, days)
		if err != nil {
			return errorResult("Error building agenda: " + err.Error()), nil, nil
		}
		return jsonResult(struct {
			Today program.Date         `json:"today"`
			Days  []calendar.DayAgenda `json:"days"`
		}{
			Today: h.service.Today(),
			Days:  agenda,
		})
	}
}

func (h *Handler) ListProgramsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		programs, err := h.service.ListPrograms(ctx)
		if err != nil {
			return errorResult("Error listing programs: " + err.Error()), nil, nil
		}
		return jsonResult(programs)
	}
}

// NextGZCLPDayInput is the input for get_next_gzclp_day.
type NextGZCLPDayInput struct {
	ProgramID string `json:"program_id,omitempty" jsonschema:"GZCLP program id; the first active GZCLP program is used when empty"`
}

func (h *Handler) GetNextGZCLPDayTool() func(context.Context, *mcp.CallToolRequest, NextGZCLPDayInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NextGZCLPDayInput) (*mcp.CallToolResult, any, error) {
		workout, err := h.service.NextWorkout(ctx, in.ProgramID)
		if err != nil {
			return errorResult("Error planning next workout: " + err.Error()), nil, nil
		}
		return jsonResult(workout)
	}
}

// SetInput is one logged set of a completed cycle.
type SetInput struct {
	SetNumber int     `json:"set_number" jsonschema:"Order of the set within the exercise, starting at 1"`
	Weight    float64 `json:"weight" jsonschema:"Weight lifted"`
	Reps      int     `json:"reps" jsonschema:"Repetitions done"`
	IsWarmup  bool    `json:"is_warmup,omitempty" jsonschema:"Warmup sets are ignored"`
	IsAmrap   bool    `json:"is_amrap,omitempty" jsonschema:"Set done as many reps as possible"`
}

// NextWeightInput is the input for get_next_weight.
type NextWeightInput struct {
	Tier string     `json:"tier" jsonschema:"GZCLP tier: T1, T2 or T3"`
	Sets []SetInput `json:"sets" jsonschema:"Sets of the last completed cycle"`
}

func (h *Handler) GetNextWeightTool() func(context.Context, *mcp.CallToolRequest, NextWeightInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in NextWeightInput) (*mcp.CallToolResult, any, error) {
		tier := program.Tier(in.Tier)
		if _, ok := gzclp.ConfigFor(tier); !ok {
			return errorResult("Invalid tier: use T1, T2 or T3"), nil, nil
		}

		sets := make([]program.SetLog, 0, len(in.Sets))
		for _, s := range in.Sets {
			sets = append(sets, program.SetLog{
				SetNumber: s.SetNumber,
				Weight:    s.Weight,
				Reps:      s.Reps,
				IsWarmup:  s.IsWarmup,
				IsAmrap:   s.IsAmrap,
			})
		}
		weight, ok := gzclp.NextWeight(tier, sets)
		if !ok {
			return errorResult("No working sets to base the next weight on"), nil, nil
		}
		return jsonResult(map[string]any{
			"tier":   tier,
			"weight": weight,
		})
	}
}

// GlossaryInput is the input for search_ballet_glossary.
type GlossaryInput struct {
	Query string `json:"query,omitempty" jsonschema:"Term to look for, accents optional (e.g. plie); empty returns all terms"`
}

func (h *Handler) SearchBalletGlossaryTool() func(context.Context, *mcp.CallToolRequest, GlossaryInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in GlossaryInput) (*mcp.CallToolResult, any, error) {
		entries, err := ballet.SearchGlossary(in.Query)
		if err != nil {
			return errorResult("Error searching glossary: " + err.Error()), nil, nil
		}
		return jsonResult(entries)
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error formatting result: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(out)}},
	}, nil, nil
}
