package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/2beens/practicetracker/internal/tracker/calendar"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mockContextService implements contextService for tests.
type mockContextService struct {
	today       program.Date
	agenda      []calendar.DayAgenda
	agendaErr   error
	agendaDays  int
	programs    []program.Program
	programsErr error
	workout     *gzclp.Workout
	workoutErr  error
	workoutFor  string
}

func (m *mockContextService) Today() program.Date {
	return m.today
}

func (m *mockContextService) Agenda(_ context.Context, days int) ([]calendar.DayAgenda, error) {
	m.agendaDays = days
	return m.agenda, m.agendaErr
}

func (m *mockContextService) ListPrograms(_ context.Context) ([]program.Program, error) {
	return m.programs, m.programsErr
}

func (m *mockContextService) NextWorkout(_ context.Context, programID string) (*gzclp.Workout, error) {
	m.workoutFor = programID
	return m.workout, m.workoutErr
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want *mcp.TextContent", res.Content[0])
	}
	return tc.Text
}

func TestHandler_GetAgendaTool(t *testing.T) {
	today := program.MustParseDate("2024-01-15")

	t.Run("defaults_to_a_week", func(t *testing.T) {
		svc := &mockContextService{
			today:  today,
			agenda: []calendar.DayAgenda{{Date: today}},
		}
		fn := NewHandler(svc).GetAgendaTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, AgendaInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}
		if svc.agendaDays != 7 {
			t.Fatalf("agenda days = %d, want 7", svc.agendaDays)
		}

		var out struct {
			Today string `json:"today"`
			Days  []any  `json:"days"`
		}
		if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.Today != "2024-01-15" || len(out.Days) != 1 {
			t.Fatalf("unexpected output: %+v", out)
		}
	})

	t.Run("rejects_too_many_days", func(t *testing.T) {
		svc := &mockContextService{}
		fn := NewHandler(svc).GetAgendaTool()
		res, _, _ := fn(context.Background(), &mcp.CallToolRequest{}, AgendaInput{Days: 91})
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if svc.agendaDays != 0 {
			t.Fatalf("service should not be called")
		}
	})

	t.Run("returns_error_when_agenda_fails", func(t *testing.T) {
		svc := &mockContextService{agendaErr: errors.New("store down")}
		fn := NewHandler(svc).GetAgendaTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, AgendaInput{Days: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if text := resultText(t, res); !strings.Contains(text, "store down") {
			t.Fatalf("content text = %q", text)
		}
	})
}

func TestHandler_ListProgramsTool(t *testing.T) {
	svc := &mockContextService{
		programs: []program.Program{{
			ID:       "program_1",
			Name:     "Morning Barre",
			Type:     program.TypeBallet,
			Schedule: program.Flexible{},
			IsActive: true,
		}},
	}
	fn := NewHandler(svc).ListProgramsTool()
	res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected IsError: %s", resultText(t, res))
	}
	if text := resultText(t, res); !strings.Contains(text, "Morning Barre") {
		t.Fatalf("content text = %q", text)
	}

	svc.programsErr = errors.New("boom")
	res, _, _ = fn(context.Background(), &mcp.CallToolRequest{}, nil)
	if !res.IsError {
		t.Fatalf("expected IsError")
	}
}

func TestHandler_GetNextGZCLPDayTool(t *testing.T) {
	svc := &mockContextService{
		workout: &gzclp.Workout{
			DayNumber: 3,
			Name:      "Day 3",
			Exercises: []gzclp.PlannedExercise{{ActivityID: "a1", Name: "Bench Press", Tier: program.TierT1, Sets: 5, Reps: 3, Weight: 60}},
		},
	}
	fn := NewHandler(svc).GetNextGZCLPDayTool()
	res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, NextGZCLPDayInput{ProgramID: "program_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected IsError: %s", resultText(t, res))
	}
	if svc.workoutFor != "program_1" {
		t.Fatalf("workout for %q, want program_1", svc.workoutFor)
	}

	var got gzclp.Workout
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.DayNumber != 3 || len(got.Exercises) != 1 || got.Exercises[0].Weight != 60 {
		t.Fatalf("unexpected workout: %+v", got)
	}

	svc.workoutErr = program.ErrNotFound
	res, _, _ = fn(context.Background(), &mcp.CallToolRequest{}, NextGZCLPDayInput{})
	if !res.IsError {
		t.Fatalf("expected IsError")
	}
}

func TestHandler_GetNextWeightTool(t *testing.T) {
	fn := NewHandler(&mockContextService{}).GetNextWeightTool()

	tests := []struct {
		name       string
		in         NextWeightInput
		wantErr    bool
		wantWeight float64
	}{
		{
			name: "t1 amrap hit progresses",
			in: NextWeightInput{Tier: "T1", Sets: []SetInput{
				{SetNumber: 1, Weight: 100, Reps: 3},
				{SetNumber: 2, Weight: 100, Reps: 3},
				{SetNumber: 3, Weight: 100, Reps: 3},
				{SetNumber: 4, Weight: 100, Reps: 3},
				{SetNumber: 5, Weight: 100, Reps: 6, IsAmrap: true},
			}},
			wantWeight: 105,
		},
		{
			name: "t2 amrap missed stays",
			in: NextWeightInput{Tier: "T2", Sets: []SetInput{
				{SetNumber: 1, Weight: 50, Reps: 10},
				{SetNumber: 2, Weight: 50, Reps: 10},
				{SetNumber: 3, Weight: 50, Reps: 8, IsAmrap: true},
			}},
			wantWeight: 50,
		},
		{
			name:    "unknown tier",
			in:      NextWeightInput{Tier: "T4"},
			wantErr: true,
		},
		{
			name: "only warmups",
			in: NextWeightInput{Tier: "T1", Sets: []SetInput{
				{SetNumber: 1, Weight: 40, Reps: 5, IsWarmup: true},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.IsError != tt.wantErr {
				t.Fatalf("IsError = %v, want %v: %s", res.IsError, tt.wantErr, resultText(t, res))
			}
			if tt.wantErr {
				return
			}
			var out struct {
				Weight float64 `json:"weight"`
			}
			if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if out.Weight != tt.wantWeight {
				t.Fatalf("weight = %v, want %v", out.Weight, tt.wantWeight)
			}
		})
	}
}

func TestHandler_SearchBalletGlossaryTool(t *testing.T) {
	fn := NewHandler(&mockContextService{}).SearchBalletGlossaryTool()
	res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, GlossaryInput{Query: "plie"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected IsError: %s", resultText(t, res))
	}
	if text := resultText(t, res); !strings.Contains(text, "Plié") {
		t.Fatalf("content text = %q", text)
	}
}

func TestNewServer(t *testing.T) {
	s := NewServer(&mockContextService{}, &mockContextService{}, &mockContextService{}, "test")
	if s == nil {
		t.Fatal("expected server")
	}
}
