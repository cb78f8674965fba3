package mcp

import (
	"context"
	"fmt"

	"github.com/2beens/practicetracker/internal/tracker/calendar"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=mcp_test

type agendaSource interface {
	Today() program.Date
	Agenda(ctx context.Context, numDays int) ([]calendar.DayAgenda, error)
}

type workoutSource interface {
	NextWorkout(ctx context.Context, programID string) (*gzclp.Workout, error)
}

type programLister interface {
	ListPrograms(ctx context.Context) ([]program.Program, error)
}

// ContextService answers the read-only questions an assistant asks about the tracker.
type ContextService struct {
	agenda   agendaSource
	workouts workoutSource
	programs programLister
}

func NewContextService(agenda agendaSource, workouts workoutSource, programs programLister) *ContextService {
	return &ContextService{
		agenda:   agenda,
		workouts: workouts,
		programs: programs,
	}
}

func (s *ContextService) Today() program.Date {
	return s.agenda.Today()
}

func (s *ContextService) Agenda(ctx context.Context, days int) ([]calendar.DayAgenda, error) {
	return s.agenda.Agenda(ctx, days)
}

func (s *ContextService) ListPrograms(ctx context.Context) ([]program.Program, error) {
	return s.programs.ListPrograms(ctx)
}

// NextWorkout plans the next GZCLP day. An empty programID picks the first active GZCLP program.
func (s *ContextService) NextWorkout(ctx context.Context, programID string) (*gzclp.Workout, error) {
	if programID == "" {
		programs, err := s.programs.ListPrograms(ctx)
		if err != nil {
			return nil, fmt.Errorf("list programs: %w", err)
		}
		for _, p := range programs {
			if p.Type == program.TypeGZCLP && p.IsActive {
				programID = p.ID
				break
			}
		}
		if programID == "" {
			return nil, fmt.Errorf("no active gzclp program: %w", program.ErrNotFound)
		}
	}
	return s.workouts.NextWorkout(ctx, programID)
}
