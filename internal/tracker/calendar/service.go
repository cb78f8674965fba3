package calendar

import (
	"context"
	"fmt"

	"github.com/2beens/practicetracker/internal/telemetry/tracing"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultWindowDays = 7
	MaxWindowDays     = 90
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=calendar_test

type agendaRepo interface {
	ListPrograms(ctx context.Context) ([]program.Program, error)
	GetActivities(ctx context.Context, programID string) ([]program.Activity, error)
	SessionsInRange(ctx context.Context, from, to program.Date) (map[program.SessionKey]*program.Session, error)
	GetWorkoutDays(ctx context.Context, programID string) ([]gzclp.WorkoutDay, error)
	GetPrescriptions(ctx context.Context, programID string) ([]gzclp.Prescription, error)
}

// Service builds the agenda from stored state. today is injected so the agenda
// follows the user's time zone, not the server clock.
type Service struct {
	repo  agendaRepo
	today func() program.Date
}

func NewService(repo agendaRepo, today func() program.Date) *Service {
	return &Service{
		repo:  repo,
		today: today,
	}
}

func (s *Service) Today() program.Date {
	return s.today()
}

// Agenda projects the active programs over the next numDays days, starting today.
func (s *Service) Agenda(ctx context.Context, numDays int) (_ []DayAgenda, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.calendar.agenda")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if numDays <= 0 {
		numDays = DefaultWindowDays
	}
	if numDays > MaxWindowDays {
		return nil, program.Invalid("agenda window is limited to %d days", MaxWindowDays)
	}
	today := s.today()
	span.SetAttributes(
		attribute.String("today", today.String()),
		attribute.Int("days", numDays),
	)

	programs, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	active := make([]program.Program, 0, len(programs))
	activities := make(map[string][]program.Activity, len(programs))
	for _, p := range programs {
		if !p.IsActive {
			continue
		}
		active = append(active, p)
		programActivities, err := s.repo.GetActivities(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("get activities [%s]: %w", p.ID, err)
		}
		activities[p.ID] = programActivities
	}

	sessions, err := s.repo.SessionsInRange(ctx, today, today.AddDays(numDays-1))
	if err != nil {
		return nil, fmt.Errorf("sessions in range: %w", err)
	}

	agenda := Project(ProjectParams{
		Programs:            active,
		ActivitiesByProgram: activities,
		Sessions:            sessions,
		From:                today,
		NumDays:             numDays,
		Today:               today,
	})

	if err := s.attachWorkouts(ctx, active, activities, agenda); err != nil {
		return nil, err
	}

	log.Tracef("agenda from %s: %d days with sessions", today, len(agenda))
	return agenda, nil
}

// attachWorkouts narrows GZCLP entries to the exercises of the day they perform.
// A started session keeps its pinned day, everything else shows the next rotation day.
func (s *Service) attachWorkouts(ctx context.Context, programs []program.Program, activities map[string][]program.Activity, agenda []DayAgenda) error {
	type gzclpState struct {
		days          []gzclp.WorkoutDay
		prescriptions []gzclp.Prescription
	}
	states := map[string]*gzclpState{}
	byID := map[string]*program.Program{}
	for i := range programs {
		if programs[i].Type != program.TypeGZCLP {
			continue
		}
		p := &programs[i]
		days, err := s.repo.GetWorkoutDays(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("get workout days [%s]: %w", p.ID, err)
		}
		prescriptions, err := s.repo.GetPrescriptions(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("get prescriptions [%s]: %w", p.ID, err)
		}
		states[p.ID] = &gzclpState{days: days, prescriptions: prescriptions}
		byID[p.ID] = p
	}
	if len(states) == 0 {
		return nil
	}

	for di := range agenda {
		for si := range agenda[di].Sessions {
			entry := &agenda[di].Sessions[si]
			state, ok := states[entry.ProgramID]
			if !ok {
				continue
			}
			p := byID[entry.ProgramID]
			dayNumber := gzclp.NextDay(p)
			if entry.Session != nil && entry.Session.WorkoutDay > 0 {
				dayNumber = entry.Session.WorkoutDay
			}
			day, ok := gzclp.FindDay(state.days, dayNumber)
			if !ok {
				log.Warnf("gzclp program [%s] has no day %d", p.ID, dayNumber)
				continue
			}
			entry.Activities = gzclp.DayActivities(day, activities[p.ID])
			workout := gzclp.PlanWorkout(p, day, activities[p.ID], state.prescriptions)
			entry.Workout = &workout
		}
	}
	return nil
}
