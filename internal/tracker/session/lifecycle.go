// Package session drives a scheduled occurrence from start to completion or skip.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/practicetracker/internal/telemetry/tracing"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=lifecycle_mocks_test.go -package=session_test

type sessionRepo interface {
	GetProgram(ctx context.Context, id string) (*program.Program, error)
	SaveProgram(ctx context.Context, p *program.Program) error
	GetActivities(ctx context.Context, programID string) ([]program.Activity, error)
	GetSession(ctx context.Context, key program.SessionKey) (*program.Session, error)
	SaveSession(ctx context.Context, s *program.Session) error
	ProgramSessions(ctx context.Context, programID string) ([]*program.Session, error)
	GetWorkoutDays(ctx context.Context, programID string) ([]gzclp.WorkoutDay, error)
	GetPrescriptions(ctx context.Context, programID string) ([]gzclp.Prescription, error)
	SavePrescriptions(ctx context.Context, programID string, prescriptions []gzclp.Prescription) error
}

type Service struct {
	repo sessionRepo
	now  func() time.Time

	// NewIDFunc and NewSetIDFunc can be replaced in tests
	NewIDFunc    func() string
	NewSetIDFunc func() string
}

func NewService(repo sessionRepo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:         repo,
		now:          now,
		NewIDFunc:    program.NewSessionID,
		NewSetIDFunc: program.NewSetID,
	}
}

type StartResult struct {
	Session *program.Session `json:"session"`
	// false when an existing session was resumed
	Created bool `json:"created"`
	// ballet: practiceNext of the latest earlier completed session
	LastPracticeNotes string `json:"lastPracticeNotes,omitempty"`
	// GZCLP: the pinned day with its loads
	Workout *gzclp.Workout `json:"workout,omitempty"`
}

// Start creates the in-progress session for (programID, date), or returns the existing one unchanged.
func (s *Service) Start(ctx context.Context, programID string, date program.Date) (_ *StartResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.session.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	key := program.SessionKey{Date: date, ProgramID: programID}
	span.SetAttributes(attribute.String("session.key", key.String()))

	p, err := s.repo.GetProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}

	result := &StartResult{}
	existing, err := s.repo.GetSession(ctx, key)
	switch {
	case err == nil:
		log.Debugf("resuming session [%s] with status %s", key, existing.Status)
		result.Session = existing
	case errors.Is(err, program.ErrNotFound):
		now := s.now()
		created := &program.Session{
			ID:         s.NewIDFunc(),
			ProgramID:  programID,
			Date:       date,
			Status:     program.StatusInProgress,
			StartTime:  &now,
			Activities: []program.ActivityLog{},
		}
		if p.Type == program.TypeGZCLP {
			created.WorkoutDay = gzclp.NextDay(p)
		}
		if err := s.repo.SaveSession(ctx, created); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		log.Debugf("session [%s] started", key)
		result.Session = created
		result.Created = true
	default:
		return nil, fmt.Errorf("get session: %w", err)
	}

	switch p.Type {
	case program.TypeBallet:
		notes, err := s.lastPracticeNotes(ctx, programID, date)
		if err != nil {
			return nil, err
		}
		result.LastPracticeNotes = notes
	case program.TypeGZCLP:
		if result.Session.Status != program.StatusInProgress || result.Session.WorkoutDay == 0 {
			break
		}
		workout, err := s.workoutFor(ctx, p, result.Session.WorkoutDay)
		if err != nil {
			return nil, err
		}
		result.Workout = workout
	}

	return result, nil
}

func (s *Service) lastPracticeNotes(ctx context.Context, programID string, before program.Date) (string, error) {
	sessions, err := s.repo.ProgramSessions(ctx, programID)
	if err != nil {
		return "", fmt.Errorf("program sessions: %w", err)
	}

	var (
		notes  string
		latest program.Date
	)
	for _, sess := range sessions {
		if sess.Status != program.StatusCompleted || sess.PracticeNext == "" || !sess.Date.Before(before) {
			continue
		}
		if latest.IsZero() || sess.Date.After(latest) {
			latest = sess.Date
			notes = sess.PracticeNext
		}
	}
	return notes, nil
}

// Skip marks the occurrence skipped, creating the session if needed. Completed sessions cannot be skipped.
func (s *Service) Skip(ctx context.Context, programID string, date program.Date, reason string) (_ *program.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.session.skip")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	key := program.SessionKey{Date: date, ProgramID: programID}
	span.SetAttributes(attribute.String("session.key", key.String()))

	if _, err := s.repo.GetProgram(ctx, programID); err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}

	id := ""
	existing, err := s.repo.GetSession(ctx, key)
	switch {
	case err == nil:
		if existing.Status == program.StatusCompleted {
			return nil, program.Invalid("session %s is already completed", key)
		}
		id = existing.ID
	case errors.Is(err, program.ErrNotFound):
		id = s.NewIDFunc()
	default:
		return nil, fmt.Errorf("get session: %w", err)
	}

	skipped := &program.Session{
		ID:         id,
		ProgramID:  programID,
		Date:       date,
		Status:     program.StatusSkipped,
		Activities: []program.ActivityLog{},
		SkipReason: strings.TrimSpace(reason),
	}
	if err := s.repo.SaveSession(ctx, skipped); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Debugf("session [%s] skipped", key)

	return skipped, nil
}

func (s *Service) Get(ctx context.Context, key program.SessionKey) (*program.Session, error) {
	return s.repo.GetSession(ctx, key)
}

// LogActivity upserts the activity log of an in-progress session.
func (s *Service) LogActivity(ctx context.Context, key program.SessionKey, entry program.ActivityLog) (_ *program.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.session.log_activity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session.key", key.String()),
		attribute.String("activity.id", entry.ActivityID),
	)

	sess, activity, err := s.openSessionActivity(ctx, key, entry.ActivityID)
	if err != nil {
		return nil, err
	}

	if entry.TrackingType == "" {
		entry.TrackingType = activity.TrackingType
	}
	if entry.TrackingType != activity.TrackingType {
		return nil, program.Invalid("activity %s is tracked as %s, got %s", activity.ID, activity.TrackingType, entry.TrackingType)
	}
	if entry.Duration < 0 {
		return nil, program.Invalid("duration cannot be negative")
	}

	sess.UpsertActivityLog(entry)
	if err := s.repo.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

type SetInput struct {
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	IsWarmup     bool    `json:"isWarmup"`
	IsAmrap      bool    `json:"isAmrap"`
	RPE          int     `json:"rpe"`
	RestDuration int     `json:"restDuration"`
}

// AddSet appends a numbered set to a sets-reps-weight activity.
func (s *Service) AddSet(ctx context.Context, key program.SessionKey, activityID string, in SetInput) (_ *program.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.session.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session.key", key.String()),
		attribute.String("activity.id", activityID),
	)

	if in.Weight <= 0 || in.Reps <= 0 {
		return nil, program.Invalid("a set needs a positive weight and reps")
	}
	if in.RPE < 0 || in.RPE > 10 {
		return nil, program.Invalid("rpe must be between 1 and 10")
	}

	sess, activity, err := s.openSessionActivity(ctx, key, activityID)
	if err != nil {
		return nil, err
	}
	if activity.TrackingType != program.TrackingSetsRepsWeight {
		return nil, program.Invalid("activity %s does not track sets", activity.ID)
	}

	entry := program.ActivityLog{
		ActivityID:   activityID,
		TrackingType: program.TrackingSetsRepsWeight,
	}
	if existing := sess.ActivityLog(activityID); existing != nil {
		entry = *existing
	}
	entry.Sets = append(entry.Sets, program.SetLog{
		ID:           s.NewSetIDFunc(),
		SetNumber:    len(entry.Sets) + 1,
		Weight:       in.Weight,
		Reps:         in.Reps,
		IsWarmup:     in.IsWarmup,
		IsAmrap:      in.IsAmrap,
		RPE:          in.RPE,
		RestDuration: in.RestDuration,
		Timestamp:    s.now(),
	})
	sess.UpsertActivityLog(entry)

	if err := s.repo.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// openSessionActivity loads an in-progress session and one of its program's activities.
func (s *Service) openSessionActivity(ctx context.Context, key program.SessionKey, activityID string) (*program.Session, *program.Activity, error) {
	sess, err := s.openSession(ctx, key)
	if err != nil {
		return nil, nil, err
	}

	activities, err := s.repo.GetActivities(ctx, key.ProgramID)
	if err != nil {
		return nil, nil, fmt.Errorf("get activities: %w", err)
	}
	for i := range activities {
		if activities[i].ID == activityID {
			return sess, &activities[i], nil
		}
	}
	return nil, nil, program.Invalid("activity %s is not part of program %s", activityID, key.ProgramID)
}

// openSession loads a session that still accepts logs. A missing session is a validation failure here.
func (s *Service) openSession(ctx context.Context, key program.SessionKey) (*program.Session, error) {
	sess, err := s.repo.GetSession(ctx, key)
	if errors.Is(err, program.ErrNotFound) {
		return nil, program.Invalid("session %s has not been started", key)
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.Status != program.StatusInProgress {
		return nil, program.Invalid("session %s is %s", key, sess.Status)
	}
	return sess, nil
}

type CompleteParams struct {
	Notes        string `json:"notes"`
	PracticeNext string `json:"practiceNext"`
}

type CompleteResult struct {
	Session *program.Session `json:"session"`
	// GZCLP: the program with the advanced rotation, and the stored next weights
	Program       *program.Program     `json:"program,omitempty"`
	Prescriptions []gzclp.Prescription `json:"prescriptions,omitempty"`
}

// Complete closes an in-progress session once every required activity is satisfied.
func (s *Service) Complete(ctx context.Context, key program.SessionKey, params CompleteParams) (_ *CompleteResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.session.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.key", key.String()))

	sess, err := s.openSession(ctx, key)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetProgram(ctx, key.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}
	activities, err := s.repo.GetActivities(ctx, key.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("get activities: %w", err)
	}

	var day *gzclp.WorkoutDay
	required := activities
	if p.Type == program.TypeGZCLP {
		d, err := s.pinnedDay(ctx, p, sess)
		if err != nil {
			return nil, err
		}
		day = &d
		required = gzclp.DayActivities(d, activities)
	}

	var missing []string
	for i := range required {
		if !required[i].IsSatisfiedBy(sess.ActivityLog(required[i].ID)) {
			missing = append(missing, required[i].Name)
		}
	}
	if len(missing) > 0 {
		return nil, program.Invalid("activities not completed: %s", strings.Join(missing, ", "))
	}

	end := s.now()
	sess.Status = program.StatusCompleted
	sess.EndTime = &end
	if sess.StartTime != nil {
		minutes := int(math.Round(end.Sub(*sess.StartTime).Minutes()))
		minutes = max(minutes, 0)
		sess.Duration = &minutes
	}
	sess.Notes = strings.TrimSpace(params.Notes)
	sess.PracticeNext = strings.TrimSpace(params.PracticeNext)

	// session row last: a completed session cannot be completed again
	result := &CompleteResult{Session: sess}
	if day != nil {
		prescriptions, err := s.advanceRotation(ctx, p, *day, sess)
		if err != nil {
			return nil, err
		}
		result.Program = p
		result.Prescriptions = prescriptions
	}

	if err := s.repo.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Debugf("session [%s] completed", key)

	return result, nil
}

// advanceRotation stores the next weights and moves the rotation past day. Repeating it
// for the same session leaves the program as it was after the first run.
func (s *Service) advanceRotation(ctx context.Context, p *program.Program, day gzclp.WorkoutDay, sess *program.Session) ([]gzclp.Prescription, error) {
	existing, err := s.repo.GetPrescriptions(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get prescriptions: %w", err)
	}
	prescriptions := gzclp.MergePrescriptions(existing, gzclp.Prescribe(day, sess))
	if err := s.repo.SavePrescriptions(ctx, p.ID, prescriptions); err != nil {
		return nil, fmt.Errorf("save prescriptions: %w", err)
	}

	if p.LastWorkoutDay != day.DayNumber {
		if err := gzclp.RecordCompletion(p, day.DayNumber); err != nil {
			return nil, err
		}
		if err := s.repo.SaveProgram(ctx, p); err != nil {
			return nil, fmt.Errorf("save program: %w", err)
		}
	}
	log.Debugf("gzclp program [%s] advanced to day %d, week %d", p.ID, gzclp.NextDay(p), p.CurrentWeek)

	return prescriptions, nil
}

// pinnedDay resolves the rotation day a GZCLP session performs.
func (s *Service) pinnedDay(ctx context.Context, p *program.Program, sess *program.Session) (gzclp.WorkoutDay, error) {
	days, err := s.repo.GetWorkoutDays(ctx, p.ID)
	if err != nil {
		return gzclp.WorkoutDay{}, fmt.Errorf("get workout days: %w", err)
	}
	dayNumber := sess.WorkoutDay
	if dayNumber == 0 {
		dayNumber = gzclp.NextDay(p)
	}
	day, ok := gzclp.FindDay(days, dayNumber)
	if !ok {
		return gzclp.WorkoutDay{}, program.Invalid("GZCLP program %s has no day %d", p.ID, dayNumber)
	}
	return day, nil
}

// NextWorkout plans the next GZCLP workout of the program.
func (s *Service) NextWorkout(ctx context.Context, programID string) (_ *gzclp.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.gzclp.next_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID))

	p, err := s.repo.GetProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}
	if p.Type != program.TypeGZCLP {
		return nil, program.Invalid("program %s is not a GZCLP program", programID)
	}
	return s.workoutFor(ctx, p, gzclp.NextDay(p))
}

func (s *Service) workoutFor(ctx context.Context, p *program.Program, dayNumber int) (*gzclp.Workout, error) {
	days, err := s.repo.GetWorkoutDays(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get workout days: %w", err)
	}
	day, ok := gzclp.FindDay(days, dayNumber)
	if !ok {
		return nil, program.Invalid("GZCLP program %s has no day %d", p.ID, dayNumber)
	}
	activities, err := s.repo.GetActivities(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get activities: %w", err)
	}
	prescriptions, err := s.repo.GetPrescriptions(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get prescriptions: %w", err)
	}

	workout := gzclp.PlanWorkout(p, day, activities, prescriptions)
	return &workout, nil
}
