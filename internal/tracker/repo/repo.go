// Package repo persists programs, activities, sessions and GZCLP state on a key-value store.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/2beens/practicetracker/internal/storage"
	"github.com/2beens/practicetracker/internal/telemetry/tracing"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

type Repo struct {
	store storage.Store
}

func New(store storage.Store) *Repo {
	return &Repo{
		store: store,
	}
}

// Migrate clears data written by the single-program storage format.
// Reports whether anything was cleared.
func (r *Repo) Migrate(ctx context.Context) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	hasNew, err := r.exists(ctx, programListKey)
	if err != nil {
		return false, err
	}
	hasLegacy, err := r.exists(ctx, legacyProgramKey)
	if err != nil {
		return false, err
	}
	if !hasLegacy || hasNew {
		return false, nil
	}

	log.Warnln("legacy program storage found, clearing storage")
	if err := r.store.Clear(ctx); err != nil {
		return false, fmt.Errorf("clear legacy storage: %w", err)
	}
	return true, nil
}

func (r *Repo) ListPrograms(ctx context.Context) (_ []program.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.programs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ids, err := r.programIDs(ctx)
	if err != nil {
		return nil, err
	}

	programs := make([]program.Program, 0, len(ids))
	for _, id := range ids {
		var p program.Program
		found, err := r.getJSON(ctx, programKey(id), &p)
		if err != nil {
			return nil, err
		}
		if !found {
			log.Warnf("program [%s] listed but not stored, skipping", id)
			continue
		}
		programs = append(programs, p)
	}
	return programs, nil
}

func (r *Repo) GetProgram(ctx context.Context, id string) (_ *program.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	var p program.Program
	found, err := r.getJSON(ctx, programKey(id), &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("program [%s]: %w", id, program.ErrNotFound)
	}
	return &p, nil
}

// SaveProgram stores the program and appends new ids to the ordered program list.
func (r *Repo) SaveProgram(ctx context.Context, p *program.Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.programs.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", p.ID))

	if err := r.setJSON(ctx, programKey(p.ID), p); err != nil {
		return err
	}

	ids, err := r.programIDs(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, p.ID) {
		return nil
	}
	return r.setJSON(ctx, programListKey, append(ids, p.ID))
}

// DeleteProgram removes the program with its activities and GZCLP state. Sessions are kept.
func (r *Repo) DeleteProgram(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.programs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	ids, err := r.programIDs(ctx)
	if err != nil {
		return err
	}
	i := slices.Index(ids, id)
	if i < 0 {
		return fmt.Errorf("program [%s]: %w", id, program.ErrNotFound)
	}
	if err := r.setJSON(ctx, programListKey, slices.Delete(ids, i, i+1)); err != nil {
		return err
	}

	var errs error
	for _, key := range []string{programKey(id), activitiesKey(id), workoutDaysKey(id), prescriptionsKey(id)} {
		multierr.AppendInto(&errs, r.store.Delete(ctx, key))
	}
	if errs != nil {
		return fmt.Errorf("delete program [%s]: %w", id, errs)
	}
	return nil
}

// GetActivities returns the program activities in their stored order; none stored is an empty list.
func (r *Repo) GetActivities(ctx context.Context, programID string) (_ []program.Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activities.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID))

	var activities []program.Activity
	if _, err := r.getJSON(ctx, activitiesKey(programID), &activities); err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []program.Activity{}
	}
	return activities, nil
}

func (r *Repo) SaveActivities(ctx context.Context, programID string, activities []program.Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activities.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("program.id", programID),
		attribute.Int("activities.count", len(activities)),
	)

	if activities == nil {
		activities = []program.Activity{}
	}
	return r.setJSON(ctx, activitiesKey(programID), activities)
}

func (r *Repo) GetSession(ctx context.Context, key program.SessionKey) (_ *program.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.key", key.String()))

	var s program.Session
	found, err := r.getJSON(ctx, sessionKey(key), &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("session [%s]: %w", key, program.ErrNotFound)
	}
	return &s, nil
}

// SaveSession overwrites whatever is stored for the session's (date, program) key.
func (r *Repo) SaveSession(ctx context.Context, s *program.Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.sessions.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.key", s.Key().String()))

	if s.Activities == nil {
		s.Activities = []program.ActivityLog{}
	}
	return r.setJSON(ctx, sessionKey(s.Key()), s)
}

// SessionsInRange returns the sessions dated within [from, to], both inclusive.
func (r *Repo) SessionsInRange(ctx context.Context, from, to program.Date) (_ map[program.SessionKey]*program.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.sessions.range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	)

	return r.sessionsWhere(ctx, func(k program.SessionKey) bool {
		return !k.Date.Before(from) && !k.Date.After(to)
	})
}

// ProgramSessions returns every stored session of the program, oldest first.
func (r *Repo) ProgramSessions(ctx context.Context, programID string) (_ []*program.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.sessions.program")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID))

	byKey, err := r.sessionsWhere(ctx, func(k program.SessionKey) bool {
		return k.ProgramID == programID
	})
	if err != nil {
		return nil, err
	}

	sessions := make([]*program.Session, 0, len(byKey))
	for _, s := range byKey {
		sessions = append(sessions, s)
	}
	slices.SortFunc(sessions, func(a, b *program.Session) int {
		return a.Date.Time().Compare(b.Date.Time())
	})
	return sessions, nil
}

func (r *Repo) sessionsWhere(ctx context.Context, match func(program.SessionKey) bool) (map[program.SessionKey]*program.Session, error) {
	keys, err := r.store.List(ctx, sessionKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sessions := make(map[program.SessionKey]*program.Session)
	for _, key := range keys {
		k, ok := parseSessionKey(key)
		if !ok {
			log.Debugf("skipping malformed session key: %s", key)
			continue
		}
		if !match(k) {
			continue
		}
		var s program.Session
		found, err := r.getJSON(ctx, key, &s)
		if err != nil {
			return nil, err
		}
		if found {
			sessions[k] = &s
		}
	}
	return sessions, nil
}

// GetWorkoutDays returns the GZCLP day layout, nil if the program has none.
func (r *Repo) GetWorkoutDays(ctx context.Context, programID string) (_ []gzclp.WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.gzclp.days.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var days []gzclp.WorkoutDay
	if _, err := r.getJSON(ctx, workoutDaysKey(programID), &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *Repo) SaveWorkoutDays(ctx context.Context, programID string, days []gzclp.WorkoutDay) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.gzclp.days.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return r.setJSON(ctx, workoutDaysKey(programID), days)
}

func (r *Repo) GetPrescriptions(ctx context.Context, programID string) (_ []gzclp.Prescription, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.gzclp.weights.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var prescriptions []gzclp.Prescription
	if _, err := r.getJSON(ctx, prescriptionsKey(programID), &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *Repo) SavePrescriptions(ctx context.Context, programID string, prescriptions []gzclp.Prescription) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.gzclp.weights.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return r.setJSON(ctx, prescriptionsKey(programID), prescriptions)
}

func (r *Repo) programIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if _, err := r.getJSON(ctx, programListKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Repo) exists(ctx context.Context, key string) (bool, error) {
	_, err := r.store.Get(ctx, key)
	if storage.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get [%s]: %w", key, err)
	}
	return true, nil
}

// getJSON decodes the value at key into dst. A missing key is reported as found = false.
func (r *Repo) getJSON(ctx context.Context, key string, dst any) (found bool, err error) {
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get [%s]: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode [%s]: %w", key, err)
	}
	return true, nil
}

func (r *Repo) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode [%s]: %w", key, err)
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set [%s]: %w", key, err)
	}
	return nil
}
