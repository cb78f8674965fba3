package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/2beens/practicetracker/internal/telemetry/tracing"
	"github.com/2beens/practicetracker/internal/tracker/ballet"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/schedule"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type programRequest struct {
	Name       string             `json:"name"`
	Type       program.Type       `json:"type"`
	Schedule   json.RawMessage    `json:"schedule"`
	IsActive   *bool              `json:"isActive"`
	Activities []program.Activity `json:"activities"`
}

type programResponse struct {
	Program    program.Program    `json:"program"`
	Activities []program.Activity `json:"activities"`
	Days       []gzclp.WorkoutDay `json:"days,omitempty"`
}

func decodeSchedule(raw json.RawMessage) (program.Schedule, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, program.Invalid("Invalid schedule")
	}
	sched, err := program.UnmarshalSchedule(raw)
	if err != nil {
		return nil, err
	}
	if err := schedule.Validate(sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// prepareActivities fills ids, owner and the program type's default tracking type.
func prepareActivities(p *program.Program, activities []program.Activity) ([]program.Activity, error) {
	prepared := make([]program.Activity, 0, len(activities))
	for _, a := range activities {
		a.Name = strings.TrimSpace(a.Name)
		if a.Name == "" {
			return nil, program.Invalid("Activity missing name")
		}
		if a.ID == "" {
			a.ID = program.NewActivityID()
		}
		a.ProgramID = p.ID
		if a.TrackingType == "" {
			a.TrackingType = p.Type.DefaultTrackingType()
		}
		if !a.TrackingType.Valid() {
			return nil, program.Invalid("invalid tracking type: %s", a.TrackingType)
		}
		prepared = append(prepared, a)
	}
	return prepared, nil
}

func (h *Handler) HandleListPrograms(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.programs.list")
	defer span.End()

	programs, err := h.repo.ListPrograms(ctx)
	if err != nil {
		writeError(w, "list programs", err)
		return
	}
	writeOK(w, programs)
}

func (h *Handler) HandleGetProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.programs.get")
	defer span.End()

	p, err := h.repo.GetProgram(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get program", err)
		return
	}
	writeOK(w, p)
}

func (h *Handler) HandleCreateProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.programs.create")
	defer span.End()

	var req programRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "create program", err)
		return
	}
	if req.Type == program.TypeGZCLP {
		http.Error(w, "GZCLP programs are created through /programs/gzclp", http.StatusBadRequest)
		return
	}
	sched, err := decodeSchedule(req.Schedule)
	if err != nil {
		writeError(w, "create program", err)
		return
	}
	if _, ok := sched.(program.Rotation); ok {
		http.Error(w, "rotation schedule is reserved for GZCLP", http.StatusBadRequest)
		return
	}

	p := program.Program{
		ID:        program.NewID(),
		Name:      strings.TrimSpace(req.Name),
		Type:      req.Type,
		Schedule:  sched,
		IsActive:  req.IsActive == nil || *req.IsActive,
		CreatedAt: h.now(),
	}
	if err := p.Validate(); err != nil {
		writeError(w, "create program", err)
		return
	}
	activities, err := prepareActivities(&p, req.Activities)
	if err != nil {
		writeError(w, "create program", err)
		return
	}

	// program last: it is listed only once its activities are stored
	if err := h.repo.SaveActivities(ctx, p.ID, activities); err != nil {
		writeError(w, "create program", err)
		return
	}
	if err := h.repo.SaveProgram(ctx, &p); err != nil {
		writeError(w, "create program", err)
		return
	}
	h.countProgram("created")
	log.Debugf("program [%s] %q created with %d activities", p.ID, p.Name, len(activities))

	writeCreated(w, programResponse{Program: p, Activities: activities})
}

func (h *Handler) HandleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.programs.update")
	defer span.End()

	var req programRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "update program", err)
		return
	}

	p, err := h.repo.GetProgram(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "update program", err)
		return
	}
	if req.Type != "" && req.Type != p.Type {
		http.Error(w, "program type cannot be changed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) != "" {
		p.Name = strings.TrimSpace(req.Name)
	}
	if len(req.Schedule) > 0 {
		sched, err := decodeSchedule(req.Schedule)
		if err != nil {
			writeError(w, "update program", err)
			return
		}
		p.Schedule = sched
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := p.Validate(); err != nil {
		writeError(w, "update program", err)
		return
	}
	if _, ok := p.Schedule.(program.Rotation); ok && p.Type != program.TypeGZCLP {
		http.Error(w, "rotation schedule is reserved for GZCLP", http.StatusBadRequest)
		return
	}

	if err := h.repo.SaveProgram(ctx, p); err != nil {
		writeError(w, "update program", err)
		return
	}
	writeOK(w, p)
}

func (h *Handler) HandleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.programs.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := h.repo.DeleteProgram(ctx, id); err != nil {
		writeError(w, "delete program", err)
		return
	}
	h.countProgram("deleted")
	log.Debugf("program [%s] deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleGetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.activities.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if _, err := h.repo.GetProgram(ctx, id); err != nil {
		writeError(w, "get activities", err)
		return
	}
	activities, err := h.repo.GetActivities(ctx, id)
	if err != nil {
		writeError(w, "get activities", err)
		return
	}
	writeOK(w, activities)
}

func (h *Handler) HandleSaveActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.activities.save")
	defer span.End()

	var req []program.Activity
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "save activities", err)
		return
	}
	p, err := h.repo.GetProgram(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "save activities", err)
		return
	}
	activities, err := prepareActivities(p, req)
	if err != nil {
		writeError(w, "save activities", err)
		return
	}
	if err := h.repo.SaveActivities(ctx, p.ID, activities); err != nil {
		writeError(w, "save activities", err)
		return
	}
	writeOK(w, activities)
}

type gzclpSetupRequest struct {
	Name            string             `json:"name"`
	Days            []gzclp.WorkoutDay `json:"days"`
	CustomExercises []gzclp.Exercise   `json:"customExercises"`
	StartingWeights map[string]float64 `json:"startingWeights"`
}

func (h *Handler) HandleSetupGZCLP(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.gzclp.setup")
	defer span.End()

	var req gzclpSetupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "setup gzclp", err)
		return
	}

	now := h.now()
	custom := make([]gzclp.Exercise, 0, len(req.CustomExercises))
	for _, ex := range req.CustomExercises {
		if ex.ID == "" {
			generated, err := gzclp.NewCustomExercise(ex.Name, ex.Tier, now)
			if err != nil {
				writeError(w, "setup gzclp", err)
				return
			}
			ex = generated
		}
		custom = append(custom, ex)
	}
	days := req.Days
	if len(days) == 0 {
		days = gzclp.DefaultWorkoutDays()
	}
	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = gzclp.DefaultProgramName
	}

	res, err := gzclp.Setup(gzclp.SetupParams{
		Name:            name,
		Days:            days,
		CustomExercises: custom,
		StartingWeights: req.StartingWeights,
		Now:             now,
	})
	if err != nil {
		writeError(w, "setup gzclp", err)
		return
	}

	if err := h.repo.SaveActivities(ctx, res.Program.ID, res.Activities); err != nil {
		writeError(w, "setup gzclp", err)
		return
	}
	if err := h.repo.SaveWorkoutDays(ctx, res.Program.ID, res.Days); err != nil {
		writeError(w, "setup gzclp", err)
		return
	}
	if err := h.repo.SaveProgram(ctx, &res.Program); err != nil {
		writeError(w, "setup gzclp", err)
		return
	}
	h.countProgram("created")

	writeCreated(w, programResponse{Program: res.Program, Activities: res.Activities, Days: res.Days})
}

type balletSetupRequest struct {
	Name      string           `json:"name"`
	ClassType ballet.ClassType `json:"classType"`
	Level     ballet.Level     `json:"level"`
	Schedule  json.RawMessage  `json:"schedule"`
	Routines  []ballet.Routine `json:"routines"`
}

func (h *Handler) HandleSetupBallet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.ballet.setup")
	defer span.End()

	var req balletSetupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "setup ballet", err)
		return
	}
	sched, err := decodeSchedule(req.Schedule)
	if err != nil {
		writeError(w, "setup ballet", err)
		return
	}

	res, err := ballet.Setup(ballet.SetupParams{
		Name:      req.Name,
		ClassType: req.ClassType,
		Level:     req.Level,
		Schedule:  sched,
		Routines:  req.Routines,
		Now:       h.now(),
	})
	if err != nil {
		writeError(w, "setup ballet", err)
		return
	}

	if err := h.repo.SaveActivities(ctx, res.Program.ID, res.Activities); err != nil {
		writeError(w, "setup ballet", err)
		return
	}
	if err := h.repo.SaveProgram(ctx, &res.Program); err != nil {
		writeError(w, "setup ballet", err)
		return
	}
	h.countProgram("created")

	writeCreated(w, programResponse{Program: res.Program, Activities: res.Activities})
}

func (h *Handler) HandleNextWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := h.sessions.NextWorkout(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "next workout", err)
		return
	}
	writeOK(w, workout)
}
