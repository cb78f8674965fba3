// Package api exposes the tracker over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/practicetracker/internal/telemetry/metrics"
	"github.com/2beens/practicetracker/internal/tracker/calendar"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/session"
	"github.com/2beens/practicetracker/internal/tracker/transfer"
	"github.com/2beens/practicetracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// import files are small; anything bigger is not an export
const maxBodyBytes = 1 << 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=api_test

type programRepo interface {
	ListPrograms(ctx context.Context) ([]program.Program, error)
	GetProgram(ctx context.Context, id string) (*program.Program, error)
	SaveProgram(ctx context.Context, p *program.Program) error
	DeleteProgram(ctx context.Context, id string) error
	GetActivities(ctx context.Context, programID string) ([]program.Activity, error)
	SaveActivities(ctx context.Context, programID string, activities []program.Activity) error
	SaveWorkoutDays(ctx context.Context, programID string, days []gzclp.WorkoutDay) error
}

type Handler struct {
	repo           programRepo
	sessions       *session.Service
	agenda         *calendar.Service
	transfer       *transfer.Service
	metricsManager *metrics.Manager
	agendaDays     int
	now            func() time.Time
}

type NewHandlerParams struct {
	Repo           programRepo
	Sessions       *session.Service
	Agenda         *calendar.Service
	Transfer       *transfer.Service
	MetricsManager *metrics.Manager
	// window used when ?days is absent
	AgendaDays int
	Now        func() time.Time
}

func NewHandler(params NewHandlerParams) *Handler {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	agendaDays := params.AgendaDays
	if agendaDays <= 0 {
		agendaDays = calendar.DefaultWindowDays
	}
	return &Handler{
		repo:           params.Repo,
		sessions:       params.Sessions,
		agenda:         params.Agenda,
		transfer:       params.Transfer,
		metricsManager: params.MetricsManager,
		agendaDays:     agendaDays,
		now:            now,
	}
}

// SetupRoutes registers every tracker route. importMiddleware, when set, wraps the import endpoint.
func (h *Handler) SetupRoutes(r *mux.Router, importMiddleware mux.MiddlewareFunc) {
	var importHandler http.Handler = http.HandlerFunc(h.HandleImportProgram)
	if importMiddleware != nil {
		importHandler = importMiddleware(importHandler)
	}

	r.HandleFunc("/programs", h.HandleListPrograms).Methods("GET", "OPTIONS").Name("list-programs")
	r.HandleFunc("/programs", h.HandleCreateProgram).Methods("POST", "OPTIONS").Name("new-program")
	r.HandleFunc("/programs/gzclp", h.HandleSetupGZCLP).Methods("POST", "OPTIONS").Name("new-gzclp-program")
	r.HandleFunc("/programs/ballet", h.HandleSetupBallet).Methods("POST", "OPTIONS").Name("new-ballet-program")
	r.Handle("/programs/import", importHandler).Methods("POST", "OPTIONS").Name("import-program")
	r.HandleFunc("/programs/{id}", h.HandleGetProgram).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/programs/{id}", h.HandleUpdateProgram).Methods("PUT", "OPTIONS").Name("update-program")
	r.HandleFunc("/programs/{id}", h.HandleDeleteProgram).Methods("DELETE", "OPTIONS").Name("delete-program")
	r.HandleFunc("/programs/{id}/activities", h.HandleGetActivities).Methods("GET", "OPTIONS").Name("get-activities")
	r.HandleFunc("/programs/{id}/activities", h.HandleSaveActivities).Methods("PUT", "OPTIONS").Name("save-activities")
	r.HandleFunc("/programs/{id}/export", h.HandleExportProgram).Methods("GET", "OPTIONS").Name("export-program")
	r.HandleFunc("/gzclp/{id}/next", h.HandleNextWorkout).Methods("GET", "OPTIONS").Name("gzclp-next")

	r.HandleFunc("/agenda", h.HandleAgenda).Methods("GET", "OPTIONS").Name("agenda")
	r.HandleFunc("/agenda.ics", h.HandleAgendaICal).Methods("GET", "OPTIONS").Name("agenda-ics")

	r.HandleFunc("/sessions/{programId}/{date}", h.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/sessions/{programId}/{date}/start", h.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/sessions/{programId}/{date}/skip", h.HandleSkipSession).Methods("POST", "OPTIONS").Name("skip-session")
	r.HandleFunc("/sessions/{programId}/{date}/complete", h.HandleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")
	r.HandleFunc("/sessions/{programId}/{date}/activities", h.HandleLogActivity).Methods("PUT", "OPTIONS").Name("log-activity")
	r.HandleFunc("/sessions/{programId}/{date}/activities/{activityId}/sets", h.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")

	r.HandleFunc("/ballet/exercises", h.HandleBalletExercises).Methods("GET", "OPTIONS").Name("ballet-exercises")
	r.HandleFunc("/ballet/glossary", h.HandleBalletGlossary).Methods("GET", "OPTIONS").Name("ballet-glossary")
}

// writeError maps the error taxonomy onto status codes. Validation reasons are shown to the user,
// everything else is logged and hidden.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, program.ErrValidation):
		var verr *program.ValidationError
		reason := err.Error()
		if errors.As(err, &verr) {
			reason = verr.Reason
		}
		http.Error(w, reason, http.StatusBadRequest)
	case errors.Is(err, program.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("op: %s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return program.Invalid("request body is empty")
		}
		return program.Invalid("invalid request body: %s", err)
	}
	return nil
}

func sessionKey(r *http.Request) (program.SessionKey, error) {
	vars := mux.Vars(r)
	date, err := program.ParseDate(vars["date"])
	if err != nil {
		return program.SessionKey{}, program.Invalid("invalid date: %s", vars["date"])
	}
	return program.SessionKey{Date: date, ProgramID: vars["programId"]}, nil
}

func queryDays(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return fallback, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 0, program.Invalid("days must be a positive number, got %q", raw)
	}
	return days, nil
}

func (h *Handler) countProgram(event string) {
	if h.metricsManager != nil {
		h.metricsManager.CounterPrograms.WithLabelValues(event).Inc()
	}
}

func (h *Handler) countSession(event string) {
	if h.metricsManager != nil {
		h.metricsManager.CounterSessions.WithLabelValues(event).Inc()
	}
}

func writeCreated(w http.ResponseWriter, v any) {
	pkg.WriteJSON(w, http.StatusCreated, v)
}

func writeOK(w http.ResponseWriter, v any) {
	pkg.WriteJSON(w, http.StatusOK, v)
}

func attachmentHeader(fileName string) string {
	return fmt.Sprintf("attachment; filename=%q", fileName)
}
