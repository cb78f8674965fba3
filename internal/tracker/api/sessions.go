package api

import (
	"net/http"

	"github.com/2beens/practicetracker/internal/telemetry/tracing"
	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/session"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

type skipRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		writeError(w, "get session", err)
		return
	}
	sess, err := h.sessions.Get(r.Context(), key)
	if err != nil {
		writeError(w, "get session", err)
		return
	}
	writeOK(w, sess)
}

func (h *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.session.start")
	defer span.End()

	key, err := sessionKey(r)
	if err != nil {
		writeError(w, "start session", err)
		return
	}
	span.SetAttributes(attribute.String("session", key.String()))

	res, err := h.sessions.Start(ctx, key.ProgramID, key.Date)
	if err != nil {
		writeError(w, "start session", err)
		return
	}
	if !res.Created {
		writeOK(w, res)
		return
	}
	h.countSession("started")
	writeCreated(w, res)
}

func (h *Handler) HandleSkipSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.session.skip")
	defer span.End()

	key, err := sessionKey(r)
	if err != nil {
		writeError(w, "skip session", err)
		return
	}
	// the reason is optional, so is the body
	var req skipRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, "skip session", err)
			return
		}
	}

	sess, err := h.sessions.Skip(ctx, key.ProgramID, key.Date, req.Reason)
	if err != nil {
		writeError(w, "skip session", err)
		return
	}
	h.countSession("skipped")
	writeOK(w, sess)
}

func (h *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.session.complete")
	defer span.End()

	key, err := sessionKey(r)
	if err != nil {
		writeError(w, "complete session", err)
		return
	}
	var req session.CompleteParams
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, "complete session", err)
			return
		}
	}

	res, err := h.sessions.Complete(ctx, key, req)
	if err != nil {
		writeError(w, "complete session", err)
		return
	}
	h.countSession("completed")
	if h.metricsManager != nil && res.Session.Duration != nil {
		h.metricsManager.HistSessionDurationMinute.Observe(float64(*res.Session.Duration))
	}
	writeOK(w, res)
}

func (h *Handler) HandleLogActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.session.log_activity")
	defer span.End()

	key, err := sessionKey(r)
	if err != nil {
		writeError(w, "log activity", err)
		return
	}
	var entry program.ActivityLog
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, "log activity", err)
		return
	}

	sess, err := h.sessions.LogActivity(ctx, key, entry)
	if err != nil {
		writeError(w, "log activity", err)
		return
	}
	if h.metricsManager != nil {
		h.metricsManager.CounterActivitiesLogged.Inc()
	}
	writeOK(w, sess)
}

func (h *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.session.add_set")
	defer span.End()

	key, err := sessionKey(r)
	if err != nil {
		writeError(w, "add set", err)
		return
	}
	var in session.SetInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, "add set", err)
		return
	}

	sess, err := h.sessions.AddSet(ctx, key, mux.Vars(r)["activityId"], in)
	if err != nil {
		writeError(w, "add set", err)
		return
	}
	if h.metricsManager != nil {
		h.metricsManager.CounterSetsLogged.Inc()
	}
	writeCreated(w, sess)
}
