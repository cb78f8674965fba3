package api

import (
	"net/http"

	"github.com/2beens/practicetracker/internal/tracker/ballet"
	"github.com/2beens/practicetracker/internal/tracker/calendar"
	"github.com/2beens/practicetracker/pkg"
)

type agendaResponse struct {
	Today string               `json:"today"`
	Days  []calendar.DayAgenda `json:"days"`
}

func (h *Handler) HandleAgenda(w http.ResponseWriter, r *http.Request) {
	days, err := queryDays(r, h.agendaDays)
	if err != nil {
		writeError(w, "agenda", err)
		return
	}
	agenda, err := h.agenda.Agenda(r.Context(), days)
	if err != nil {
		writeError(w, "agenda", err)
		return
	}
	writeOK(w, agendaResponse{
		Today: h.agenda.Today().String(),
		Days:  agenda,
	})
}

func (h *Handler) HandleAgendaICal(w http.ResponseWriter, r *http.Request) {
	days, err := queryDays(r, calendar.MaxWindowDays)
	if err != nil {
		writeError(w, "agenda ical", err)
		return
	}
	agenda, err := h.agenda.Agenda(r.Context(), days)
	if err != nil {
		writeError(w, "agenda ical", err)
		return
	}
	w.Header().Set("Content-Disposition", attachmentHeader("agenda.ics"))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.Calendar, []byte(calendar.ICal(agenda, h.now())))
}

func (h *Handler) HandleBalletExercises(w http.ResponseWriter, r *http.Request) {
	classType := r.URL.Query().Get("class")
	if classType == "" {
		catalog, err := ballet.Catalog()
		if err != nil {
			writeError(w, "ballet catalog", err)
			return
		}
		writeOK(w, catalog)
		return
	}

	level := r.URL.Query().Get("level")
	if level == "" {
		level = string(ballet.LevelBeginner)
	}
	exercises, err := ballet.ExercisesForClass(ballet.ClassType(classType), ballet.Level(level))
	if err != nil {
		writeError(w, "ballet exercises", err)
		return
	}
	writeOK(w, exercises)
}

func (h *Handler) HandleBalletGlossary(w http.ResponseWriter, r *http.Request) {
	entries, err := ballet.SearchGlossary(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, "ballet glossary", err)
		return
	}
	writeOK(w, entries)
}
