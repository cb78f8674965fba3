package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/practicetracker/internal/tracker/program"

	ics "github.com/arran4/golang-ical"
)

const icalProductID = "-//2beens//practice tracker//EN"

// ICal renders the agenda as an iCalendar feed with one all-day event per scheduled session.
func ICal(agenda []DayAgenda, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icalProductID)
	cal.SetXWRCalName("Practice")

	for _, day := range agenda {
		for _, entry := range day.Sessions {
			event := cal.AddEvent(fmt.Sprintf("%s-%s@practicetracker", entry.Date, entry.ProgramID))
			event.SetDtStampTime(stamp)
			event.SetAllDayStartAt(entry.Date.Time())
			event.SetAllDayEndAt(entry.Date.AddDays(1).Time())
			event.SetSummary(eventSummary(entry))
			if description := eventDescription(entry); description != "" {
				event.SetDescription(description)
			}
			if entry.Session != nil {
				if entry.Session.Status == program.StatusSkipped {
					event.SetStatus(ics.ObjectStatusCancelled)
				} else {
					event.SetStatus(ics.ObjectStatusConfirmed)
				}
			} else {
				event.SetStatus(ics.ObjectStatusTentative)
			}
		}
	}

	return cal.Serialize()
}

func eventSummary(entry ScheduledSession) string {
	summary := entry.ProgramName
	if entry.Workout != nil && entry.Workout.Name != "" {
		summary += ": " + entry.Workout.Name
	}
	if entry.Session != nil {
		summary += " [" + string(entry.Session.Status) + "]"
	}
	return summary
}

func eventDescription(entry ScheduledSession) string {
	var b strings.Builder
	if entry.Workout != nil {
		for _, ex := range entry.Workout.Exercises {
			fmt.Fprintf(&b, "%s %s %dx%d @ %g\n", ex.Tier, ex.Name, ex.Sets, ex.Reps, ex.Weight)
		}
		return strings.TrimSpace(b.String())
	}
	for _, a := range entry.Activities {
		b.WriteString("- " + a.Name + "\n")
	}
	return strings.TrimSpace(b.String())
}
