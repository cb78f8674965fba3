// Package calendar projects program schedules over a rolling window of days.
package calendar

import (
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/schedule"
)

type ScheduledSession struct {
	ProgramID   string             `json:"programId"`
	ProgramName string             `json:"programName"`
	ProgramType program.Type       `json:"programType"`
	Date        program.Date       `json:"date"`
	Activities  []program.Activity `json:"activities"`
	// nil until the occurrence is started or skipped
	Session *program.Session `json:"session,omitempty"`
	// GZCLP only
	Workout *gzclp.Workout `json:"workout,omitempty"`
}

type DayAgenda struct {
	Date     program.Date       `json:"date"`
	Sessions []ScheduledSession `json:"sessions"`
}

type ProjectParams struct {
	// in display order, kept as is
	Programs            []program.Program
	ActivitiesByProgram map[string][]program.Activity
	Sessions            map[program.SessionKey]*program.Session
	From                program.Date
	NumDays             int
	// days before Today are never projected; zero disables the cut
	Today program.Date
}

// Project lists, day by day, the occurrences of the programs scheduled in [From, From+NumDays).
// Days without any occurrence are left out.
func Project(params ProjectParams) []DayAgenda {
	var agenda []DayAgenda
	for i := 0; i < params.NumDays; i++ {
		date := params.From.AddDays(i)
		if !params.Today.IsZero() && date.Before(params.Today) {
			continue
		}

		var sessions []ScheduledSession
		for pi := range params.Programs {
			p := &params.Programs[pi]
			if !schedule.IsScheduled(p, date) {
				continue
			}
			sessions = append(sessions, ScheduledSession{
				ProgramID:   p.ID,
				ProgramName: p.Name,
				ProgramType: p.Type,
				Date:        date,
				Activities:  params.ActivitiesByProgram[p.ID],
				Session:     params.Sessions[program.SessionKey{Date: date, ProgramID: p.ID}],
			})
		}
		if len(sessions) == 0 {
			continue
		}
		agenda = append(agenda, DayAgenda{Date: date, Sessions: sessions})
	}
	return agenda
}
