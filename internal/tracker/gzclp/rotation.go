package gzclp

import (
	"github.com/2beens/practicetracker/internal/tracker/program"
)

// NextDay returns the rotation day (1-4) to perform next.
func NextDay(p *program.Program) int {
	if p.LastWorkoutDay <= 0 {
		return 1
	}
	return p.LastWorkoutDay%DaysInRotation + 1
}

// RecordCompletion stores the day just completed on p. A full rotation bumps the week.
func RecordCompletion(p *program.Program, day int) error {
	if day < 1 || day > DaysInRotation {
		return program.Invalid("invalid GZCLP day: %d", day)
	}
	p.LastWorkoutDay = day
	if day == DaysInRotation {
		p.CurrentWeek = max(p.CurrentWeek, 1) + 1
	}
	return nil
}
