package schedule

import (
	"time"

	"github.com/2beens/practicetracker/internal/tracker/program"
)

// IsScheduled reports whether p is due on date. It depends only on p and date.
func IsScheduled(p *program.Program, date program.Date) bool {
	if p == nil || !p.IsActive {
		return false
	}

	switch sched := p.Schedule.(type) {
	case program.Weekly:
		return sched.Includes(date.Weekday())
	case program.Interval:
		d := date.DaysSince(p.CreatedDate())
		if d < 0 {
			return false
		}
		return d%max(sched.Days, 1) == 0
	case program.Flexible:
		return !date.Before(p.CreatedDate())
	case program.Rotation:
		// available every day; which workout is next comes from the rotation pointer
		return !date.Before(p.CreatedDate())
	default:
		return false
	}
}

// Validate rejects schedule configurations that cannot be evaluated.
func Validate(s program.Schedule) error {
	switch sched := s.(type) {
	case program.Weekly:
		if len(sched.Days) == 0 {
			return program.Invalid("weekly schedule needs at least one day")
		}
		seen := make(map[time.Weekday]bool, len(sched.Days))
		for _, d := range sched.Days {
			if d < time.Sunday || d > time.Saturday {
				return program.Invalid("invalid weekday: %d", d)
			}
			if seen[d] {
				return program.Invalid("duplicate weekday: %d", d)
			}
			seen[d] = true
		}
		return nil
	case program.Interval:
		if sched.Days <= 0 {
			return program.Invalid("interval days must be positive, got %d", sched.Days)
		}
		return nil
	case program.Flexible, program.Rotation:
		return nil
	default:
		return program.Invalid("Invalid schedule")
	}
}
