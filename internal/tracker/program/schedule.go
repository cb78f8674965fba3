package program

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

type ScheduleMode string

const (
	ModeWeekly   ScheduleMode = "weekly"
	ModeInterval ScheduleMode = "interval"
	ModeFlexible ScheduleMode = "flexible"
	ModeRotation ScheduleMode = "rotation"
)

// Schedule is one of Weekly, Interval, Flexible or Rotation.
type Schedule interface {
	Mode() ScheduleMode
	isSchedule()
}

// Weekly is due on the listed weekdays.
type Weekly struct {
	Days []time.Weekday
}

// Interval is due every N days, counted from the program creation date.
type Interval struct {
	Days int
}

// Flexible is due every day.
type Flexible struct{}

// Rotation advances on completion instead of following the calendar (GZCLP).
type Rotation struct{}

func (Weekly) Mode() ScheduleMode   { return ModeWeekly }
func (Interval) Mode() ScheduleMode { return ModeInterval }
func (Flexible) Mode() ScheduleMode { return ModeFlexible }
func (Rotation) Mode() ScheduleMode { return ModeRotation }

func (Weekly) isSchedule()   {}
func (Interval) isSchedule() {}
func (Flexible) isSchedule() {}
func (Rotation) isSchedule() {}

func (w Weekly) Includes(day time.Weekday) bool {
	return slices.Contains(w.Days, day)
}

type scheduleWire struct {
	Mode         ScheduleMode `json:"mode"`
	DaysOfWeek   []int        `json:"daysOfWeek,omitempty"`
	IntervalDays int          `json:"intervalDays,omitempty"`
}

func MarshalSchedule(s Schedule) ([]byte, error) {
	var wire scheduleWire
	switch sched := s.(type) {
	case Weekly:
		wire.Mode = ModeWeekly
		wire.DaysOfWeek = make([]int, 0, len(sched.Days))
		for _, d := range sched.Days {
			wire.DaysOfWeek = append(wire.DaysOfWeek, int(d))
		}
	case Interval:
		wire.Mode = ModeInterval
		wire.IntervalDays = sched.Days
	case Flexible:
		wire.Mode = ModeFlexible
	case Rotation:
		wire.Mode = ModeRotation
	case nil:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unknown schedule type %T", s)
	}
	return json.Marshal(wire)
}

// UnmarshalSchedule decodes the {mode, daysOfWeek, intervalDays} wire object.
// Fields that do not belong to the mode are ignored.
func UnmarshalSchedule(data []byte) (Schedule, error) {
	var wire scheduleWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, Invalid("Invalid schedule")
	}

	switch wire.Mode {
	case ModeWeekly:
		days := make([]time.Weekday, 0, len(wire.DaysOfWeek))
		for _, d := range wire.DaysOfWeek {
			days = append(days, time.Weekday(d))
		}
		return Weekly{Days: days}, nil
	case ModeInterval:
		return Interval{Days: wire.IntervalDays}, nil
	case ModeFlexible:
		return Flexible{}, nil
	case ModeRotation:
		return Rotation{}, nil
	default:
		return nil, Invalid("Invalid schedule")
	}
}
