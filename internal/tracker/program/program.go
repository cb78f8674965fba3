package program

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeWeightlifting Type = "weightlifting"
	TypeGZCLP         Type = "gzclp"
	TypeBallet        Type = "ballet"
	TypeSkill         Type = "skill"
	TypeCardio        Type = "cardio"
	TypeCustom        Type = "custom"
)

var Types = []Type{
	TypeWeightlifting,
	TypeGZCLP,
	TypeBallet,
	TypeSkill,
	TypeCardio,
	TypeCustom,
}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// DefaultTrackingType is used for activities added to a program of this type.
func (t Type) DefaultTrackingType() TrackingType {
	switch t {
	case TypeWeightlifting, TypeGZCLP:
		return TrackingSetsRepsWeight
	case TypeSkill, TypeCardio:
		return TrackingDuration
	default:
		return TrackingCompletion
	}
}

type Program struct {
	ID        string
	Name      string
	Type      Type
	Schedule  Schedule
	IsActive  bool
	CreatedAt time.Time

	// GZCLP only
	CurrentWeek    int
	LastWorkoutDay int
}

func NewID() string {
	return "program_" + uuid.NewString()
}

func (p *Program) CreatedDate() Date {
	return DateOf(p.CreatedAt)
}

func (p *Program) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Invalid("Invalid program name")
	}
	if !p.Type.Valid() {
		return Invalid("Invalid program type")
	}
	if p.Schedule == nil {
		return Invalid("Invalid schedule")
	}
	if p.Type == TypeGZCLP {
		if _, ok := p.Schedule.(Rotation); !ok {
			return Invalid("GZCLP programs use the rotation schedule")
		}
		if p.LastWorkoutDay < 0 || p.LastWorkoutDay > 4 {
			return Invalid("Invalid last workout day: %d", p.LastWorkoutDay)
		}
	}
	return nil
}

type programWire struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           Type            `json:"type"`
	Schedule       json.RawMessage `json:"schedule"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	CurrentWeek    int             `json:"currentWeek,omitempty"`
	LastWorkoutDay *int            `json:"lastWorkoutDay,omitempty"`
}

func (p Program) MarshalJSON() ([]byte, error) {
	sched, err := MarshalSchedule(p.Schedule)
	if err != nil {
		return nil, err
	}
	wire := programWire{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Schedule:    sched,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		CurrentWeek: p.CurrentWeek,
	}
	if p.Type == TypeGZCLP {
		lastDay := p.LastWorkoutDay
		wire.LastWorkoutDay = &lastDay
	}
	return json.Marshal(wire)
}

func (p *Program) UnmarshalJSON(data []byte) error {
	var wire programWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var sched Schedule
	if len(wire.Schedule) > 0 && string(wire.Schedule) != "null" {
		s, err := UnmarshalSchedule(wire.Schedule)
		if err != nil {
			return err
		}
		sched = s
	}

	*p = Program{
		ID:          wire.ID,
		Name:        wire.Name,
		Type:        wire.Type,
		Schedule:    sched,
		IsActive:    wire.IsActive,
		CreatedAt:   wire.CreatedAt,
		CurrentWeek: wire.CurrentWeek,
	}
	if wire.LastWorkoutDay != nil {
		p.LastWorkoutDay = *wire.LastWorkoutDay
	}
	return nil
}
