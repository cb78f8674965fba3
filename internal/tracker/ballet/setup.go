package ballet

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/schedule"
)

// Routine groups the movements of one class section; it becomes a completion activity.
type Routine struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Section   Section            `json:"section"`
	Notes     string             `json:"notes,omitempty"`
	Movements []program.Movement `json:"movements"`
}

// DefaultRoutines groups the class exercises into one routine per section, in catalog order.
func DefaultRoutines(classType ClassType, level Level, now time.Time) ([]Routine, error) {
	exercises, err := ExercisesForClass(classType, level)
	if err != nil {
		return nil, err
	}

	var routines []Routine
	index := map[Section]int{}
	for _, ex := range exercises {
		i, ok := index[ex.Section]
		if !ok {
			i = len(routines)
			index[ex.Section] = i
			routines = append(routines, Routine{
				ID:      fmt.Sprintf("routine_%s_%d", ex.Section, now.UnixMilli()),
				Name:    ex.Section.Label(),
				Section: ex.Section,
			})
		}
		routines[i].Movements = append(routines[i].Movements, program.Movement{ID: ex.ID, Name: ex.Name})
	}
	return routines, nil
}

func DefaultName(classType ClassType, level Level) string {
	classLabel, ok := classLabels[classType]
	if !ok {
		classLabel = "Ballet"
	}
	return strings.TrimSpace(levelLabels[level] + " " + classLabel)
}

type SetupParams struct {
	ProgramID string
	// empty uses DefaultName
	Name      string
	ClassType ClassType
	Level     Level
	Schedule  program.Schedule
	// nil uses DefaultRoutines
	Routines []Routine
	Now      time.Time
}

type SetupResult struct {
	Program    program.Program
	Activities []program.Activity
}

func Setup(params SetupParams) (*SetupResult, error) {
	if err := schedule.Validate(params.Schedule); err != nil {
		return nil, err
	}
	if _, ok := params.Schedule.(program.Rotation); ok {
		return nil, program.Invalid("rotation schedule is reserved for GZCLP")
	}

	routines := params.Routines
	if routines == nil {
		defaults, err := DefaultRoutines(params.ClassType, params.Level, params.Now)
		if err != nil {
			return nil, err
		}
		routines = defaults
	}

	totalMovements := 0
	for _, r := range routines {
		totalMovements += len(r.Movements)
	}
	if len(routines) == 0 || totalMovements == 0 {
		return nil, program.Invalid("a ballet class needs at least one movement")
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		name = DefaultName(params.ClassType, params.Level)
	}

	programID := params.ProgramID
	if programID == "" {
		programID = program.NewID()
	}

	activities := make([]program.Activity, 0, len(routines))
	for _, r := range routines {
		activities = append(activities, program.Activity{
			ID:           programID + "_" + r.ID,
			Name:         r.Name,
			ProgramID:    programID,
			TrackingType: program.TrackingCompletion,
			Description:  r.Notes,
			Movements:    r.Movements,
		})
	}

	return &SetupResult{
		Program: program.Program{
			ID:        programID,
			Name:      name,
			Type:      program.TypeBallet,
			Schedule:  params.Schedule,
			IsActive:  true,
			CreatedAt: params.Now,
		},
		Activities: activities,
	}, nil
}
