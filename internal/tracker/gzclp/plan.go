package gzclp

import (
	"github.com/2beens/practicetracker/internal/tracker/program"
)

// PlannedExercise is one slot of a workout with the load to use.
type PlannedExercise struct {
	ActivityID string       `json:"activityId"`
	Name       string       `json:"name"`
	Tier       program.Tier `json:"tier"`
	Sets       int          `json:"sets"`
	Reps       int          `json:"reps"`
	Weight     float64      `json:"weight"`
}

type Workout struct {
	DayNumber   int               `json:"dayNumber"`
	Name        string            `json:"name"`
	CurrentWeek int               `json:"currentWeek"`
	Exercises   []PlannedExercise `json:"exercises"`
}

// PlanWorkout lays out the day with the current weight of each slot.
// Slots whose activity is missing are left out.
func PlanWorkout(p *program.Program, day WorkoutDay, activities []program.Activity, prescriptions []Prescription) Workout {
	byID := make(map[string]program.Activity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}

	workout := Workout{
		DayNumber:   day.DayNumber,
		Name:        day.Name,
		CurrentWeek: max(p.CurrentWeek, 1),
	}
	for _, slot := range day.Slots() {
		activity, ok := byID[slot.ActivityID]
		if !ok {
			continue
		}
		cfg := Tiers[slot.Tier]
		workout.Exercises = append(workout.Exercises, PlannedExercise{
			ActivityID: activity.ID,
			Name:       activity.Name,
			Tier:       slot.Tier,
			Sets:       cfg.Sets,
			Reps:       cfg.Reps,
			Weight:     CurrentWeight(slot, activity, prescriptions),
		})
	}
	return workout
}
