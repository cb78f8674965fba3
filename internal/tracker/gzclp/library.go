package gzclp

import (
	"github.com/2beens/practicetracker/internal/tracker/program"
)

// Exercise is a library entry; it becomes an activity once a program uses it.
type Exercise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Tier         program.Tier `json:"tier"`
	MuscleGroups []string     `json:"muscleGroups"`
	Equipment    string       `json:"equipment"`
}

var DefaultExercises = []Exercise{
	{ID: "squat", Name: "Squat", Tier: program.TierT1, MuscleGroups: []string{"Quads", "Glutes"}, Equipment: "Barbell"},
	{ID: "bench", Name: "Bench Press", Tier: program.TierT1, MuscleGroups: []string{"Chest", "Triceps"}, Equipment: "Barbell"},
	{ID: "deadlift", Name: "Deadlift", Tier: program.TierT1, MuscleGroups: []string{"Back", "Hamstrings"}, Equipment: "Barbell"},
	{ID: "ohp", Name: "Overhead Press", Tier: program.TierT1, MuscleGroups: []string{"Shoulders", "Triceps"}, Equipment: "Barbell"},

	{ID: "rdl", Name: "Romanian Deadlift", Tier: program.TierT2, MuscleGroups: []string{"Hamstrings", "Back"}, Equipment: "Barbell"},
	{ID: "incline_bench", Name: "Incline Bench Press", Tier: program.TierT2, MuscleGroups: []string{"Chest", "Shoulders"}, Equipment: "Barbell"},
	{ID: "bb_row", Name: "Barbell Row", Tier: program.TierT2, MuscleGroups: []string{"Back", "Biceps"}, Equipment: "Barbell"},
	{ID: "front_squat", Name: "Front Squat", Tier: program.TierT2, MuscleGroups: []string{"Quads", "Core"}, Equipment: "Barbell"},
	{ID: "close_grip_bench", Name: "Close-Grip Bench Press", Tier: program.TierT2, MuscleGroups: []string{"Triceps", "Chest"}, Equipment: "Barbell"},

	{ID: "lat_pulldown", Name: "Lat Pulldown", Tier: program.TierT3, MuscleGroups: []string{"Back", "Biceps"}, Equipment: "Cable"},
	{ID: "cable_fly", Name: "Cable Fly", Tier: program.TierT3, MuscleGroups: []string{"Chest"}, Equipment: "Cable"},
	{ID: "leg_curl", Name: "Leg Curl", Tier: program.TierT3, MuscleGroups: []string{"Hamstrings"}, Equipment: "Machine"},
	{ID: "leg_extension", Name: "Leg Extension", Tier: program.TierT3, MuscleGroups: []string{"Quads"}, Equipment: "Machine"},
	{ID: "face_pull", Name: "Face Pull", Tier: program.TierT3, MuscleGroups: []string{"Shoulders", "Back"}, Equipment: "Cable"},
	{ID: "db_curl", Name: "Dumbbell Curl", Tier: program.TierT3, MuscleGroups: []string{"Biceps"}, Equipment: "Dumbbell"},
	{ID: "tricep_pushdown", Name: "Tricep Pushdown", Tier: program.TierT3, MuscleGroups: []string{"Triceps"}, Equipment: "Cable"},
}

// WorkoutDay maps one rotation day to its exercises. Ids are activity ids once set up.
type WorkoutDay struct {
	DayNumber     int      `json:"dayNumber"`
	Name          string   `json:"name"`
	T1ExerciseID  string   `json:"t1ExerciseId"`
	T2ExerciseID  string   `json:"t2ExerciseId"`
	T3ExerciseIDs []string `json:"t3ExerciseIds"`
}

func DefaultWorkoutDays() []WorkoutDay {
	return []WorkoutDay{
		{DayNumber: 1, Name: "Day 1 - Squat Focus", T1ExerciseID: "squat", T2ExerciseID: "bench", T3ExerciseIDs: []string{"lat_pulldown"}},
		{DayNumber: 2, Name: "Day 2 - Bench Focus", T1ExerciseID: "bench", T2ExerciseID: "rdl", T3ExerciseIDs: []string{"db_curl"}},
		{DayNumber: 3, Name: "Day 3 - Deadlift Focus", T1ExerciseID: "deadlift", T2ExerciseID: "ohp", T3ExerciseIDs: []string{"leg_curl"}},
		{DayNumber: 4, Name: "Day 4 - OHP Focus", T1ExerciseID: "ohp", T2ExerciseID: "front_squat", T3ExerciseIDs: []string{"tricep_pushdown"}},
	}
}

// Slots returns the exercise ids of the day with the tier each is trained at.
func (d WorkoutDay) Slots() []Slot {
	slots := []Slot{
		{ActivityID: d.T1ExerciseID, Tier: program.TierT1},
		{ActivityID: d.T2ExerciseID, Tier: program.TierT2},
	}
	for _, id := range d.T3ExerciseIDs {
		slots = append(slots, Slot{ActivityID: id, Tier: program.TierT3})
	}
	return slots
}

func (d WorkoutDay) Validate() error {
	if d.DayNumber < 1 || d.DayNumber > DaysInRotation {
		return program.Invalid("invalid day number: %d", d.DayNumber)
	}
	if d.T1ExerciseID == "" || d.T2ExerciseID == "" {
		return program.Invalid("day %d needs a T1 and a T2 exercise", d.DayNumber)
	}
	if len(d.T3ExerciseIDs) < 1 || len(d.T3ExerciseIDs) > 3 {
		return program.Invalid("day %d needs 1 to 3 T3 exercises, got %d", d.DayNumber, len(d.T3ExerciseIDs))
	}
	// one activity log per exercise, so a day may train an exercise at one tier only
	seen := make(map[string]bool, 2+len(d.T3ExerciseIDs))
	for _, slot := range d.Slots() {
		if seen[slot.ActivityID] {
			return program.Invalid("day %d uses %s more than once", d.DayNumber, slot.ActivityID)
		}
		seen[slot.ActivityID] = true
	}
	return nil
}

func FindDay(days []WorkoutDay, dayNumber int) (WorkoutDay, bool) {
	for _, d := range days {
		if d.DayNumber == dayNumber {
			return d, true
		}
	}
	return WorkoutDay{}, false
}

// Slot is an exercise trained at a tier on a given day.
type Slot struct {
	ActivityID string
	Tier       program.Tier
}

// Prescription is the weight to use next time an exercise is trained at a tier.
type Prescription struct {
	ActivityID string       `json:"activityId"`
	Tier       program.Tier `json:"tier"`
	Weight     float64      `json:"weight"`
}
