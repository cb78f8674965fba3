package gzclp

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/2beens/practicetracker/internal/tracker/program"
)

const DefaultProgramName = "GZCLP Program"

type SetupParams struct {
	ProgramID string
	Name      string
	// days reference library or custom exercise ids
	Days            []WorkoutDay
	CustomExercises []Exercise
	// by exercise id, every used exercise needs one
	StartingWeights map[string]float64
	Now             time.Time
}

type SetupResult struct {
	Program    program.Program
	Activities []program.Activity
	// days reference activity ids
	Days []WorkoutDay
}

// Setup builds a GZCLP program with one activity per used exercise.
func Setup(params SetupParams) (*SetupResult, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, program.Invalid("Invalid program name")
	}
	if err := validateRotation(params.Days); err != nil {
		return nil, err
	}

	library := make(map[string]Exercise, len(DefaultExercises)+len(params.CustomExercises))
	for _, ex := range DefaultExercises {
		library[ex.ID] = ex
	}
	for _, ex := range params.CustomExercises {
		library[ex.ID] = ex
	}

	programID := params.ProgramID
	if programID == "" {
		programID = program.NewID()
	}
	activityID := func(exerciseID string) string {
		return programID + "_" + exerciseID
	}

	var (
		activities []program.Activity
		used       = map[string]bool{}
	)
	for _, day := range sortedDays(params.Days) {
		for _, slot := range day.Slots() {
			if used[slot.ActivityID] {
				continue
			}
			ex, ok := library[slot.ActivityID]
			if !ok {
				return nil, program.Invalid("unknown exercise: %s", slot.ActivityID)
			}
			weight := params.StartingWeights[ex.ID]
			if weight <= 0 {
				return nil, program.Invalid("starting weight for %s must be positive", ex.Name)
			}
			used[ex.ID] = true
			activities = append(activities, program.Activity{
				ID:             activityID(ex.ID),
				Name:           ex.Name,
				ProgramID:      programID,
				TrackingType:   program.TrackingSetsRepsWeight,
				MuscleGroups:   ex.MuscleGroups,
				Equipment:      ex.Equipment,
				Tier:           ex.Tier,
				StartingWeight: weight,
			})
		}
	}

	days := make([]WorkoutDay, 0, DaysInRotation)
	for _, day := range sortedDays(params.Days) {
		t3 := make([]string, 0, len(day.T3ExerciseIDs))
		for _, id := range day.T3ExerciseIDs {
			t3 = append(t3, activityID(id))
		}
		days = append(days, WorkoutDay{
			DayNumber:     day.DayNumber,
			Name:          day.Name,
			T1ExerciseID:  activityID(day.T1ExerciseID),
			T2ExerciseID:  activityID(day.T2ExerciseID),
			T3ExerciseIDs: t3,
		})
	}

	return &SetupResult{
		Program: program.Program{
			ID:             programID,
			Name:           name,
			Type:           program.TypeGZCLP,
			Schedule:       program.Rotation{},
			IsActive:       true,
			CreatedAt:      params.Now,
			CurrentWeek:    1,
			LastWorkoutDay: 0,
		},
		Activities: activities,
		Days:       days,
	}, nil
}

func validateRotation(days []WorkoutDay) error {
	if len(days) != DaysInRotation {
		return program.Invalid("GZCLP needs %d workout days, got %d", DaysInRotation, len(days))
	}
	seen := map[int]bool{}
	for _, d := range days {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.DayNumber] {
			return program.Invalid("duplicate day number: %d", d.DayNumber)
		}
		seen[d.DayNumber] = true
	}
	return nil
}

func sortedDays(days []WorkoutDay) []WorkoutDay {
	sorted := make([]WorkoutDay, 0, len(days))
	for n := 1; n <= DaysInRotation; n++ {
		if d, ok := FindDay(days, n); ok {
			sorted = append(sorted, d)
		}
	}
	return sorted
}

var nonSlugChars = regexp.MustCompile(`\s+`)

// NewCustomExercise creates a user exercise outside the default library.
func NewCustomExercise(name string, tier program.Tier, now time.Time) (Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Exercise{}, program.Invalid("exercise name is required")
	}
	if _, ok := ConfigFor(tier); !ok {
		return Exercise{}, program.Invalid("invalid tier: %s", tier)
	}
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "_")
	return Exercise{
		ID:           fmt.Sprintf("custom_%s_%d", slug, now.UnixMilli()),
		Name:         name,
		Tier:         tier,
		MuscleGroups: []string{},
		Equipment:    "Other",
	}, nil
}

// DayActivities returns the activities trained on the day, in slot order.
func DayActivities(day WorkoutDay, activities []program.Activity) []program.Activity {
	byID := make(map[string]program.Activity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}
	var result []program.Activity
	seen := map[string]bool{}
	for _, slot := range day.Slots() {
		a, ok := byID[slot.ActivityID]
		if !ok || seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		result = append(result, a)
	}
	return result
}
