package program

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type TrackingType string

const (
	TrackingSetsRepsWeight TrackingType = "sets-reps-weight"
	TrackingDuration       TrackingType = "duration"
	TrackingCompletion     TrackingType = "completion"
	TrackingCustom         TrackingType = "custom"
)

func (t TrackingType) Valid() bool {
	switch t {
	case TrackingSetsRepsWeight, TrackingDuration, TrackingCompletion, TrackingCustom:
		return true
	}
	return false
}

type Tier string

const (
	TierT1 Tier = "T1"
	TierT2 Tier = "T2"
	TierT3 Tier = "T3"
)

type CustomField struct {
	Name string `json:"name"`
	Type string `json:"type"` // number | text | duration | checkbox
}

// Movement is one entry of a routine (ballet sections keep their movements here).
type Movement struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Activity struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ProgramID    string        `json:"programId"`
	TrackingType TrackingType  `json:"trackingType"`
	CustomFields []CustomField `json:"customFields,omitempty"`
	Description  string        `json:"description,omitempty"`
	Movements    []Movement    `json:"movements,omitempty"`

	// weightlifting / GZCLP
	MuscleGroups   []string `json:"muscleGroups,omitempty"`
	Equipment      string   `json:"equipment,omitempty"`
	Tier           Tier     `json:"tier,omitempty"`
	StartingWeight float64  `json:"startingWeight,omitempty"`

	// minutes
	TargetDuration int `json:"targetDuration,omitempty"`
}

func NewActivityID() string {
	return "activity_" + uuid.NewString()
}

// IsSatisfiedBy reports whether the log counts this activity as done:
// at least one working set for sets-reps-weight, the completed flag otherwise.
func (a *Activity) IsSatisfiedBy(log *ActivityLog) bool {
	if log == nil {
		return false
	}
	if a.TrackingType == TrackingSetsRepsWeight {
		for _, set := range log.Sets {
			if !set.IsWarmup {
				return true
			}
		}
		return false
	}
	return log.Completed
}

var movementInstanceSuffix = regexp.MustCompile(`_\d+_[a-z0-9]+$`)

// BaseExerciseID strips the _<millis>_<random> suffix of a movement instance id.
func BaseExerciseID(movementID string) string {
	return movementInstanceSuffix.ReplaceAllString(movementID, "")
}

func NewMovementInstanceID(baseID string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", baseID, now.UnixMilli(), strconv.FormatUint(rand.Uint64()%(1<<40), 36))
}
