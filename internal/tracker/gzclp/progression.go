package gzclp

import (
	"slices"

	"github.com/2beens/practicetracker/internal/tracker/program"
)

// NextWeight computes the weight prescribed for the next cycle from exactly one
// completed cycle of sets. ok is false when there is nothing to base it on.
// Warmup sets never count.
func NextWeight(tier program.Tier, lastCycleSets []program.SetLog) (weight float64, ok bool) {
	cfg, known := ConfigFor(tier)
	if !known {
		return 0, false
	}

	working := make([]program.SetLog, 0, len(lastCycleSets))
	for _, s := range lastCycleSets {
		if !s.IsWarmup {
			working = append(working, s)
		}
	}
	if len(working) == 0 {
		return 0, false
	}

	// logging order must not matter
	slices.SortStableFunc(working, func(a, b program.SetLog) int {
		return a.SetNumber - b.SetNumber
	})

	amrapIdx := -1
	for i, s := range working {
		if s.IsAmrap {
			amrapIdx = i
		}
	}
	if amrapIdx < 0 {
		return working[0].Weight, true
	}
	amrap := working[amrapIdx]

	switch tier {
	case program.TierT3:
		total := 0
		for _, s := range working {
			total += s.Reps
		}
		if total >= cfg.ProgressionThreshold {
			return amrap.Weight + cfg.WeightIncrement, true
		}
	default:
		if amrap.Reps >= cfg.ProgressionThreshold {
			return amrap.Weight + cfg.WeightIncrement, true
		}
	}

	return amrap.Weight, true
}

// Prescribe computes next weights for every slot of the day that has logged sets.
func Prescribe(day WorkoutDay, session *program.Session) []Prescription {
	var prescriptions []Prescription
	for _, slot := range day.Slots() {
		log := session.ActivityLog(slot.ActivityID)
		if log == nil {
			continue
		}
		weight, ok := NextWeight(slot.Tier, log.Sets)
		if !ok {
			continue
		}
		prescriptions = append(prescriptions, Prescription{
			ActivityID: slot.ActivityID,
			Tier:       slot.Tier,
			Weight:     weight,
		})
	}
	return prescriptions
}

// MergePrescriptions overwrites existing entries with updates for the same activity and tier.
func MergePrescriptions(existing, updates []Prescription) []Prescription {
	type slotKey struct {
		activityID string
		tier       program.Tier
	}
	merged := slices.Clone(existing)
	index := make(map[slotKey]int, len(merged))
	for i, p := range merged {
		index[slotKey{p.ActivityID, p.Tier}] = i
	}
	for _, p := range updates {
		k := slotKey{p.ActivityID, p.Tier}
		if i, ok := index[k]; ok {
			merged[i] = p
			continue
		}
		index[k] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

// CurrentWeight is the weight to load for a slot: the latest prescription, else the starting weight.
func CurrentWeight(slot Slot, activity program.Activity, prescriptions []Prescription) float64 {
	for _, p := range prescriptions {
		if p.ActivityID == slot.ActivityID && p.Tier == slot.Tier {
			return p.Weight
		}
	}
	return activity.StartingWeight
}
