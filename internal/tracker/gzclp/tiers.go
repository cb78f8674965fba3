package gzclp

import (
	"github.com/2beens/practicetracker/internal/tracker/program"
)

const DaysInRotation = 4

type TierConfig struct {
	Tier            program.Tier
	Sets            int
	Reps            int
	AmrapSet        int
	WeightIncrement float64
	// T1/T2 compare AMRAP reps, T3 compares total reps of the cycle
	ProgressionThreshold int
}

var Tiers = map[program.Tier]TierConfig{
	program.TierT1: {Tier: program.TierT1, Sets: 5, Reps: 3, AmrapSet: 5, WeightIncrement: 5, ProgressionThreshold: 5},
	program.TierT2: {Tier: program.TierT2, Sets: 3, Reps: 10, AmrapSet: 3, WeightIncrement: 5, ProgressionThreshold: 10},
	program.TierT3: {Tier: program.TierT3, Sets: 3, Reps: 15, AmrapSet: 3, WeightIncrement: 5, ProgressionThreshold: 25},
}

func ConfigFor(tier program.Tier) (TierConfig, bool) {
	cfg, ok := Tiers[tier]
	return cfg, ok
}
