//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestGZCLPCycle_Redis() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.call(ctx, http.MethodPost, redisEndpoint+"/programs/gzclp", map[string]any{
		"startingWeights": map[string]float64{
			"squat": 100, "bench": 60, "deadlift": 120, "ohp": 40, "rdl": 80, "front_squat": 70,
			"lat_pulldown": 45, "db_curl": 12, "leg_curl": 35, "tricep_pushdown": 25,
		},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var created programResponse
	s.decode(body, &created)
	id := created.Program.ID

	today := time.Now().UTC().Format(program.DateLayout)
	sessionURL := fmt.Sprintf("%s/sessions/%s/%s", redisEndpoint, id, today)

	status, body = s.call(ctx, http.MethodPost, sessionURL+"/start", nil)
	require.Equal(t, http.StatusCreated, status, string(body))
	var started session.StartResult
	s.decode(body, &started)
	require.NotNil(t, started.Workout)
	require.Equal(t, 1, started.Workout.DayNumber)

	before := map[string]float64{}
	for _, ex := range started.Workout.Exercises {
		before[ex.ActivityID] = ex.Weight
		for set := 1; set <= ex.Sets; set++ {
			in := session.SetInput{Weight: ex.Weight, Reps: ex.Reps}
			if set == ex.Sets {
				in.IsAmrap = true
				in.Reps = ex.Reps + 3
			}
			status, body = s.call(ctx, http.MethodPost, sessionURL+"/activities/"+ex.ActivityID+"/sets", in)
			require.Equal(t, http.StatusCreated, status, string(body))
		}
	}

	status, body = s.call(ctx, http.MethodPost, sessionURL+"/complete", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var completed session.CompleteResult
	s.decode(body, &completed)
	require.NotNil(t, completed.Program)
	assert.Equal(t, 1, completed.Program.LastWorkoutDay)

	after := map[string]float64{}
	for _, p := range completed.Prescriptions {
		after[p.ActivityID] = p.Weight
	}
	for activityID, weight := range before {
		assert.Equal(t, weight+5, after[activityID], activityID)
	}

	status, body = s.call(ctx, http.MethodGet, redisEndpoint+"/gzclp/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var next gzclp.Workout
	s.decode(body, &next)
	assert.Equal(t, 2, next.DayNumber)
}
