//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/session"
	"github.com/2beens/practicetracker/internal/tracker/transfer"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestProgramLifecycle_Postgres() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	name := gofakeit.HipsterWord() + " practice"
	status, body := s.call(ctx, http.MethodPost, postgresEndpoint+"/programs", map[string]any{
		"name":       name,
		"type":       "skill",
		"schedule":   map[string]any{"mode": "flexible"},
		"activities": []map[string]any{{"name": "Scales"}, {"name": "Etudes"}},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var created programResponse
	s.decode(body, &created)
	require.Len(t, created.Activities, 2)
	id := created.Program.ID

	// the kv row is visible straight from postgres
	var stored []byte
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, "programs:"+id).Scan(&stored)
	require.NoError(t, err)
	assert.Contains(t, string(stored), name)

	today := time.Now().UTC().Format(program.DateLayout)
	sessionURL := postgresEndpoint + "/sessions/" + id + "/" + today

	status, body = s.call(ctx, http.MethodPost, sessionURL+"/start", nil)
	require.Equal(t, http.StatusCreated, status, string(body))

	for _, a := range created.Activities {
		status, body = s.call(ctx, http.MethodPut, sessionURL+"/activities", map[string]any{
			"activityId": a.ID,
			"completed":  true,
			"duration":   15,
		})
		require.Equal(t, http.StatusOK, status, string(body))
	}

	status, body = s.call(ctx, http.MethodPost, sessionURL+"/complete", session.CompleteParams{Notes: "felt good"})
	require.Equal(t, http.StatusOK, status, string(body))
	var completed session.CompleteResult
	s.decode(body, &completed)
	assert.Equal(t, program.StatusCompleted, completed.Session.Status)
	assert.Equal(t, "felt good", completed.Session.Notes)

	// completing twice is rejected
	status, _ = s.call(ctx, http.MethodPost, sessionURL+"/complete", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = s.call(ctx, http.MethodGet, postgresEndpoint+"/programs/"+id+"/export", nil)
	require.Equal(t, http.StatusOK, status)
	status, body = s.call(ctx, http.MethodPost, postgresEndpoint+"/programs/import", body)
	require.Equal(t, http.StatusCreated, status, string(body))
	var imported transfer.ImportResult
	s.decode(body, &imported)
	assert.Equal(t, name+" (1)", imported.Program.Name)

	status, _ = s.call(ctx, http.MethodDelete, postgresEndpoint+"/programs/"+id, nil)
	require.Equal(t, http.StatusNoContent, status)

	var sessionRows int
	err = s.DB.QueryRowContext(ctx, `SELECT count(*) FROM kv_store WHERE key LIKE 'sessions:%' AND key LIKE '%' || $1`, id).Scan(&sessionRows)
	require.NoError(t, err)
	assert.Zero(t, sessionRows)

	status, _ = s.call(ctx, http.MethodGet, postgresEndpoint+"/programs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestImportRateLimit_Redis() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	doc := `{"version": 1, "exportedAt": "2024-01-01T00:00:00Z", "program": {"name": "Drills", "type": "cardio", "schedule": {"mode": "flexible"}, "isActive": true}, "activities": []}`

	var statuses []int
	for range importLimitPerMin + 1 {
		status, _ := s.call(ctx, http.MethodPost, redisEndpoint+"/programs/import", doc)
		statuses = append(statuses, status)
	}
	assert.Equal(t, http.StatusTooManyRequests, statuses[len(statuses)-1], statuses)
	for _, status := range statuses[:importLimitPerMin] {
		assert.Equal(t, http.StatusCreated, status)
	}
}
