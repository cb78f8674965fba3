//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"

	"github.com/stretchr/testify/require"
)

type programResponse struct {
	Program    program.Program    `json:"program"`
	Activities []program.Activity `json:"activities"`
	Days       []gzclp.WorkoutDay `json:"days"`
}

// call sends body (JSON encoded unless it is already a string or bytes) and returns status and response body.
func (s *IntegrationTestSuite) call(ctx context.Context, method, url string, body any) (int, []byte) {
	t := s.T()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) decode(data []byte, v any) {
	require.NoError(s.T(), json.Unmarshal(data, v), string(data))
}
