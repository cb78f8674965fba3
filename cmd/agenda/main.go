// Package main prints the upcoming practice agenda from a running tracker service.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/2beens/practicetracker/internal/tracker/calendar"
	"github.com/2beens/practicetracker/internal/tracker/program"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type agendaResponse struct {
	Today program.Date          `json:"today"`
	Days  []calendar.DayAgenda `json:"days"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:9000", "tracker service base url")
	days := flag.Int("days", 7, "number of days to show (1-90)")
	width := flag.Int("width", 72, "output width")
	flag.Parse()

	client := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	agenda, err := fetchAgenda(context.Background(), client, *baseURL, *days, os.Getenv("TRACKER_API_TOKEN"))
	if err != nil {
		log.Fatalf("fetch agenda: %s", err)
	}

	fmt.Println(render(agenda, *width))
}

func fetchAgenda(ctx context.Context, client *http.Client, baseURL string, days int, token string) (*agendaResponse, error) {
	u, err := url.JoinPath(baseURL, "agenda")
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}
	u += "?days=" + strconv.Itoa(days)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("X-Tracker-Token", token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Errorf("close response body: %s", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}

	var agenda agendaResponse
	if err := json.NewDecoder(resp.Body).Decode(&agenda); err != nil {
		return nil, fmt.Errorf("decode agenda: %w", err)
	}
	return &agenda, nil
}
