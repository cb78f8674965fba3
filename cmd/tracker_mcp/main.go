// Package main runs the tracker MCP server over stdio (for local assistant use).
// The same MCP server is mounted on the service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/2beens/practicetracker/internal"
	"github.com/2beens/practicetracker/internal/config"
	"github.com/2beens/practicetracker/internal/logging"
	"github.com/2beens/practicetracker/internal/tracker/calendar"
	trackermcp "github.com/2beens/practicetracker/internal/tracker/mcp"
	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/repo"
	"github.com/2beens/practicetracker/internal/tracker/session"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		Console:     os.Stderr,
		Environment: cfg.Environment,
	})
	secrets, err := config.LoadSecrets()
	if err != nil {
		log.Fatalf("load secrets: %v", err)
	}

	ctx := context.Background()
	backend, err := internal.OpenBackend(ctx, internal.OpenBackendParams{
		Config:           cfg,
		RedisPassword:    secrets.RedisPassword,
		PostgresPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("open storage backend: %v", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Errorf("close storage backend: %v", err)
		}
	}()

	trackerRepo := repo.New(backend.Store)
	now := program.LocalClock(time.Now, cfg.Location())
	agenda := calendar.NewService(trackerRepo, func() program.Date {
		return program.DateOf(now())
	})
	sessions := session.NewService(trackerRepo, now)

	server := trackermcp.NewServer(agenda, sessions, trackerRepo, "stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %v", err)
	}
}
