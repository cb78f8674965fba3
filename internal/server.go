package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/practicetracker/internal/config"
	"github.com/2beens/practicetracker/internal/middleware"
	"github.com/2beens/practicetracker/internal/telemetry/metrics"
	"github.com/2beens/practicetracker/internal/telemetry/tracing"
	"github.com/2beens/practicetracker/internal/tracker/api"
	"github.com/2beens/practicetracker/internal/tracker/calendar"
	trackermcp "github.com/2beens/practicetracker/internal/tracker/mcp"
	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/repo"
	"github.com/2beens/practicetracker/internal/tracker/session"
	"github.com/2beens/practicetracker/internal/tracker/transfer"
	"github.com/2beens/practicetracker/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	apiToken          string

	config  *config.Config
	backend *Backend
	repo    *repo.Repo
	now     func() time.Time

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	Secrets                 *config.Secrets
	VersionInfo             string
	HoneycombTracingEnabled bool
	// defaults to time.Now
	Now func() time.Time
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	secrets := params.Secrets
	if secrets == nil {
		secrets = &config.Secrets{}
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	now = program.LocalClock(now, params.Config.Location())

	backend, err := OpenBackend(ctx, OpenBackendParams{
		Config:           params.Config,
		RedisPassword:    secrets.RedisPassword,
		PostgresPassword: secrets.PostgresPassword,
		TracingEnabled:   params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage backend: %w", err)
	}

	var collectors []prometheus.Collector
	if backend.DBPool != nil {
		collectors = append(collectors, pgxpoolprometheus.NewCollector(
			backend.DBPool,
			map[string]string{"db_name": params.Config.PostgresDBName},
		))
	}
	promRegistry := metrics.SetupPrometheus(metrics.PrometheusParams{
		Version:        versionOrDev(params.VersionInfo),
		StorageBackend: params.Config.StorageBackend,
		Collectors:     collectors,
	})
	metricsManager := metrics.NewManager("practice", "tracker", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	var rdb redis.UniversalClient
	if backend.RedisClient != nil {
		rdb = backend.RedisClient
	}
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, secrets.OtelServiceName, rdb)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	trackerRepo := repo.New(backend.Store)
	migrated, err := trackerRepo.Migrate(ctx)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	if migrated {
		log.Infoln("store migrated to the current layout")
	}

	return &Server{
		config:         params.Config,
		versionInfo:    params.VersionInfo,
		apiToken:       secrets.APIToken,
		backend:        backend,
		repo:           trackerRepo,
		now:            now,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// today is the calendar date in the configured zone.
func (s *Server) today() program.Date {
	return program.DateOf(s.now())
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("tracker-router"))

	sessions := session.NewService(s.repo, s.now)
	agenda := calendar.NewService(s.repo, s.today)

	var importMiddleware mux.MiddlewareFunc
	if s.backend.RedisClient != nil {
		reqRateLimiter := redis_rate.NewLimiter(s.backend.RedisClient)
		importMiddleware = middleware.RateLimit(reqRateLimiter, s.metricsManager, "import-program", s.config.ImportRateLimitPerMin)
	}

	trackerHandler := api.NewHandler(api.NewHandlerParams{
		Repo:           s.repo,
		Sessions:       sessions,
		Agenda:         agenda,
		Transfer:       transfer.NewService(s.repo, s.now),
		MetricsManager: s.metricsManager,
		AgendaDays:     s.config.AgendaWindowDays,
		Now:            s.now,
	})
	trackerHandler.SetupRoutes(r, importMiddleware)

	mcpServer := trackermcp.NewServer(agenda, sessions, s.repo, s.versionOrDev())
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(otelhttp.NewHandler(mcpHandler, "mcp")).Name("mcp")

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")
	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")
	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.apiToken)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) versionOrDev() string {
	return versionOrDev(s.versionInfo)
}

func versionOrDev(version string) string {
	if version == "" {
		return "dev"
	}
	return version
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "practice tracker")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	// a list is the cheapest call every backend supports
	if _, err := s.backend.Store.List(r.Context(), "health:"); err != nil {
		log.Errorf("health check: %s", err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "storage unavailable", http.StatusServiceUnavailable)
		return
	}
	pkg.WriteTextResponseOK(w, "ok")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, http.StatusOK, map[string]string{
		"version": s.versionOrDev(),
		"storage": s.config.StorageBackend,
	})
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the store goes away
	var errs error
	if s.httpServer != nil {
		multierr.AppendInto(&errs, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		multierr.AppendInto(&errs, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	log.Debugln("closing storage backend ...")
	multierr.AppendInto(&errs, s.backend.Close())

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, err := range multierr.Errors(errs) {
		log.Errorf(" >>> shutdown: %s", err)
	}
}
