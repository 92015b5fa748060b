package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/fitroutine/internal/auth"
	"github.com/2beens/fitroutine/internal/config"
	"github.com/2beens/fitroutine/internal/db"
	routinemcp "github.com/2beens/fitroutine/internal/mcp"
	"github.com/2beens/fitroutine/internal/measurement"
	"github.com/2beens/fitroutine/internal/middleware"
	"github.com/2beens/fitroutine/internal/misc"
	"github.com/2beens/fitroutine/internal/routine"
	"github.com/2beens/fitroutine/internal/telemetry/metrics"
	"github.com/2beens/fitroutine/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config         *config.Config
	dbPool         *pgxpool.Pool
	redisClient    *redis.Client
	sessionStore   *auth.SessionStore
	routineService *routine.Service
	mcpServer      *mcp.Server

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
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.ApplySchema(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("apply db schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitroutine", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.Secrets.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, params.Secrets.OtelServiceName)
	if err != nil {
		return nil, err
	}

	routineServiceParams := routine.NewServiceParams{
		Repo:    routine.NewRepo(dbPool),
		Cache:   routine.NewCache(cfg.RoutineCacheSizeMB, cfg.RoutineCacheTTL.Duration),
		Metrics: metricsManager,
	}
	if cfg.RoutineServiceURL != "" {
		routineServiceParams.Remote = routine.NewRemoteClient(
			cfg.RoutineServiceURL,
			cfg.RoutineServiceTimeout.Duration,
			metricsManager,
		).WithAPIKey(params.Secrets.RoutineServiceToken)
	} else {
		log.Warnln("routine service url not set, only locally stored routines will be served")
	}
	routineService := routine.NewService(routineServiceParams)

	sessionStore := auth.NewSessionStore(cfg.SessionTTL.Duration, rdb)

	s := &Server{
		config:         cfg,
		dbPool:         dbPool,
		redisClient:    rdb,
		sessionStore:   sessionStore,
		routineService: routineService,
		versionInfo:    params.VersionInfo,
		mcpServer: routinemcp.NewServer(routinemcp.NewContextService(
			routineService,
			routinemcp.NewPoolSchemaRepo(dbPool),
			routineService,
			sessionStore,
		)),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.versionInfo, map[string]misc.HealthCheck{
		"postgres": s.dbPool.Ping,
		"redis": func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		},
	})
	miscHandler.SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	writeRateLimit := middleware.RateLimit(
		reqRateLimiter,
		"write",
		s.config.WriteRateLimitPerMinute,
		s.metricsManager,
	)
	limited := func(handlerFunc http.HandlerFunc) http.Handler {
		return writeRateLimit(handlerFunc)
	}

	authHandler := auth.NewHandler(s.sessionStore)
	r.Handle("/a/logout", limited(authHandler.HandleLogout)).Methods("GET", "POST", "OPTIONS").Name("logout")

	routineHandler := routine.NewHandler(s.routineService)
	routineHandler.SetupRoutes(r.PathPrefix("/routine").Subrouter())

	measurementHandler := measurement.NewHandler(
		measurement.NewService(measurement.NewRepo(s.dbPool), s.metricsManager, nil),
	)
	r.Handle("/measurement/save", limited(measurementHandler.HandleSave)).Methods("POST", "OPTIONS").Name("save-measurement")
	r.HandleFunc("/measurement/list", measurementHandler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")
	r.HandleFunc("/measurement/export", measurementHandler.HandleExport).Methods("GET", "OPTIONS").Name("export-measurements")
	r.HandleFunc("/measurement/bodyfat-chart", measurementHandler.HandleBodyFatChart).Methods("GET", "OPTIONS").Name("bodyfat-chart")
	r.Handle("/user/profile/enter", limited(measurementHandler.HandleEnterProfile)).Methods("POST", "OPTIONS").Name("enter-profile")
	r.HandleFunc("/user/profile", measurementHandler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.Handle("/user/profile/update", limited(measurementHandler.HandleUpdateProfile)).Methods("PATCH", "OPTIONS").Name("update-profile")

	// streamable HTTP transport, same tools as cmd/routine_mcp over stdio
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessionStore)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
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
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
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

	// stop accepting requests first, the handlers still need redis and the db
	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, shutdownErr := range multierr.Errors(err) {
		log.Errorf(" >>> graceful shutdown: %s", shutdownErr)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
