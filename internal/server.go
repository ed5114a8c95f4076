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
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/activities"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/auth"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/config"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/db"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/events"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/geo"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/goals"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/middleware"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/progress"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/sports"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/metrics"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"
)

const (
	progressCacheTTL   = 5 * time.Minute
	ipLookupTimeout    = 3 * time.Second
	generateRouteLimit = "activities-generate"
)

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
	Close() error
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	tokenVerifier *auth.TokenVerifier
	adminChecker  *auth.AdminChecker
	publisher     eventPublisher
	timezones     *geo.TimezoneResolver
	progressCache *progress.ResultCache
	now           func() time.Time

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	JWTSecret               string
	AdminSecretHash         string
	IpInfoToken             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if params.JWTSecret == "" {
		return nil, errors.New("jwt secret not set")
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if params.Config.ApplySchema {
		if err := db.ApplySchema(ctx, dbPool); err != nil {
			return nil, err
		}
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry, err := metrics.SetupPrometheus(pgxpoolCollector)
	if err != nil {
		return nil, fmt.Errorf("setup prometheus: %w", err)
	}
	metricsManager := metrics.NewManager("fitness", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitness-backend", rdb)
	if err != nil {
		return nil, err
	}

	var publisher eventPublisher = events.Nop{}
	if len(params.Config.KafkaBrokers) > 0 {
		publisher = events.NewPublisher(params.Config.KafkaBrokers, params.Config.KafkaTopic)
		log.Debugf("publishing domain events to %v [%s]", params.Config.KafkaBrokers, params.Config.KafkaTopic)
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		tokenVerifier: auth.NewTokenVerifier(params.JWTSecret, params.Config.JWTAudience),
		adminChecker:  auth.NewAdminChecker(params.AdminSecretHash),
		publisher:     publisher,
		progressCache: progress.NewResultCache(params.Config.ProgressCacheSizeMB, progressCacheTTL),
		now:           time.Now,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.IpInfoToken != "" {
		s.timezones, err = geo.NewTimezoneResolver(params.IpInfoToken, params.Config.IpInfoBaseURL, ipLookupTimeout, rdb)
		if err != nil {
			return nil, fmt.Errorf("new timezone resolver: %w", err)
		}
	} else {
		log.Warnln("ipinfo token not set, generated activities default to the configured timezone")
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitness-router"))

	sportsCatalog := sports.NewCatalog(
		sports.NewRepo(s.dbPool),
		s.publisher,
		s.config.SportsCacheSizeMB,
	)
	goalsRepo := goals.NewRepo(s.dbPool)
	activitiesRepo := activities.NewRepo(s.dbPool)

	progressService := progress.NewService(progress.ServiceParams{
		Goals:          goalsRepo,
		Activities:     activitiesRepo,
		Sports:         sportsCatalog,
		Cache:          s.progressCache,
		MetricsManager: s.metricsManager,
		Now:            s.now,
	})
	progressHandler := progress.NewHandler(progressService, s.now)
	r.HandleFunc("/api/progress/annual", progressHandler.HandleAnnual).Methods("GET").Name("progress-annual")
	r.HandleFunc("/api/progress/annual", progressHandler.HandleAnnualJSON).Methods("POST").Name("progress-annual-json")
	r.HandleFunc("/api/dashboard", progressHandler.HandleDashboard).Methods("GET").Name("dashboard")

	goalsHandler := goals.NewHandler(
		goals.NewService(goalsRepo, progressService, s.publisher, s.metricsManager),
	)
	r.HandleFunc("/api/goals", goalsHandler.HandleList).Methods("GET").Name("list-goals")
	r.HandleFunc("/api/goals", goalsHandler.HandleCreate).Methods("POST").Name("new-goal")
	r.HandleFunc("/api/goals/{id}", goalsHandler.HandleGet).Methods("GET").Name("get-goal")
	r.HandleFunc("/api/goals/{id}", goalsHandler.HandleUpdate).Methods("PATCH").Name("update-goal")
	r.HandleFunc("/api/goals/{id}", goalsHandler.HandleDelete).Methods("DELETE").Name("delete-goal")
	r.HandleFunc("/api/goals/{id}/history", goalsHandler.HandleHistory).Methods("GET").Name("goal-history")

	activitiesParams := activities.ServiceParams{
		Repo:           activitiesRepo,
		Sports:         sportsCatalog,
		Progress:       progressService,
		Publisher:      s.publisher,
		Generator:      activities.NewGenerator(s.config.GeneratorSeed, s.now),
		MetricsManager: s.metricsManager,
	}
	if s.timezones != nil {
		activitiesParams.Timezones = s.timezones
	}
	activitiesHandler := activities.NewHandler(activities.NewService(activitiesParams))
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	r.HandleFunc("/api/activities", activitiesHandler.HandleList).Methods("GET").Name("list-activities")
	r.Handle("/api/activities/generate", middleware.RateLimit(
		reqRateLimiter,
		s.metricsManager,
		generateRouteLimit,
		s.config.GenerateRateLimitPerMin,
	)(http.HandlerFunc(activitiesHandler.HandleGenerate))).Methods("POST").Name("generate-activities")

	sportsHandler := sports.NewHandler(sportsCatalog, s.adminChecker)
	r.HandleFunc("/api/sports", sportsHandler.HandleList).Methods("GET").Name("list-sports")
	r.HandleFunc("/api/sports", sportsHandler.HandleCreate).Methods("POST").Name("new-sport")

	revocations := auth.NewRevocationList(s.redisClient)
	authHandler := auth.NewHandler(
		auth.NewService(auth.NewAccountRepo(s.dbPool), revocations, progressService),
	)
	r.HandleFunc("/api/auth/logout", authHandler.HandleLogout).Methods("POST").Name("logout")
	r.HandleFunc("/api/auth/delete-account", authHandler.HandleDeleteAccount).Methods("POST").Name("delete-account")

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteError(w, http.StatusNotFound, pkg.ErrCodeNotFound, "route not found", nil)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenVerifier, revocations, s.metricsManager)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(s.config.MaxBodyBytes))

	return r, nil
}

// handler wraps the router with CORS, so preflight requests are answered before route matching.
func (s *Server) handler() (http.Handler, error) {
	router, err := s.routerSetup()
	if err != nil {
		return nil, err
	}
	return middleware.Cors(s.config.AllowedOrigins)(router), nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "ok",
		"version": s.versionInfo,
	}
	if s.dbPool != nil {
		if err := s.dbPool.Ping(r.Context()); err != nil {
			log.Errorf("health: db ping: %s", err)
			status["status"] = "degraded"
			status["db"] = "unreachable"
		}
	}
	pkg.WriteJSON(w, http.StatusOK, status)
}

func (s *Server) Serve(host string, port int) {
	handler, err := s.handler()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      handler,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
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

	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.httpServer.Shutdown(ctx))
	}
	log.Warnln("server shut down")

	if s.metricsHttpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.metricsHttpServer.Shutdown(ctx))
	}
	log.Warnln("metrics server shut down")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.publisher != nil {
		shutdownErr = multierr.Append(shutdownErr, s.publisher.Close())
	}

	if s.redisClient != nil {
		shutdownErr = multierr.Append(shutdownErr, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, err := range multierr.Errors(shutdownErr) {
		log.Errorf(" >>> shutdown: %s", err)
	}
}
