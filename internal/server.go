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

	"github.com/2beens/fitstreak/internal/achievements"
	"github.com/2beens/fitstreak/internal/auth"
	"github.com/2beens/fitstreak/internal/cache"
	"github.com/2beens/fitstreak/internal/config"
	"github.com/2beens/fitstreak/internal/db"
	"github.com/2beens/fitstreak/internal/middleware"
	"github.com/2beens/fitstreak/internal/pages"
	"github.com/2beens/fitstreak/internal/progress"
	"github.com/2beens/fitstreak/internal/telemetry/metrics"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/internal/users"
	"github.com/2beens/fitstreak/internal/workouts"
	"github.com/2beens/fitstreak/pkg"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	sessionService *auth.SessionService
	cookieJar      *auth.CookieJar
	streakCache    *cache.StreakCache
	classifier     *workouts.Classifier
	ladder         achievements.Ladder
	cycleLength    int
	trustedProxies pkg.TrustedProxies

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	SessionSecret           []byte
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if len(params.SessionSecret) == 0 {
		return nil, errors.New("session secret not set")
	}

	classifier, err := workouts.NewClassifier(cfg.WorkoutVariant)
	if err != nil {
		return nil, err
	}
	ladder, err := achievements.NewLadder(cfg.AchievementLadder, cfg.StreakThresholds)
	if err != nil {
		return nil, err
	}
	cycleLength := cfg.CycleLength
	if cycleLength == 0 {
		cycleLength = classifier.DefaultCycleLength()
	}
	trustedProxies, err := pkg.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	// every ladder threshold needs a catalog row, otherwise awarding it is a silent no-op
	if err := achievements.NewRepo(dbPool).EnsureCatalog(ctx, ladder); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ensure achievements catalog: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry, err := metrics.SetupPrometheus(pgxpoolCollector)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("setup prometheus: %w", err)
	}
	metricsManager := metrics.NewManager("fitstreak", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
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
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitstreak-backend", rdb)
	if err != nil {
		return nil, err
	}

	log.Debugf("workout variant [%s], cycle length %d, achievement ladder %v", classifier.Variant(), cycleLength, ladder)

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,

		sessionService: auth.NewSessionService(cfg.SessionTTL, rdb),
		cookieJar:      auth.NewCookieJar(cfg.SessionCookieName, params.SessionSecret, cfg.SessionTTL, cfg.SessionCookieSecure),
		streakCache:    cache.NewStreakCache(cfg.StreakCacheSizeMB, cfg.StreakCacheTTL, metricsManager),
		classifier:     classifier,
		ladder:         ladder,
		cycleLength:    cycleLength,
		trustedProxies: trustedProxies,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitstreak-router"))

	usersRepo := users.NewRepo(s.dbPool)
	achievementsRepo := achievements.NewRepo(s.dbPool)
	tracker := progress.NewTracker(progress.NewRepo(s.dbPool), s.cycleLength)
	workoutsService := workouts.NewService(
		workouts.NewRepo(s.dbPool),
		s.classifier,
		achievements.NewAwarder(achievementsRepo, s.ladder, s.metricsManager),
		s.streakCache,
		s.metricsManager,
	)

	authHandler := auth.NewHandler(
		auth.NewAuthenticator(usersRepo, s.config.PasswordHashCost),
		s.sessionService,
		s.cookieJar,
		s.metricsManager,
	)
	pagesHandler := pages.NewHandler(workoutsService, tracker, achievementsRepo, usersRepo, s.metricsManager)
	workoutsHandler := workouts.NewHandler(workoutsService)
	progressHandler := progress.NewHandler(tracker)

	r.HandleFunc("/", pagesHandler.HandleRoot).Methods("GET").Name("root")
	r.HandleFunc("/login", authHandler.HandleLoginPage).Methods("GET").Name("login-page")
	r.HandleFunc("/register", authHandler.HandleRegisterPage).Methods("GET").Name("register-page")
	r.HandleFunc("/guest", authHandler.HandleGuest).Methods("POST").Name("guest")
	r.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET").Name("logout")

	// rate limit the /login and /register posts to prevent abuse
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	allowedPerMin := s.config.LoginRateLimitAllowedPerMin
	r.Handle("/login", middleware.RateLimit(reqRateLimiter, "login", allowedPerMin, s.trustedProxies, s.metricsManager)(
		http.HandlerFunc(authHandler.HandleLogin),
	)).Methods("POST").Name("login")
	r.Handle("/register", middleware.RateLimit(reqRateLimiter, "register", allowedPerMin, s.trustedProxies, s.metricsManager)(
		http.HandlerFunc(authHandler.HandleRegister),
	)).Methods("POST").Name("register")

	viewer := middleware.RequireViewer()
	r.Handle("/home", viewer(http.HandlerFunc(pagesHandler.HandleHome))).Methods("GET").Name("home")
	r.Handle("/workouts", viewer(http.HandlerFunc(pagesHandler.HandleWorkouts))).Methods("GET").Name("workouts")
	r.Handle("/calendar", viewer(http.HandlerFunc(pagesHandler.HandleCalendar))).Methods("GET").Name("calendar")
	r.Handle("/achievements", viewer(http.HandlerFunc(pagesHandler.HandleAchievements))).Methods("GET").Name("achievements")
	r.Handle("/profile", viewer(http.HandlerFunc(pagesHandler.HandleProfile))).Methods("GET").Name("profile")
	r.Handle("/profile/picture", viewer(http.HandlerFunc(pagesHandler.HandleProfilePicture))).Methods("GET").Name("profile-picture")
	r.Handle("/api/progress", viewer(http.HandlerFunc(progressHandler.HandleGet))).Methods("GET", "OPTIONS").Name("get-progress")

	authenticated := middleware.RequireAuthenticated()
	r.Handle("/api/progress", authenticated(http.HandlerFunc(progressHandler.HandleRecord))).Methods("POST", "OPTIONS").Name("record-progress")
	r.Handle("/api/workouts", authenticated(http.HandlerFunc(workoutsHandler.HandleRecord))).Methods("POST", "OPTIONS").Name("record-workout")
	r.Handle("/api/profile/picture", authenticated(http.HandlerFunc(pagesHandler.HandleUploadProfilePicture))).Methods("POST", "OPTIONS").Name("upload-profile-picture")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessionService, s.cookieJar)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.LoadSession())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
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

	go s.cleanSessionsPeriodically(ctx, s.config.SessionCleanPeriod)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// cleanSessionsPeriodically stops together with ctx.
func (s *Server) cleanSessionsPeriodically(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := s.sessionService.ScanAndClean(ctx)
			s.metricsManager.CounterExpiredSessionsClean.Add(float64(removed))
			if removed > 0 {
				log.Debugf("removed %d expired sessions from the index", removed)
			}
		}
	}
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
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
