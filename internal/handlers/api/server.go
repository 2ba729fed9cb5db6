package api

import (
	"errors"
	"net/http"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/KirkDiggler/gameday/internal/common/clock"
	"github.com/KirkDiggler/gameday/internal/common/uuid"
	"github.com/KirkDiggler/gameday/internal/log"
	"github.com/KirkDiggler/gameday/internal/metrics"
	"github.com/KirkDiggler/gameday/internal/services/game"
	"github.com/KirkDiggler/gameday/internal/services/supporter"
)

const (
	defaultRequestTimeout = 5 * time.Second
	defaultTokenTTL       = 12 * time.Hour
)

// Config holds configuration for the HTTP API
type Config struct {
	GameService      game.Service
	SupporterService supporter.Service
	Clock            clock.Clock

	// UUIDGenerator mints supporter IDs for posts without one, defaults to random v4 UUIDs
	UUIDGenerator uuid.UUID

	// Metrics is optional, MetricsHandler is mounted at /metrics when set
	Metrics        *metrics.Recorder
	MetricsHandler http.Handler

	// AdminPasswordHash is a bcrypt hash, empty disables admin login
	AdminPasswordHash string
	AdminTokenSecret  string
	AdminTokenTTL     time.Duration

	// AllowedOrigins defaults to any origin
	AllowedOrigins []string

	// RequestsPerSecond and Burst bound each client address, zero uses 5 and 30
	RequestsPerSecond float64
	Burst             int
}

// Server serves the game day API
type Server struct {
	gameService      game.Service
	supporterService supporter.Service
	clock            clock.Clock
	uuidGenerator    uuid.UUID
	metrics          *metrics.Recorder
	metricsHandler   http.Handler

	adminPasswordHash []byte
	adminTokenSecret  []byte
	adminTokenTTL     time.Duration
	allowedOrigins    []string

	visitors *visitors
}

// New creates the API server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.SupporterService == nil {
		return nil, errors.New("supporter service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.AdminPasswordHash != "" && cfg.AdminTokenSecret == "" {
		return nil, errors.New("admin token secret is required with an admin password")
	}

	ttl := cfg.AdminTokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	perSecond := cfg.RequestsPerSecond
	if perSecond <= 0 {
		perSecond = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 30
	}

	return &Server{
		gameService:       cfg.GameService,
		supporterService:  cfg.SupporterService,
		clock:             cfg.Clock,
		uuidGenerator:     uuidGenerator,
		metrics:           cfg.Metrics,
		metricsHandler:    cfg.MetricsHandler,
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
		adminTokenSecret:  []byte(cfg.AdminTokenSecret),
		adminTokenTTL:     ttl,
		allowedOrigins:    origins,
		visitors:          newVisitors(rate.Limit(perSecond), burst),
	}, nil
}

// Handler builds the routed handler wrapped in recovery and CORS
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.monitorMiddleware)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	if s.metricsHandler != nil {
		r.Handle("/metrics", s.metricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(s.rateLimitMiddleware)

	players := api.PathPrefix("/players/{playerID}").Subrouter()
	players.HandleFunc("/game-day", s.getGameDay).Methods(http.MethodGet)
	players.HandleFunc("/intake", s.logIntake).Methods(http.MethodPost)
	players.HandleFunc("/intake", s.removeIntake).Methods(http.MethodDelete)
	players.HandleFunc("/goals/claim", s.claimGoals).Methods(http.MethodPost)
	players.HandleFunc("/pace", s.getPace).Methods(http.MethodGet)
	players.HandleFunc("/season", s.getSeason).Methods(http.MethodGet)

	api.HandleFunc("/supporters", s.listSupporters).Methods(http.MethodGet)
	api.HandleFunc("/supporters", s.postSupporter).Methods(http.MethodPost)
	api.HandleFunc("/supporters/{messageID}", s.deleteSupporter).Methods(http.MethodDelete)

	api.HandleFunc("/admin/login", s.adminLogin).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin/players/{playerID}").Subrouter()
	admin.Use(s.requireAdmin)
	admin.HandleFunc("/reset-day", s.resetDay).Methods(http.MethodPost)
	admin.HandleFunc("/reset-season", s.resetSeason).Methods(http.MethodPost)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(s.allowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", supporterIDHeader}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
	)

	recovery := gorillaHandlers.RecoveryHandler(gorillaHandlers.RecoveryLogger(recoveryLogger{}))

	return cors(recovery(r))
}

// NewHTTPServer wraps the handler with the listener timeouts
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recoveryLogger sends recovered panics to the zap logger
type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	log.Error("Recovered from panic in HTTP handler", zap.Any("panic", v))
}
