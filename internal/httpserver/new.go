package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-analyzer/internal/analyzer/repository"
	"smart-task-analyzer/internal/middleware"
	"smart-task-analyzer/pkg/datemath"
	"smart-task-analyzer/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	rateLimit middleware.Config

	// Analyzer domain
	weights      repository.WeightRepository
	dateMath     *datemath.Parser
	suggestLimit int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitEnabled bool
	RequestsPerMin   int

	// Analyzer domain
	Weights      repository.WeightRepository
	DateMath     *datemath.Parser
	SuggestLimit int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit: middleware.Config{
			RateLimitEnabled: cfg.RateLimitEnabled,
			RequestsPerMin:   cfg.RequestsPerMin,
		},
		weights:      cfg.Weights,
		dateMath:     cfg.DateMath,
		suggestLimit: cfg.SuggestLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.weights == nil {
		return errors.New("weight repository is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}

// Handler exposes the configured engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
