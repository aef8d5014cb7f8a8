package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"journal-ripples/internal/planner"
	"journal-ripples/internal/webhook"
	"journal-ripples/pkg/datemath"
	"journal-ripples/pkg/lexicon"
	"journal-ripples/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Entry analysis
	lexicon       *lexicon.Compiled
	dates         *datemath.Parser
	directUpserts bool

	// Optional calendar sink for new appointments
	publisher planner.Publisher

	// Entry webhook
	webhookEnabled  bool
	webhookSecurity webhook.SecurityConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	Lexicon       *lexicon.Compiled
	Dates         *datemath.Parser
	DirectUpserts bool

	Publisher planner.Publisher

	WebhookEnabled  bool
	WebhookSecurity webhook.SecurityConfig
}

// New creates a new HTTPServer, migrates the schema and maps every route.
func New(ctx context.Context, logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		lexicon:         cfg.Lexicon,
		dates:           cfg.Dates,
		directUpserts:   cfg.DirectUpserts,
		publisher:       cfg.Publisher,
		webhookEnabled:  cfg.WebhookEnabled,
		webhookSecurity: cfg.WebhookSecurity,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(ctx); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
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
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.lexicon == nil {
		return errors.New("lexicon is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
