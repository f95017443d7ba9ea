package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/config"
	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/services"
	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, opts ...RouterOption) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	opts = append([]RouterOption{WithConfig(c), withStartupTime(startupTime)}, opts...)
	router, err := newRouter(database, opts...)
	if err != nil {
		return Server{}, err
	}

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetDuration(c, "READ_TIMEOUT_SECONDS", time.Second, 180),
		WriteTimeout: config.GetDuration(c, "WRITE_TIMEOUT_SECONDS", time.Second, 180),
		IdleTimeout:  config.GetDuration(c, "IDLE_TIMEOUT_SECONDS", time.Second, 180),
	}

	return Server{server, startupTime}, nil
}

// RouterOption customizes the router built by NewServer
type RouterOption func(*router)

type router struct {
	config      map[string]string
	startupTime time.Time
	submitter   showcase.Submitter
	mailer      services.Mailer
	notices     *showcase.NoticeBoard
}

func WithConfig(c map[string]string) RouterOption {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) RouterOption {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// WithSubmitter sets the worker pool running lead captures and outgoing email
func WithSubmitter(s showcase.Submitter) RouterOption {
	return func(r *router) {
		r.submitter = s
	}
}

func WithMailer(m services.Mailer) RouterOption {
	return func(r *router) {
		r.mailer = m
	}
}

func WithNoticeBoard(b *showcase.NoticeBoard) RouterOption {
	return func(r *router) {
		r.notices = b
	}
}

// goSubmitter starts a goroutine per task when no pool is configured
type goSubmitter struct{}

func (goSubmitter) Submit(task func()) error {
	go task()
	return nil
}

func newRouter(database database.Database, opts ...RouterOption) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.config == nil {
		router.config = map[string]string{}
	}
	if router.startupTime.IsZero() {
		router.startupTime = time.Now()
	}
	if router.submitter == nil {
		router.submitter = goSubmitter{}
	}
	if router.mailer == nil {
		router.mailer = services.LogMailer{}
	}
	if router.notices == nil {
		router.notices = showcase.NewNoticeBoard(config.GetInt(router.config, "NOTICE_CAPACITY", 20))
	}

	jwtSecret := config.GetString(router.config, "JWT_SECRET", "")
	if jwtSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, admin tokens will not survive a restart")
		jwtSecret = uuid.NewString() + uuid.NewString()
	}

	handlers, err := initializeHandlers(database, router, []byte(jwtSecret))
	if err != nil {
		return nil, err
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(RecordRequestMetrics)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", sessionHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	setupRoutes(chiRouter, handlers, newAuthMiddleware([]byte(jwtSecret)))

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
