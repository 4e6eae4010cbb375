package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/gostonefire/searchtable"
	"github.com/gostonefire/searchtable/internal/config"
)

// Server - The HTTP JSON surface over one search table session. The engine itself is single
// threaded and lock free, so the server serializes requests with a mutex, which is caller policy
// rather than an engine concern.
type Server struct {
	logger  zerolog.Logger
	session *searchtable.Session
	server  *http.Server
	mu      sync.Mutex
}

// New - Returns a new Server around a fresh, uncreated session
func New(logger zerolog.Logger) *Server {
	return &Server{
		logger:  logger,
		session: searchtable.NewSession(),
	}
}

// Start - Starts serving the API on the configured address, blocking until the listener fails or
// the server is stopped
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", config.Config.Host, config.Config.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info().Str("address", addr).Msg("starting api server")

	return s.server.ListenAndServe()
}

// Stop - Stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		s.logger.Info().Msg("stopping api server")
		return s.server.Shutdown(ctx)
	}
	return nil
}

// routes - Wires up the operation surface
func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/table", s.handleCreate).Methods(http.MethodPost)
	router.HandleFunc("/table", s.handleReset).Methods(http.MethodDelete)
	router.HandleFunc("/table", s.handleSnapshot).Methods(http.MethodGet)
	router.HandleFunc("/table", s.handleLoad).Methods(http.MethodPut)
	router.HandleFunc("/table/info", s.handleInfo).Methods(http.MethodGet)
	router.HandleFunc("/table/sort", s.handleSort).Methods(http.MethodPost)

	router.HandleFunc("/table/keys", s.handleInsert).Methods(http.MethodPost)
	router.HandleFunc("/table/keys/sorted", s.handleSortedInsert).Methods(http.MethodPost)
	router.HandleFunc("/table/keys/{key}", s.handleDelete).Methods(http.MethodDelete)
	router.HandleFunc("/table/search/sequential/{key}", s.handleSequentialSearch).Methods(http.MethodGet)
	router.HandleFunc("/table/search/binary/{key}", s.handleBinarySearch).Methods(http.MethodGet)

	router.HandleFunc("/table/hash/keys", s.handleHashInsert).Methods(http.MethodPost)
	router.HandleFunc("/table/hash/keys/{key}", s.handleHashDelete).Methods(http.MethodDelete)
	router.HandleFunc("/table/hash/search/{key}", s.handleHashSearch).Methods(http.MethodGet)

	return router
}
