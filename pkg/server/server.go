package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/keyturn/keyturn/pkg/engine"
)

// Server binds the lifecycle engine to its HTTP transport.
type Server struct {
	Engine *engine.Engine
	Router *mux.Router
	srv    *http.Server
}

// NewServer creates a server listening on addr.
func NewServer(eng *engine.Engine, addr string) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    addr,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Engine: eng,
		Router: router,
		srv:    srv,
	}
}

// Start runs the listener until it fails or is shut down.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
