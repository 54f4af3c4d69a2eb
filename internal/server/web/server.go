// Package web is the thin request orchestrator: it parses form payloads
// into typed commands, calls the services, and translates their
// outcomes into cookies, redirects, and JSON field errors. It owns no
// business invariants.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmaltsev/journal/internal/logging"
	"github.com/dmaltsev/journal/internal/server/auth"
	"github.com/dmaltsev/journal/internal/server/services"
)

type Server struct {
	address  string
	logger   logging.Logger
	users    *services.UserService
	posts    *services.PostService
	sessions *auth.Sessions
}

func NewServer(a string, l logging.Logger, us *services.UserService, ps *services.PostService, sm *auth.Sessions) *Server {
	return &Server{
		address:  a,
		logger:   l.With("module", "web"),
		users:    us,
		posts:    ps,
		sessions: sm,
	}
}

// Router wires the public routes. The /posts/admin subtree requires a
// resolved session; everything else is anonymous.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	r.HandleFunc("/join", s.handleJoin).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/logout", s.handleLogout).Methods("POST")

	r.HandleFunc("/posts", s.handleListPosts).Methods("GET")
	r.HandleFunc("/posts/admin", s.requireUser(s.handleCreatePost)).Methods("POST")
	r.HandleFunc("/posts/admin/{slug}", s.requireUser(s.handleAdminPost)).Methods("POST")
	r.HandleFunc("/posts/{slug}", s.handleGetPost).Methods("GET")

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// requireUser redirects anonymous requests to the login page, carrying
// the original path so the client can come back after authenticating.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.currentUserID(r); !ok {
			http.Redirect(w, r, "/login?redirectTo="+r.URL.Path, http.StatusFound)
			return
		}
		next(w, r)
	}
}
