// Package web exposes the two-phase solver over a small JSON HTTP API.
package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kosolve/twophase/internal/kociemba/tables"
	"github.com/kosolve/twophase/internal/kociemba/tablecache"
)

type Server struct {
	router *mux.Router
	tables *tables.Tables
}

// NewServer builds a Server with its move/pruning tables loaded from
// cachePath (built and cached on first run).
func NewServer(cachePath string) (*Server, error) {
	t, err := tablecache.LoadOrBuild(cachePath)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router: mux.NewRouter(),
		tables: t,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
