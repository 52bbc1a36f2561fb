// Package web provides the HTTP JSON API over the live data bundle:
// aggregated views, filter options, admin source overrides, and the
// websocket channel that announces completed refreshes.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jhancoach/mundial-stats/internal/bundle"
	"github.com/jhancoach/mundial-stats/internal/logging"
	"github.com/jhancoach/mundial-stats/internal/source"
)

// Server is the HTTP API for the stats engine.
type Server struct {
	refresher   *bundle.Refresher
	store       *source.OverrideStore
	hub         *Hub
	usageCutoff int
	router      *chi.Mux
	server      *http.Server
}

// NewServer wires the API around a refresher and override store. The
// returned server's hub is registered as the refresher's swap hook.
func NewServer(refresher *bundle.Refresher, store *source.OverrideStore, usageCutoff int) *Server {
	s := &Server{
		refresher:   refresher,
		store:       store,
		hub:         NewHub(),
		usageCutoff: usageCutoff,
		router:      chi.NewRouter(),
	}
	refresher.OnSwap(s.hub.NotifyRefresh)
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/ws", s.handleWebSocket)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/meta", s.handleMeta)
		r.Post("/refresh", s.handleRefresh)

		r.Get("/standings", s.handleStandings)
		r.Get("/standings/top", s.handleStandingsTop)
		r.Get("/ranking", s.handleRanking)
		r.Get("/usage", s.handleUsage)
		r.Get("/killfeed", s.handleKillFeed)
		r.Get("/killfeed/history", s.handleKillHistory)
		r.Get("/rounds", s.handleRounds)
		r.Get("/options", s.handleOptions)

		r.Get("/teams/{name}", s.handleTeamReport)
		r.Get("/players/{name}", s.handlePlayerProfile)
		r.Get("/players/{name}/loadout", s.handlePlayerLoadout)

		r.Get("/config", s.handleGetConfig)
		r.Put("/config", s.handlePutConfig)
		r.Delete("/config", s.handleDeleteConfig)
		r.Get("/sources", s.handleGetSources)
		r.Put("/sources", s.handlePutSources)
	})
}

// Start begins listening for HTTP requests and blocks until the server
// stops.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	logging.Logger().Infof("http api listening on %s", addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and closes websocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router exposes the chi router for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger().Errorf("json encode: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
