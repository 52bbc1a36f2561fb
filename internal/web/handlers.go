package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jhancoach/mundial-stats/internal/aggregate"
	"github.com/jhancoach/mundial-stats/internal/source"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleMeta reports the refresh state of the live bundle plus the
// effective display labels.
func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	writeJSON(w, map[string]interface{}{
		"refreshId":   b.RefreshID.String(),
		"loading":     b.Loading,
		"lastUpdated": b.LastUpdated.Format(time.RFC3339),
		"app":         s.store.AppConfig(r.Context()),
	})
}

// handleRefresh triggers a refresh cycle. A request arriving while one is
// in flight is coalesced; the response says which happened.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	b, started := s.refresher.Refresh(r.Context())
	status := http.StatusOK
	if !started {
		status = http.StatusAccepted
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"refreshId":   b.RefreshID.String(),
		"started":     started,
		"lastUpdated": b.LastUpdated.Format(time.RFC3339),
	})
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	writeJSON(w, aggregate.BuildTeamStats(b, filterFromQuery(r)))
}

// handleStandingsTop returns the podium views: best teams by booyahs,
// placement points and kills. n defaults to 3.
func (s *Server) handleStandingsTop(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	stats := aggregate.BuildTeamStats(b, filterFromQuery(r))
	n := intParam(r, "n", 3)
	writeJSON(w, map[string]interface{}{
		"booyahs":         aggregate.TopByBooyahs(stats, n),
		"placementPoints": aggregate.TopByPlacementPoints(stats, n),
		"kills":           aggregate.TopByKills(stats, n),
	})
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	writeJSON(w, aggregate.BuildPlayerRanking(b, filterFromQuery(r)))
}

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	topN := intParam(r, "n", s.usageCutoff)
	writeJSON(w, aggregate.BuildUsageReport(b, filterFromQuery(r), topN))
}

func (s *Server) handleKillFeed(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	writeJSON(w, aggregate.BuildKillBreakdown(b, filterFromQuery(r), modeFromQuery(r)))
}

func (s *Server) handleKillHistory(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	writeJSON(w, aggregate.KillHistory(b, filterFromQuery(r), modeFromQuery(r)))
}

func (s *Server) handleRounds(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	writeJSON(w, aggregate.BuildRoundEvolution(b, filterFromQuery(r)))
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	b := s.refresher.Holder().Current()
	writeJSON(w, aggregate.BuildFilterOptions(b))
}

func (s *Server) handleTeamReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing team name")
		return
	}
	b := s.refresher.Holder().Current()
	writeJSON(w, aggregate.BuildTeamReport(b, name))
}

func (s *Server) handlePlayerProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing player name")
		return
	}
	b := s.refresher.Holder().Current()
	writeJSON(w, aggregate.BuildPlayerProfile(b, name))
}

// handlePlayerLoadout serves the modal loadout drill-down: an optional
// active query parameter restricts the history to rows with that active
// ability.
func (s *Server) handlePlayerLoadout(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing player name")
		return
	}
	b := s.refresher.Holder().Current()
	active := r.URL.Query().Get("active")
	writeJSON(w, aggregate.MostUsedLoadout(b, name, active))
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.AppConfig(r.Context()))
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg source.AppConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "malformed config payload")
		return
	}
	if err := s.store.SaveAppConfig(r.Context(), cfg); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, cfg)
}

// handleDeleteConfig clears all persisted overrides, labels and source
// locations alike.
func (s *Server) handleDeleteConfig(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "reset"})
}

func (s *Server) handleGetSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Locations(r.Context()))
}

func (s *Server) handlePutSources(w http.ResponseWriter, r *http.Request) {
	var overrides map[source.Dataset]string
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		writeError(w, http.StatusBadRequest, "malformed sources payload")
		return
	}
	merged := source.MergeLocations(source.DefaultLocations(), overrides)
	if err := s.store.SaveLocations(r.Context(), merged); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, merged)
}

func intParam(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
