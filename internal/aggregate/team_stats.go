package aggregate

import (
	"sort"

	"github.com/jhancoach/mundial-stats/internal/model"
)

// TeamStats is one team's accumulated standing with its derived averages
// and percentage shares.
type TeamStats struct {
	Name            string `json:"name"`
	Image           string `json:"image,omitempty"`
	Matches         int    `json:"matches"`
	Booyahs         int    `json:"booyahs"`
	PlacementPoints int    `json:"placementPoints"`
	Kills           int    `json:"kills"`
	TotalPoints     int    `json:"totalPoints"`

	// Per-match averages, two decimal places. Zero when no matches.
	AvgKills           float64 `json:"avgKills"`
	AvgPoints          float64 `json:"avgPoints"`
	AvgPlacementPoints float64 `json:"avgPlacementPoints"`

	// Shares of total points, rounded to the nearest whole percent. Zero
	// when the team has no points.
	PercentPlacement int `json:"percentPlacement"`
	PercentKills     int `json:"percentKills"`
}

// BuildTeamStats accumulates match-detail rows into per-team standings,
// sorted by total points descending. Ties are not broken further here;
// callers needing a secondary key use the Top* views. Team images come
// from an exact name lookup against the team reference table.
func BuildTeamStats(b *model.Bundle, f Filter) []TeamStats {
	images := make(map[string]string, len(b.Teams))
	for _, t := range b.Teams {
		if t.Name != "" && t.Image != "" {
			images[t.Name] = t.Image
		}
	}

	byTeam := make(map[string]*TeamStats)
	var order []string

	for _, d := range b.Details {
		if !f.MatchDetail(d) {
			continue
		}
		stats, ok := byTeam[d.Team]
		if !ok {
			stats = &TeamStats{Name: d.Team, Image: images[d.Team]}
			byTeam[d.Team] = stats
			order = append(order, d.Team)
		}
		stats.TotalPoints += d.Points
		stats.PlacementPoints += d.PlacementPoints
		stats.Kills += d.Kills
		stats.Booyahs += d.Booyahs
		stats.Matches += d.Matches
	}

	out := make([]TeamStats, 0, len(order))
	for _, name := range order {
		stats := byTeam[name]
		if stats.Matches > 0 {
			stats.AvgKills = round2(float64(stats.Kills) / float64(stats.Matches))
			stats.AvgPoints = round2(float64(stats.TotalPoints) / float64(stats.Matches))
			stats.AvgPlacementPoints = round2(float64(stats.PlacementPoints) / float64(stats.Matches))
		}
		stats.PercentPlacement = percentOf(stats.PlacementPoints, stats.TotalPoints)
		stats.PercentKills = percentOf(stats.Kills, stats.TotalPoints)
		out = append(out, *stats)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalPoints > out[j].TotalPoints })
	return out
}

// TopByBooyahs returns the n best teams by booyah count, total points as
// the tiebreak.
func TopByBooyahs(stats []TeamStats, n int) []TeamStats {
	return topBy(stats, n, func(a, b TeamStats) bool {
		if a.Booyahs != b.Booyahs {
			return a.Booyahs > b.Booyahs
		}
		return a.TotalPoints > b.TotalPoints
	})
}

// TopByPlacementPoints returns the n best teams by placement points,
// total points as the tiebreak.
func TopByPlacementPoints(stats []TeamStats, n int) []TeamStats {
	return topBy(stats, n, func(a, b TeamStats) bool {
		if a.PlacementPoints != b.PlacementPoints {
			return a.PlacementPoints > b.PlacementPoints
		}
		return a.TotalPoints > b.TotalPoints
	})
}

// TopByKills returns the n best teams by kill count, total points as the
// tiebreak.
func TopByKills(stats []TeamStats, n int) []TeamStats {
	return topBy(stats, n, func(a, b TeamStats) bool {
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		return a.TotalPoints > b.TotalPoints
	})
}

func topBy(stats []TeamStats, n int, less func(a, b TeamStats) bool) []TeamStats {
	out := make([]TeamStats, len(stats))
	copy(out, stats)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
