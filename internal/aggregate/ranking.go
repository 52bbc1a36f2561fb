package aggregate

import (
	"fmt"
	"sort"

	"github.com/jhancoach/mundial-stats/internal/model"
)

// RankingRow is one player's aggregated kill performance. Avg carries the
// two-decimal display contract as a string: a player with zero matches
// shows "0.00", never a bare zero.
type RankingRow struct {
	Name    string `json:"name"`
	Team    string `json:"team"`
	Kills   int    `json:"kills"`
	Matches int    `json:"matches"`
	Avg     string `json:"avg"`
}

// BuildPlayerRanking groups filtered player-stat rows by player name,
// summing kills and matches, sorted by total kills descending. The team
// shown is the one from the player's first row.
func BuildPlayerRanking(b *model.Bundle, f Filter) []RankingRow {
	byPlayer := make(map[string]*RankingRow)
	var order []string

	for _, p := range b.PlayerStats {
		if !f.MatchPlayerStat(p) {
			continue
		}
		row, ok := byPlayer[p.Player]
		if !ok {
			row = &RankingRow{Name: p.Player, Team: p.Team}
			byPlayer[p.Player] = row
			order = append(order, p.Player)
		}
		row.Kills += p.Kills
		row.Matches += p.Matches
	}

	out := make([]RankingRow, 0, len(order))
	for _, name := range order {
		row := byPlayer[name]
		row.Avg = formatAvg(row.Kills, row.Matches)
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Kills > out[j].Kills })
	return out
}

// formatAvg renders kills-per-match with two decimals, "0.00" when no
// matches were played.
func formatAvg(kills, matches int) string {
	if matches <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(kills)/float64(matches))
}
