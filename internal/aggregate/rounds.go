package aggregate

import (
	"sort"

	"github.com/jhancoach/mundial-stats/internal/model"
)

// RoundPoint is one round's summed metrics in a per-round time series.
type RoundPoint struct {
	Round  string `json:"round"`
	Points int    `json:"points"`
	Kills  int    `json:"kills"`
}

// BuildRoundEvolution groups filtered match-detail rows by round label,
// summing points and kills per round. Rows without a round label are
// skipped. Rounds sort by the numeric portion of the label, lexically on
// ties or when no digits are present ("RD1" < "RD2" < "RD10").
func BuildRoundEvolution(b *model.Bundle, f Filter) []RoundPoint {
	byRound := make(map[string]*RoundPoint)
	var order []string

	for _, d := range b.Details {
		if !f.MatchDetail(d) || d.Round == "" {
			continue
		}
		p, ok := byRound[d.Round]
		if !ok {
			p = &RoundPoint{Round: d.Round}
			byRound[d.Round] = p
			order = append(order, d.Round)
		}
		p.Points += d.Points
		p.Kills += d.Kills
	}

	out := make([]RoundPoint, 0, len(order))
	for _, r := range order {
		out = append(out, *byRound[r])
	}
	sortRounds(out)
	return out
}

// BuildKillSeries counts filtered kill events per round label, ordered
// the same way as BuildRoundEvolution.
func BuildKillSeries(b *model.Bundle, f Filter, mode Mode) []RoundPoint {
	byRound := make(map[string]*RoundPoint)
	var order []string

	for _, k := range b.KillFeed {
		if !f.MatchKill(k, mode) || k.Round == "" {
			continue
		}
		p, ok := byRound[k.Round]
		if !ok {
			p = &RoundPoint{Round: k.Round}
			byRound[k.Round] = p
			order = append(order, k.Round)
		}
		p.Kills++
	}

	out := make([]RoundPoint, 0, len(order))
	for _, r := range order {
		out = append(out, *byRound[r])
	}
	sortRounds(out)
	return out
}

func sortRounds(points []RoundPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		a, b := roundNumber(points[i].Round), roundNumber(points[j].Round)
		if a != b {
			return a < b
		}
		return points[i].Round < points[j].Round
	})
}

// roundNumber extracts the digits embedded in a round label ("RD10" →
// 10). Labels without digits sort as zero, leaving the lexical tiebreak
// to order them.
func roundNumber(label string) int {
	n := 0
	seen := false
	for i := 0; i < len(label); i++ {
		if label[i] >= '0' && label[i] <= '9' {
			n = n*10 + int(label[i]-'0')
			seen = true
		}
	}
	if !seen {
		return 0
	}
	return n
}
