package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhancoach/mundial-stats/internal/model"
)

// MapPerformance is one team's aggregated performance on a single map.
type MapPerformance struct {
	Map       string  `json:"map"`
	Matches   int     `json:"matches"`
	Booyahs   int     `json:"booyahs"`
	Kills     int     `json:"kills"`
	Points    int     `json:"points"`
	AvgPoints float64 `json:"avgPoints"`
}

// RosterEntry is one player's contribution inside a team report. KD is a
// two-decimal string, "0.00" when the player has no recorded deaths or
// kills to divide.
type RosterEntry struct {
	Name    string  `json:"name"`
	Kills   int     `json:"kills"`
	Deaths  int     `json:"deaths"`
	Matches int     `json:"matches"`
	KD      string  `json:"kd"`
	Share   float64 `json:"share"`
}

// TeamReport is the full drill-down view of a single team: its overall
// standing, per-map breakdown, roster contribution table and per-round
// point evolution.
type TeamReport struct {
	Stats     TeamStats        `json:"stats"`
	Maps      []MapPerformance `json:"maps"`
	Roster    []RosterEntry    `json:"roster"`
	Evolution []RoundPoint     `json:"evolution"`
}

// BuildTeamReport assembles the drill-down report for one team. Name
// matching against the bundle is case-insensitive after trimming. A name
// with no detail rows yields a report whose Stats carry the requested
// name and zero totals.
func BuildTeamReport(b *model.Bundle, name string) TeamReport {
	canonical := resolveTeamName(b, name)
	f := Filter{Team: canonical}

	report := TeamReport{
		Stats:     TeamStats{Name: canonical},
		Maps:      buildMapPerformance(b, f),
		Roster:    buildRoster(b, canonical),
		Evolution: BuildRoundEvolution(b, f),
	}
	for _, s := range BuildTeamStats(b, f) {
		if s.Name == canonical {
			report.Stats = s
			break
		}
	}
	return report
}

// resolveTeamName maps a request-supplied team name onto the spelling
// used in the detail rows, falling back to the trimmed input when no row
// matches.
func resolveTeamName(b *model.Bundle, name string) string {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, d := range b.Details {
		if strings.ToLower(d.Team) == want {
			return d.Team
		}
	}
	return strings.TrimSpace(name)
}

func buildMapPerformance(b *model.Bundle, f Filter) []MapPerformance {
	byMap := make(map[string]*MapPerformance)
	var order []string

	for _, d := range b.Details {
		if !f.MatchDetail(d) || d.Map == "" {
			continue
		}
		p, ok := byMap[d.Map]
		if !ok {
			p = &MapPerformance{Map: d.Map}
			byMap[d.Map] = p
			order = append(order, d.Map)
		}
		p.Matches += d.Matches
		p.Booyahs += d.Booyahs
		p.Kills += d.Kills
		p.Points += d.Points
	}

	out := make([]MapPerformance, 0, len(order))
	for _, m := range order {
		p := byMap[m]
		if p.Matches > 0 {
			p.AvgPoints = round1(float64(p.Points) / float64(p.Matches))
		}
		out = append(out, *p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out
}

// buildRoster aggregates one team's players from the player-stat rows,
// with deaths taken from the kill feed (victim side) and Share the
// player's slice of the team's kills as a one-decimal percent.
func buildRoster(b *model.Bundle, team string) []RosterEntry {
	byPlayer := make(map[string]*RosterEntry)
	var order []string
	teamKills := 0

	for _, p := range b.PlayerStats {
		if p.Team != team {
			continue
		}
		e, ok := byPlayer[p.Player]
		if !ok {
			e = &RosterEntry{Name: p.Player}
			byPlayer[p.Player] = e
			order = append(order, p.Player)
		}
		e.Kills += p.Kills
		e.Matches += p.Matches
		teamKills += p.Kills
	}

	for _, k := range b.KillFeed {
		if e, ok := byPlayer[k.Victim]; ok {
			e.Deaths++
		}
	}

	out := make([]RosterEntry, 0, len(order))
	for _, name := range order {
		e := byPlayer[name]
		e.KD = formatKD(e.Kills, e.Deaths)
		if teamKills > 0 {
			e.Share = round1(float64(e.Kills) / float64(teamKills) * 100)
		}
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kills > out[j].Kills })
	return out
}

// formatKD renders kills-per-death with two decimals. Zero deaths shows
// the kill count itself ("7.00" for an undefeated 7-kill player), zero
// of both shows "0.00".
func formatKD(kills, deaths int) string {
	if deaths <= 0 {
		return fmt.Sprintf("%.2f", float64(kills))
	}
	return fmt.Sprintf("%.2f", float64(kills)/float64(deaths))
}
