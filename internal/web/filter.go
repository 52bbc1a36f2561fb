package web

import (
	"net/http"
	"strings"

	"github.com/jhancoach/mundial-stats/internal/aggregate"
)

// wildcardParam is the request-side spelling of "no restriction". It maps
// onto the evaluator's empty-string wildcard.
const wildcardParam = "All"

// filterFromQuery builds a filter predicate from query parameters. Each
// dimension accepts a single value except player, which repeats to form a
// set. "All" and empty both mean unrestricted.
func filterFromQuery(r *http.Request) aggregate.Filter {
	q := r.URL.Query()
	f := aggregate.Filter{
		Team:          dimParam(q.Get("team")),
		Weapon:        dimParam(q.Get("weapon")),
		Safe:          dimParam(q.Get("safe")),
		Map:           dimParam(q.Get("map")),
		Round:         dimParam(q.Get("round")),
		Confrontation: dimParam(q.Get("confrontation")),
	}
	for _, p := range q["player"] {
		if v := dimParam(p); v != "" {
			f.Players = append(f.Players, v)
		}
	}
	return f
}

func dimParam(raw string) string {
	v := strings.TrimSpace(raw)
	if strings.EqualFold(v, wildcardParam) {
		return ""
	}
	return v
}

// modeFromQuery selects the kill-feed perspective. Anything other than
// "deaths" means kills.
func modeFromQuery(r *http.Request) aggregate.Mode {
	if strings.EqualFold(r.URL.Query().Get("mode"), "deaths") {
		return aggregate.ModeDeaths
	}
	return aggregate.ModeKills
}
