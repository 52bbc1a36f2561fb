// Package aggregate computes the derived statistic tables consumed by
// presentation views: team standings, player rankings, usage frequencies,
// kill-feed analytics and per-round time series. Every function here is a
// pure projection of an immutable bundle; recomputing with the same bundle
// and filter yields identical output, and malformed input degrades to
// zeros rather than errors.
package aggregate

import "github.com/jhancoach/mundial-stats/internal/model"

// Mode selects which identity column of a kill event a player constraint
// applies to.
type Mode int

const (
	// ModeKills matches and counts the killer identity.
	ModeKills Mode = iota
	// ModeDeaths matches and counts the victim identity.
	ModeDeaths
)

// Filter is a declarative multi-field row constraint. The zero value of a
// scalar field (empty string) is the wildcard and matches everything; an
// empty Players set likewise matches every identity. Active fields combine
// with logical AND. Fields a record does not carry are ignored for that
// record type.
type Filter struct {
	Team          string
	Players       []string
	Weapon        string
	Safe          string
	Map           string
	Round         string
	Confrontation string
}

func match(want, got string) bool {
	return want == "" || want == got
}

func (f Filter) matchPlayer(name string) bool {
	if len(f.Players) == 0 {
		return true
	}
	for _, p := range f.Players {
		if p == name {
			return true
		}
	}
	return false
}

// MatchDetail evaluates the filter against a match-detail row.
func (f Filter) MatchDetail(d model.MatchDetail) bool {
	return match(f.Team, d.Team) &&
		match(f.Map, d.Map) &&
		match(f.Round, d.Round) &&
		match(f.Confrontation, d.Confrontation)
}

// MatchPlayerStat evaluates the filter against a player-stat row.
func (f Filter) MatchPlayerStat(p model.PlayerStat) bool {
	return match(f.Team, p.Team) &&
		f.matchPlayer(p.Player) &&
		match(f.Map, p.Map) &&
		match(f.Round, p.Round)
}

// MatchLoadout evaluates the filter against a loadout row.
func (f Filter) MatchLoadout(l model.Loadout) bool {
	return match(f.Team, l.Team) &&
		f.matchPlayer(l.Player) &&
		match(f.Map, l.Map) &&
		match(f.Round, l.Round) &&
		match(f.Confrontation, l.Confrontation)
}

// MatchKill evaluates the filter against a kill event. The Players set is
// checked against the killer or the victim depending on mode.
func (f Filter) MatchKill(k model.KillEvent, mode Mode) bool {
	identity := k.Killer
	if mode == ModeDeaths {
		identity = k.Victim
	}
	return match(f.Map, k.Map) &&
		match(f.Round, k.Round) &&
		match(f.Confrontation, k.Confrontation) &&
		match(f.Weapon, k.Weapon) &&
		match(f.Safe, k.Safe) &&
		f.matchPlayer(identity)
}
