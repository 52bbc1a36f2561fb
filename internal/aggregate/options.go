package aggregate

import (
	"sort"

	"github.com/jhancoach/mundial-stats/internal/model"
)

// FilterOptions lists the distinct values present in a bundle for each
// filterable dimension, for populating selection controls.
type FilterOptions struct {
	Teams          []string `json:"teams"`
	Players        []string `json:"players"`
	Weapons        []string `json:"weapons"`
	Safes          []string `json:"safes"`
	Maps           []string `json:"maps"`
	Rounds         []string `json:"rounds"`
	Confrontations []string `json:"confrontations"`
}

// BuildFilterOptions scans the bundle tables for the distinct values of
// each filterable dimension. Players are the union of stat-table names
// and kill-feed killers and victims. Rounds sort numerically by embedded
// digits; everything else sorts lexically.
func BuildFilterOptions(b *model.Bundle) FilterOptions {
	teams := newDistinct()
	players := newDistinct()
	weapons := newDistinct()
	safes := newDistinct()
	maps := newDistinct()
	rounds := newDistinct()
	confrontations := newDistinct()

	for _, d := range b.Details {
		teams.add(d.Team)
		maps.add(d.Map)
		rounds.add(d.Round)
		confrontations.add(d.Confrontation)
	}
	for _, p := range b.PlayerStats {
		teams.add(p.Team)
		players.add(p.Player)
		maps.add(p.Map)
		rounds.add(p.Round)
	}
	for _, k := range b.KillFeed {
		players.add(k.Killer)
		players.add(k.Victim)
		weapons.add(k.Weapon)
		safes.add(k.Safe)
		maps.add(k.Map)
		rounds.add(k.Round)
		confrontations.add(k.Confrontation)
	}

	return FilterOptions{
		Teams:          teams.sorted(),
		Players:        players.sorted(),
		Weapons:        weapons.sorted(),
		Safes:          safes.sorted(),
		Maps:           maps.sorted(),
		Rounds:         rounds.sortedAsRounds(),
		Confrontations: confrontations.sorted(),
	}
}

type distinct struct {
	seen map[string]struct{}
}

func newDistinct() *distinct {
	return &distinct{seen: make(map[string]struct{})}
}

func (d *distinct) add(v string) {
	if v == "" {
		return
	}
	d.seen[v] = struct{}{}
}

func (d *distinct) values() []string {
	out := make([]string, 0, len(d.seen))
	for v := range d.seen {
		out = append(out, v)
	}
	return out
}

func (d *distinct) sorted() []string {
	out := d.values()
	sort.Strings(out)
	return out
}

func (d *distinct) sortedAsRounds() []string {
	out := d.values()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := roundNumber(out[i]), roundNumber(out[j])
		if a != b {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}
