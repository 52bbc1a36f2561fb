package aggregate

import (
	"strings"

	"github.com/jhancoach/mundial-stats/internal/model"
)

// PlayerProfile is the drill-down view of a single player: ranking
// totals, modal loadout, usage tables restricted to the player, and the
// frequency tables of their kill feed appearances.
type PlayerProfile struct {
	Name         string         `json:"name"`
	Team         string         `json:"team"`
	Kills        int            `json:"kills"`
	Matches      int            `json:"matches"`
	Avg          string         `json:"avg"`
	Loadout      LoadoutSummary `json:"loadout"`
	Usage        UsageReport    `json:"usage"`
	Weapons      []FreqEntry    `json:"weapons"`
	Safes        []FreqEntry    `json:"safes"`
	Maps         []FreqEntry    `json:"maps"`
	Victims      []FreqEntry    `json:"victims"`
	KillsByRound []RoundPoint   `json:"killsByRound"`
}

// BuildPlayerProfile assembles the drill-down report for one player.
// Name matching is case-insensitive after trimming; an unknown name
// yields a profile with the requested name, "0.00" average and empty
// tables.
func BuildPlayerProfile(b *model.Bundle, name string) PlayerProfile {
	canonical := resolvePlayerName(b, name)
	f := Filter{Players: []string{canonical}}

	profile := PlayerProfile{
		Name:    canonical,
		Avg:     "0.00",
		Loadout: MostUsedLoadout(b, canonical, ""),
		Usage:   BuildUsageReport(b, f, 0),
	}

	for _, row := range BuildPlayerRanking(b, f) {
		if row.Name == canonical {
			profile.Team = row.Team
			profile.Kills = row.Kills
			profile.Matches = row.Matches
			profile.Avg = row.Avg
			break
		}
	}

	breakdown := BuildKillBreakdown(b, f, ModeKills)
	profile.Weapons = breakdown.Weapons
	profile.Safes = breakdown.Safes
	profile.Maps, profile.Victims = buildKillContext(b, canonical)
	profile.KillsByRound = BuildKillSeries(b, f, ModeKills)
	return profile
}

func resolvePlayerName(b *model.Bundle, name string) string {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range b.PlayerStats {
		if strings.ToLower(p.Player) == want {
			return p.Player
		}
	}
	for _, k := range b.KillFeed {
		if strings.ToLower(k.Killer) == want {
			return k.Killer
		}
	}
	return strings.TrimSpace(name)
}

// buildKillContext counts where the player's kills happened and who they
// eliminated, as shares of the player's own kill total.
func buildKillContext(b *model.Bundle, player string) (maps, victims []FreqEntry) {
	mapCounts := newCounter()
	victimCounts := newCounter()
	total := 0
	for _, k := range b.KillFeed {
		if k.Killer != player {
			continue
		}
		mapCounts.add(k.Map)
		victimCounts.add(k.Victim)
		total++
	}
	return freqEntries(mapCounts, total, nil), freqEntries(victimCounts, total, nil)
}
