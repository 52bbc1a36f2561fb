// Package schema projects untyped row records into canonical typed records,
// reconciling the header-name drift between source spreadsheets. Every
// normalizer is a pure projection: input rows are never mutated, rows
// without a resolvable identity field are silently dropped, and numeric
// cells are coerced with ParseOrZero.
package schema

import (
	"strings"

	"github.com/jhancoach/mundial-stats/internal/model"
	"github.com/jhancoach/mundial-stats/internal/tabular"
)

// resolve returns the first alias present in the row with a non-empty
// trimmed value.
func resolve(row tabular.Row, aliases []string) string {
	for _, a := range aliases {
		if v := strings.TrimSpace(row[a]); v != "" {
			return v
		}
	}
	return ""
}

// field resolves one canonical field of an entity's alias table.
func field(row tabular.Row, table map[string][]string, name string) string {
	return resolve(row, table[name])
}

// NormalizeDetails projects match-detail rows. Rows without a team name
// are dropped.
func NormalizeDetails(t tabular.Table) []model.MatchDetail {
	out := make([]model.MatchDetail, 0, len(t.Rows))
	for _, row := range t.Rows {
		team := field(row, detailAliases, "team")
		if team == "" {
			continue
		}
		out = append(out, model.MatchDetail{
			Team:            team,
			Map:             field(row, detailAliases, "map"),
			Round:           field(row, detailAliases, "round"),
			Confrontation:   field(row, detailAliases, "confrontation"),
			Points:          ParseOrZero(field(row, detailAliases, "points")),
			PlacementPoints: ParseOrZero(field(row, detailAliases, "placementPts")),
			Placement:       ParseOrZero(field(row, detailAliases, "placement")),
			Kills:           ParseOrZero(field(row, detailAliases, "kills")),
			Booyahs:         ParseOrZero(field(row, detailAliases, "booyahs")),
			Matches:         ParseOrZero(field(row, detailAliases, "matches")),
		})
	}
	return out
}

// NormalizeKillFeed projects elimination events. Rows without a killer
// name are dropped.
func NormalizeKillFeed(t tabular.Table) []model.KillEvent {
	out := make([]model.KillEvent, 0, len(t.Rows))
	for _, row := range t.Rows {
		killer := field(row, killFeedAliases, "killer")
		if killer == "" {
			continue
		}
		out = append(out, model.KillEvent{
			Killer:        killer,
			Victim:        field(row, killFeedAliases, "victim"),
			Weapon:        field(row, killFeedAliases, "weapon"),
			Safe:          field(row, killFeedAliases, "safe"),
			Map:           field(row, killFeedAliases, "map"),
			Round:         field(row, killFeedAliases, "round"),
			Confrontation: field(row, killFeedAliases, "confrontation"),
			Time:          field(row, killFeedAliases, "time"),
		})
	}
	return out
}

// NormalizePlayerStats projects per-player match rows. Rows without a
// player name are dropped.
func NormalizePlayerStats(t tabular.Table) []model.PlayerStat {
	out := make([]model.PlayerStat, 0, len(t.Rows))
	for _, row := range t.Rows {
		player := field(row, playerStatAliases, "player")
		if player == "" {
			continue
		}
		out = append(out, model.PlayerStat{
			Player:  player,
			Team:    field(row, playerStatAliases, "team"),
			Matches: ParseOrZero(field(row, playerStatAliases, "matches")),
			Kills:   ParseOrZero(field(row, playerStatAliases, "kills")),
			Map:     field(row, playerStatAliases, "map"),
			Round:   field(row, playerStatAliases, "round"),
		})
	}
	return out
}

// NormalizeLoadouts projects character-loadout snapshots. The ability
// columns tolerate both the numbered ("Hab1") and spaced ("Hab 1")
// spellings. Rows without a player name are dropped.
func NormalizeLoadouts(t tabular.Table) []model.Loadout {
	abilityFields := [model.AbilitySlots]string{"ability1", "ability2", "ability3", "ability4"}

	out := make([]model.Loadout, 0, len(t.Rows))
	for _, row := range t.Rows {
		player := field(row, loadoutAliases, "player")
		if player == "" {
			continue
		}
		l := model.Loadout{
			Player:        player,
			Team:          field(row, loadoutAliases, "team"),
			Pet:           field(row, loadoutAliases, "pet"),
			Item:          field(row, loadoutAliases, "item"),
			Round:         field(row, loadoutAliases, "round"),
			Confrontation: field(row, loadoutAliases, "confrontation"),
			Map:           field(row, loadoutAliases, "map"),
			Matches:       ParseOrZero(field(row, loadoutAliases, "matches")),
		}
		for i, f := range abilityFields {
			l.Abilities[i] = field(row, loadoutAliases, f)
		}
		out = append(out, l)
	}
	return out
}

// NormalizeDimension projects a generic dimension table whose name column
// is expected under key (also tried with a space before its digit, e.g.
// "Hab1" vs "Hab 1"), falling back to the shared name alias list. Rows
// without a resolvable name are dropped.
func NormalizeDimension(t tabular.Table, key string) []model.Dimension {
	keys := []string{key}
	if spaced := spaceBeforeDigit(key); spaced != key {
		keys = append(keys, spaced)
	}
	keys = append(keys, nameAliases...)
	return normalizeDim(t, keys)
}

// NormalizeTeamRefs projects the team reference table.
func NormalizeTeamRefs(t tabular.Table) []model.Dimension {
	return normalizeDim(t, teamRefAliases["name"])
}

// NormalizeWeaponRefs projects the weapon reference table.
func NormalizeWeaponRefs(t tabular.Table) []model.Dimension {
	return normalizeDim(t, weaponRefAliases["name"])
}

// NormalizeSafeRefs projects the safe-zone reference table.
func NormalizeSafeRefs(t tabular.Table) []model.Dimension {
	return normalizeDim(t, safeRefAliases["name"])
}

func normalizeDim(t tabular.Table, nameKeys []string) []model.Dimension {
	out := make([]model.Dimension, 0, len(t.Rows))
	for _, row := range t.Rows {
		name := resolve(row, nameKeys)
		if name == "" {
			continue
		}
		out = append(out, model.Dimension{
			Name:  name,
			Image: resolve(row, imageAliases),
		})
	}
	return out
}

// spaceBeforeDigit inserts a space before the first digit of s, so that
// "Hab1" also matches a "Hab 1" header.
func spaceBeforeDigit(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return s[:i] + " " + s[i:]
		}
	}
	return s
}
