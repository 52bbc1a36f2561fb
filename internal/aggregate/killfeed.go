package aggregate

import "github.com/jhancoach/mundial-stats/internal/model"

// FreqEntry is one value in a kill-feed frequency table with its share of
// the filtered total.
type FreqEntry struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
	Image   string  `json:"image,omitempty"`
}

// KillBreakdown holds the frequency tables over a filtered kill feed:
// weapons, safe zones and player identities (killers or victims per the
// mode). Percentages are shares of Total, one decimal place, zero when
// the filtered feed is empty.
type KillBreakdown struct {
	Weapons []FreqEntry `json:"weapons"`
	Safes   []FreqEntry `json:"safes"`
	Players []FreqEntry `json:"players"`
	Total   int         `json:"total"`
}

// BuildKillBreakdown computes weapon/safe/player frequency tables over
// the kill events passing the filter. Weapon and safe entries are
// decorated with images resolved case-insensitively against their
// dimension tables.
func BuildKillBreakdown(b *model.Bundle, f Filter, mode Mode) KillBreakdown {
	weapons := newCounter()
	safes := newCounter()
	players := newCounter()
	total := 0

	for _, k := range b.KillFeed {
		if !f.MatchKill(k, mode) {
			continue
		}
		total++
		weapons.add(k.Weapon)
		safes.add(k.Safe)
		if mode == ModeDeaths {
			players.add(k.Victim)
		} else {
			players.add(k.Killer)
		}
	}

	weaponImages := newImageIndex(b.Weapons)
	safeImages := newImageIndex(b.Safes)

	return KillBreakdown{
		Weapons: freqEntries(weapons, total, weaponImages),
		Safes:   freqEntries(safes, total, safeImages),
		Players: freqEntries(players, total, nil),
		Total:   total,
	}
}

// KillRecord is one filtered elimination event decorated with weapon and
// safe artwork for display.
type KillRecord struct {
	Killer        string `json:"killer"`
	Victim        string `json:"victim"`
	Weapon        string `json:"weapon"`
	WeaponImage   string `json:"weaponImage,omitempty"`
	Safe          string `json:"safe"`
	SafeImage     string `json:"safeImage,omitempty"`
	Map           string `json:"map"`
	Round         string `json:"round"`
	Confrontation string `json:"confrontation"`
}

// KillHistory returns the filtered kill feed in source order, decorated
// for display.
func KillHistory(b *model.Bundle, f Filter, mode Mode) []KillRecord {
	weaponImages := newImageIndex(b.Weapons)
	safeImages := newImageIndex(b.Safes)

	out := make([]KillRecord, 0)
	for _, k := range b.KillFeed {
		if !f.MatchKill(k, mode) {
			continue
		}
		out = append(out, KillRecord{
			Killer:        k.Killer,
			Victim:        k.Victim,
			Weapon:        k.Weapon,
			WeaponImage:   weaponImages.lookup(k.Weapon),
			Safe:          k.Safe,
			SafeImage:     safeImages.lookup(k.Safe),
			Map:           k.Map,
			Round:         k.Round,
			Confrontation: k.Confrontation,
		})
	}
	return out
}

// freqEntries converts a counter into frequency entries (already sorted
// by count descending, ties first-encountered) with percent-of-total and
// optional image decoration.
func freqEntries(c *counter, total int, images imageIndex) []FreqEntry {
	usage := c.entries(0)
	out := make([]FreqEntry, 0, len(usage))
	for _, u := range usage {
		e := FreqEntry{Name: u.Name, Count: u.Count}
		if total > 0 {
			e.Percent = round1(float64(u.Count) / float64(total) * 100)
		}
		if images != nil {
			e.Image = images.lookup(u.Name)
		}
		out = append(out, e)
	}
	return out
}
