package aggregate

import "github.com/jhancoach/mundial-stats/internal/model"

// DefaultUsageCutoff is the top-N cutoff applied to usage-frequency
// tables when the caller does not supply one.
const DefaultUsageCutoff = 5

// UsageEntry is one value with its occurrence count.
type UsageEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// UsageReport holds the usage-frequency tables over a filtered set of
// loadout rows. The active ability slot is counted separately from the
// pooled passive slots; pets and items are counted independently.
type UsageReport struct {
	Active  []UsageEntry `json:"active"`
	Passive []UsageEntry `json:"passive"`
	Pets    []UsageEntry `json:"pets"`
	Items   []UsageEntry `json:"items"`
}

// BuildUsageReport counts ability, pet and item occurrences over the
// filtered loadouts and returns the top-N per category, sorted by count
// descending with ties in first-encountered order. topN <= 0 applies
// DefaultUsageCutoff.
func BuildUsageReport(b *model.Bundle, f Filter, topN int) UsageReport {
	if topN <= 0 {
		topN = DefaultUsageCutoff
	}

	active := newCounter()
	passive := newCounter()
	pets := newCounter()
	items := newCounter()

	for _, l := range b.Loadouts {
		if !f.MatchLoadout(l) {
			continue
		}
		active.add(l.Abilities[0])
		for _, a := range l.Abilities[1:] {
			passive.add(a)
		}
		pets.add(l.Pet)
		items.add(l.Item)
	}

	return UsageReport{
		Active:  active.entries(topN),
		Passive: passive.entries(topN),
		Pets:    pets.entries(topN),
		Items:   items.entries(topN),
	}
}

// LoadoutSlot is one resolved loadout slot value with its artwork, if the
// matching dimension table has one.
type LoadoutSlot struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// LoadoutSummary is the modal loadout of a single player: the
// highest-count value per slot across that player's loadout history.
type LoadoutSummary struct {
	Abilities [model.AbilitySlots]LoadoutSlot `json:"abilities"`
	Pet       LoadoutSlot                     `json:"pet"`
	Item      LoadoutSlot                     `json:"item"`
}

// MostUsedLoadout computes the modal value per ability/pet/item slot over
// one player's loadout rows. A non-empty activeAbility restricts the
// history to rows whose active slot equals it (drill-down refinement).
// Slot images resolve case-insensitively against the dimension tables; a
// miss leaves the image empty.
func MostUsedLoadout(b *model.Bundle, player, activeAbility string) LoadoutSummary {
	var abilities [model.AbilitySlots]*counter
	for i := range abilities {
		abilities[i] = newCounter()
	}
	pet := newCounter()
	item := newCounter()

	for _, l := range b.Loadouts {
		if l.Player != player {
			continue
		}
		if activeAbility != "" && l.Abilities[0] != activeAbility {
			continue
		}
		for i, a := range l.Abilities {
			abilities[i].add(a)
		}
		pet.add(l.Pet)
		item.add(l.Item)
	}

	var s LoadoutSummary
	for i := range abilities {
		idx := newImageIndex(b.Abilities[i])
		name := abilities[i].top()
		s.Abilities[i] = LoadoutSlot{Name: name, Image: idx.lookup(name)}
	}
	petName := pet.top()
	itemName := item.top()
	s.Pet = LoadoutSlot{Name: petName, Image: newImageIndex(b.Pets).lookup(petName)}
	s.Item = LoadoutSlot{Name: itemName, Image: newImageIndex(b.Items).lookup(itemName)}
	return s
}
