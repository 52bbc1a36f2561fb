// Package model defines the canonical record shapes produced by the schema
// normalizer and consumed by the aggregation engine. Everything here is a
// plain value type; a Bundle is never mutated after assembly.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchDetail is one team-map-round result row.
type MatchDetail struct {
	Team            string
	Map             string
	Round           string
	Confrontation   string
	Points          int
	PlacementPoints int
	Placement       int
	Kills           int
	Booyahs         int
	Matches         int
}

// KillEvent is one elimination event from the kill feed.
type KillEvent struct {
	Killer        string
	Victim        string
	Weapon        string
	Safe          string
	Map           string
	Round         string
	Confrontation string
	Time          string
}

// PlayerStat is one player-match performance row.
type PlayerStat struct {
	Player  string
	Team    string
	Matches int
	Kills   int
	Map     string
	Round   string
}

// AbilitySlots is the number of ability slots in a loadout. Slot 0 is the
// active ability; slots 1-3 are passive.
const AbilitySlots = 4

// Loadout is one player-match character loadout snapshot.
type Loadout struct {
	Player        string
	Team          string
	Abilities     [AbilitySlots]string
	Pet           string
	Item          string
	Round         string
	Confrontation string
	Map           string
	Matches       int
}

// Dimension is a canonical (name, image) reference entity used to decorate
// event rows. Name is always non-empty after normalization.
type Dimension struct {
	Name  string
	Image string
}

// Bundle is one complete, immutable snapshot of all normalized tables plus
// refresh metadata. Consumers observe either a full previous bundle or a
// full new one, never a mix.
type Bundle struct {
	RefreshID uuid.UUID

	Details     []MatchDetail
	KillFeed    []KillEvent
	PlayerStats []PlayerStat
	Loadouts    []Loadout

	Teams     []Dimension
	Weapons   []Dimension
	Safes     []Dimension
	Abilities [AbilitySlots][]Dimension
	Pets      []Dimension
	Items     []Dimension

	Loading     bool
	LastUpdated time.Time
}

// Empty returns a bundle with every table empty, Loading false and a zero
// LastUpdated. This is the fail-safe result of a refresh that could not
// retrieve all sources.
func Empty() *Bundle {
	return &Bundle{RefreshID: uuid.New()}
}
