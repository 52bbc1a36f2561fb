// Package source defines the configured data sources: the logical dataset
// registry with compiled-in default locations, the HTTP fetcher that pulls
// their CSV exports, and the redis-backed override store that lets an
// operator repoint any source without a redeploy.
package source

// Dataset is the logical name of one fetchable table.
type Dataset string

const (
	DatasetDetails     Dataset = "match_details"
	DatasetKillFeed    Dataset = "kill_feed"
	DatasetPlayerStats Dataset = "player_stats"
	DatasetLoadouts    Dataset = "loadouts"
	DatasetTeamRefs    Dataset = "team_refs"
	DatasetWeaponRefs  Dataset = "weapon_refs"
	DatasetSafeRefs    Dataset = "safe_refs"
	DatasetAbility1    Dataset = "ability1_refs"
	DatasetAbility2    Dataset = "ability2_refs"
	DatasetAbility3    Dataset = "ability3_refs"
	DatasetAbility4    Dataset = "ability4_refs"
	DatasetPetRefs     Dataset = "pet_refs"
	DatasetItemRefs    Dataset = "item_refs"
)

// All lists every dataset in a stable order.
func All() []Dataset {
	return []Dataset{
		DatasetDetails, DatasetKillFeed, DatasetPlayerStats, DatasetLoadouts,
		DatasetTeamRefs, DatasetWeaponRefs, DatasetSafeRefs,
		DatasetAbility1, DatasetAbility2, DatasetAbility3, DatasetAbility4,
		DatasetPetRefs, DatasetItemRefs,
	}
}

// Locations maps every dataset to a fetchable text-resource URL.
type Locations map[Dataset]string

const sheetBase = "https://docs.google.com/spreadsheets/d/1aG4Gl14KUL93l_ovqhA_4Dx4P-BBG-eewcy1OAJ_L4M/export?format=csv&gid="

// DefaultLocations returns the compiled-in sheet exports for the current
// tournament. Callers get a fresh copy and may mutate it freely.
func DefaultLocations() Locations {
	return Locations{
		DatasetDetails:     sheetBase + "1560720549",
		DatasetKillFeed:    sheetBase + "1663256849",
		DatasetPlayerStats: sheetBase + "1193858435",
		DatasetLoadouts:    sheetBase + "1045005047",
		DatasetTeamRefs:    sheetBase + "2039387100",
		DatasetWeaponRefs:  sheetBase + "1006087866",
		DatasetSafeRefs:    sheetBase + "998190335",
		DatasetAbility1:    sheetBase + "602850523",
		DatasetAbility2:    sheetBase + "1028988179",
		DatasetAbility3:    sheetBase + "47739906",
		DatasetAbility4:    sheetBase + "1414607890",
		DatasetPetRefs:     sheetBase + "1145644018",
		DatasetItemRefs:    sheetBase + "1365432121",
	}
}

// AppConfig is the display labeling passed through to presentation
// consumers. The engine itself never reads it.
type AppConfig struct {
	TitlePart1 string `json:"titlePart1"`
	TitlePart2 string `json:"titlePart2"`
	Subtitle   string `json:"subtitle"`
}

// DefaultAppConfig returns the compiled-in display labels.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		TitlePart1: "MUNDIAL",
		TitlePart2: "2025",
		Subtitle:   "Global Finals",
	}
}
