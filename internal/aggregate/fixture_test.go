package aggregate

import "github.com/jhancoach/mundial-stats/internal/model"

// detail builds one match-detail row with a single counted match.
func detail(team string, points, placementPts, kills, booyahs int) model.MatchDetail {
	return model.MatchDetail{
		Team:            team,
		Points:          points,
		PlacementPoints: placementPts,
		Kills:           kills,
		Booyahs:         booyahs,
		Matches:         1,
	}
}

func kill(killer, victim, weapon, safe string) model.KillEvent {
	return model.KillEvent{Killer: killer, Victim: victim, Weapon: weapon, Safe: safe}
}

func stat(player, team string, kills, matches int) model.PlayerStat {
	return model.PlayerStat{Player: player, Team: team, Kills: kills, Matches: matches}
}

func dim(name, image string) model.Dimension {
	return model.Dimension{Name: name, Image: image}
}

func loadout(player string, abilities [4]string, pet, item string) model.Loadout {
	return model.Loadout{Player: player, Abilities: abilities, Pet: pet, Item: item, Matches: 1}
}

// statsOnly builds a bundle containing just the given player-stat rows.
func statsOnly(stats ...model.PlayerStat) *model.Bundle {
	b := model.Empty()
	b.PlayerStats = stats
	return b
}

// fixtureBundle is the shared scenario: team Alpha with 35 points, 7
// placement points and 7 kills over 3 matches, a second team Beta, and a
// small kill feed and loadout history around players Foo and Bar.
func fixtureBundle() *model.Bundle {
	b := model.Empty()

	b.Details = []model.MatchDetail{
		detail("Alpha", 12, 3, 3, 1),
		detail("Alpha", 11, 2, 2, 0),
		detail("Alpha", 12, 2, 2, 1),
		detail("Beta", 10, 4, 1, 0),
	}

	b.PlayerStats = []model.PlayerStat{
		stat("Foo", "Alpha", 5, 1),
		stat("Bar", "Alpha", 2, 2),
		stat("Baz", "Beta", 1, 1),
	}

	b.KillFeed = []model.KillEvent{
		kill("Foo", "Baz", "M1014", "Safe 3"),
		kill("Foo", "Qux", "M1014", "Safe 1"),
		kill("Bar", "Baz", "AK", "Safe 3"),
	}

	b.Loadouts = []model.Loadout{
		loadout("Foo", [4]string{"Alma", "Muro", "Pulo", "Heal"}, "Rockie", "Medkit"),
		loadout("Foo", [4]string{"Alma", "Heal", "Cura", "Heal"}, "Rockie", "Medkit"),
		loadout("Bar", [4]string{"Sombra", "Muro", "Pulo", "Cura"}, "Falco", "Gloo"),
	}

	b.Teams = []model.Dimension{
		{Name: "Alpha", Image: "http://img/alpha.png"},
		{Name: "Beta", Image: "http://img/beta.png"},
	}
	b.Weapons = []model.Dimension{
		{Name: "M1014", Image: "http://img/m1014.png"},
		{Name: "AK", Image: "http://img/ak.png"},
	}
	b.Safes = []model.Dimension{
		{Name: "safe 3", Image: "http://img/safe3.png"},
	}
	return b
}
