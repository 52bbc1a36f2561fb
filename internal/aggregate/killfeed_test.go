package aggregate

import "testing"

func TestBuildKillBreakdown(t *testing.T) {
	breakdown := BuildKillBreakdown(fixtureBundle(), Filter{}, ModeKills)

	if breakdown.Total != 3 {
		t.Fatalf("total = %d, want 3", breakdown.Total)
	}
	if breakdown.Weapons[0].Name != "M1014" || breakdown.Weapons[0].Count != 2 {
		t.Errorf("top weapon = %+v", breakdown.Weapons[0])
	}
	if breakdown.Weapons[0].Percent != 66.7 {
		t.Errorf("weapon share = %v, want 66.7", breakdown.Weapons[0].Percent)
	}
	if breakdown.Weapons[0].Image != "http://img/m1014.png" {
		t.Errorf("weapon image = %q", breakdown.Weapons[0].Image)
	}
	if breakdown.Players[0].Name != "Foo" || breakdown.Players[0].Count != 2 {
		t.Errorf("top killer = %+v", breakdown.Players[0])
	}
}

func TestBuildKillBreakdownDeathsMode(t *testing.T) {
	breakdown := BuildKillBreakdown(fixtureBundle(), Filter{}, ModeDeaths)

	if breakdown.Players[0].Name != "Baz" || breakdown.Players[0].Count != 2 {
		t.Errorf("top victim = %+v", breakdown.Players[0])
	}
}

func TestBuildKillBreakdownSafeImageCaseInsensitive(t *testing.T) {
	// The safe dimension table carries "safe 3"; events say "Safe 3".
	breakdown := BuildKillBreakdown(fixtureBundle(), Filter{}, ModeKills)

	for _, s := range breakdown.Safes {
		if s.Name == "Safe 3" && s.Image != "http://img/safe3.png" {
			t.Errorf("safe image = %q", s.Image)
		}
	}
}

func TestBuildKillBreakdownEmptyFeed(t *testing.T) {
	b := fixtureBundle()
	b.KillFeed = nil

	breakdown := BuildKillBreakdown(b, Filter{}, ModeKills)
	if breakdown.Total != 0 || len(breakdown.Weapons) != 0 {
		t.Errorf("empty feed = %+v", breakdown)
	}
}

func TestBuildKillBreakdownPlayerFilterFollowsMode(t *testing.T) {
	f := Filter{Players: []string{"Baz"}}

	asKiller := BuildKillBreakdown(fixtureBundle(), f, ModeKills)
	if asKiller.Total != 0 {
		t.Errorf("Baz as killer total = %d, want 0", asKiller.Total)
	}
	asVictim := BuildKillBreakdown(fixtureBundle(), f, ModeDeaths)
	if asVictim.Total != 2 {
		t.Errorf("Baz as victim total = %d, want 2", asVictim.Total)
	}
}

func TestKillHistory(t *testing.T) {
	records := KillHistory(fixtureBundle(), Filter{Weapon: "M1014"}, ModeKills)

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Victim != "Baz" || records[1].Victim != "Qux" {
		t.Errorf("source order lost: %+v", records)
	}
	if records[0].WeaponImage != "http://img/m1014.png" {
		t.Errorf("weapon image = %q", records[0].WeaponImage)
	}
}
