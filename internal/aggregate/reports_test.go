package aggregate

import "testing"

func TestBuildTeamReport(t *testing.T) {
	report := BuildTeamReport(fixtureBundle(), "alpha")

	if report.Stats.Name != "Alpha" {
		t.Fatalf("name resolution = %q, want Alpha", report.Stats.Name)
	}
	if report.Stats.TotalPoints != 35 || report.Stats.Kills != 7 {
		t.Errorf("stats = %+v", report.Stats)
	}
	if len(report.Roster) != 2 {
		t.Fatalf("roster = %+v", report.Roster)
	}
	foo := report.Roster[0]
	if foo.Name != "Foo" || foo.Kills != 5 {
		t.Errorf("roster leader = %+v", foo)
	}
	// Foo appears once as victim never; Baz took both of Foo's team deaths.
	if foo.Deaths != 0 || foo.KD != "5.00" {
		t.Errorf("roster KD = %+v", foo)
	}
	if foo.Share != 71.4 {
		t.Errorf("kill share = %v, want 71.4", foo.Share)
	}
}

func TestBuildTeamReportUnknownTeam(t *testing.T) {
	report := BuildTeamReport(fixtureBundle(), "  Nobody ")

	if report.Stats.Name != "Nobody" {
		t.Errorf("name = %q", report.Stats.Name)
	}
	if report.Stats.TotalPoints != 0 || len(report.Roster) != 0 {
		t.Errorf("unknown team yielded data: %+v", report)
	}
}

func TestBuildTeamReportMapPerformance(t *testing.T) {
	b := fixtureBundle()
	b.Details[0].Map = "Bermuda"
	b.Details[1].Map = "Bermuda"
	b.Details[2].Map = "Purgatorio"

	report := BuildTeamReport(b, "Alpha")
	if len(report.Maps) != 2 {
		t.Fatalf("maps = %+v", report.Maps)
	}
	bermuda := report.Maps[0]
	if bermuda.Map != "Bermuda" || bermuda.Points != 23 || bermuda.Matches != 2 {
		t.Errorf("bermuda = %+v", bermuda)
	}
	if bermuda.AvgPoints != 11.5 {
		t.Errorf("avg = %v, want 11.5", bermuda.AvgPoints)
	}
}

func TestBuildPlayerProfile(t *testing.T) {
	profile := BuildPlayerProfile(fixtureBundle(), "foo")

	if profile.Name != "Foo" || profile.Team != "Alpha" {
		t.Fatalf("identity = %q/%q", profile.Name, profile.Team)
	}
	if profile.Kills != 5 || profile.Matches != 1 || profile.Avg != "5.00" {
		t.Errorf("totals = %+v", profile)
	}
	if profile.Loadout.Abilities[0].Name != "Alma" {
		t.Errorf("loadout = %+v", profile.Loadout)
	}
	if len(profile.Victims) != 2 || profile.Victims[0].Name != "Baz" {
		t.Errorf("victims = %+v", profile.Victims)
	}
	if profile.Weapons[0].Name != "M1014" || profile.Weapons[0].Count != 2 {
		t.Errorf("weapons = %+v", profile.Weapons)
	}
}

func TestBuildPlayerProfileUnknown(t *testing.T) {
	profile := BuildPlayerProfile(fixtureBundle(), "Nobody")

	if profile.Avg != "0.00" || profile.Kills != 0 {
		t.Errorf("unknown player = %+v", profile)
	}
}

func TestBuildFilterOptions(t *testing.T) {
	b := fixtureBundle()
	b.Details[0].Round = "RD10"
	b.Details[1].Round = "RD2"
	b.KillFeed[0].Round = "RD1"

	opts := BuildFilterOptions(b)

	if len(opts.Teams) != 2 || opts.Teams[0] != "Alpha" || opts.Teams[1] != "Beta" {
		t.Errorf("teams = %v", opts.Teams)
	}
	// Union of stat players and kill-feed identities, sorted.
	wantPlayers := []string{"Bar", "Baz", "Foo", "Qux"}
	if len(opts.Players) != len(wantPlayers) {
		t.Fatalf("players = %v", opts.Players)
	}
	for i, p := range wantPlayers {
		if opts.Players[i] != p {
			t.Errorf("players[%d] = %q, want %q", i, opts.Players[i], p)
		}
	}
	if len(opts.Rounds) != 3 || opts.Rounds[0] != "RD1" || opts.Rounds[2] != "RD10" {
		t.Errorf("rounds = %v", opts.Rounds)
	}
	if len(opts.Weapons) != 2 {
		t.Errorf("weapons = %v", opts.Weapons)
	}
}
