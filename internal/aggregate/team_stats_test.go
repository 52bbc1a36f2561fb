package aggregate

import "testing"

func TestBuildTeamStatsAccumulation(t *testing.T) {
	stats := BuildTeamStats(fixtureBundle(), Filter{})

	if len(stats) != 2 {
		t.Fatalf("teams = %d, want 2", len(stats))
	}
	alpha := stats[0]
	if alpha.Name != "Alpha" {
		t.Fatalf("leader = %s, want Alpha", alpha.Name)
	}
	if alpha.TotalPoints != 35 || alpha.Kills != 7 || alpha.Matches != 3 ||
		alpha.PlacementPoints != 7 || alpha.Booyahs != 2 {
		t.Errorf("alpha totals = %+v", alpha)
	}
	if alpha.AvgPoints != 11.67 {
		t.Errorf("avg points = %v, want 11.67", alpha.AvgPoints)
	}
	if alpha.AvgKills != 2.33 {
		t.Errorf("avg kills = %v, want 2.33", alpha.AvgKills)
	}
	if alpha.AvgPlacementPoints != 2.33 {
		t.Errorf("avg placement = %v, want 2.33", alpha.AvgPlacementPoints)
	}
	if alpha.PercentKills != 20 {
		t.Errorf("kill share = %d, want 20", alpha.PercentKills)
	}
	if alpha.PercentPlacement != 20 {
		t.Errorf("placement share = %d, want 20", alpha.PercentPlacement)
	}
	if alpha.Image != "http://img/alpha.png" {
		t.Errorf("image = %q", alpha.Image)
	}
}

func TestBuildTeamStatsZeroMatchesSafe(t *testing.T) {
	b := fixtureBundle()
	b.Details = append(b.Details, detail("Gamma", 0, 0, 0, 0))
	b.Details[len(b.Details)-1].Matches = 0

	stats := BuildTeamStats(b, Filter{Team: "Gamma"})
	if len(stats) != 1 {
		t.Fatalf("teams = %d, want 1", len(stats))
	}
	g := stats[0]
	if g.AvgPoints != 0 || g.AvgKills != 0 || g.PercentKills != 0 {
		t.Errorf("zero-match team = %+v", g)
	}
}

func TestBuildTeamStatsFilterByTeam(t *testing.T) {
	stats := BuildTeamStats(fixtureBundle(), Filter{Team: "Beta"})
	if len(stats) != 1 || stats[0].Name != "Beta" {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestBuildTeamStatsIdempotent(t *testing.T) {
	b := fixtureBundle()
	first := BuildTeamStats(b, Filter{})
	second := BuildTeamStats(b, Filter{})

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTopViews(t *testing.T) {
	stats := BuildTeamStats(fixtureBundle(), Filter{})

	byBooyahs := TopByBooyahs(stats, 1)
	if len(byBooyahs) != 1 || byBooyahs[0].Name != "Alpha" {
		t.Errorf("top booyahs = %+v", byBooyahs)
	}
	byPlacement := TopByPlacementPoints(stats, 1)
	if len(byPlacement) != 1 || byPlacement[0].Name != "Alpha" {
		t.Errorf("top placement = %+v", byPlacement)
	}
	byKills := TopByKills(stats, 1)
	if len(byKills) != 1 || byKills[0].Name != "Alpha" {
		t.Errorf("top kills = %+v", byKills)
	}
}

func TestTopViewsTiebreakByTotalPoints(t *testing.T) {
	b := fixtureBundle()
	// Give Beta the same booyah count as Alpha but fewer total points.
	b.Details = append(b.Details, detail("Beta", 0, 0, 0, 2))

	stats := BuildTeamStats(b, Filter{})
	top := TopByBooyahs(stats, 2)
	if top[0].Name != "Alpha" {
		t.Errorf("tiebreak leader = %s, want Alpha", top[0].Name)
	}
}
