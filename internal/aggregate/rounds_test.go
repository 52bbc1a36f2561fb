package aggregate

import (
	"testing"

	"github.com/jhancoach/mundial-stats/internal/model"
)

func roundDetail(team, round string, points, kills int) model.MatchDetail {
	d := detail(team, points, 0, kills, 0)
	d.Round = round
	return d
}

func TestBuildRoundEvolutionOrdering(t *testing.T) {
	b := model.Empty()
	b.Details = []model.MatchDetail{
		roundDetail("Alpha", "RD10", 5, 1),
		roundDetail("Alpha", "RD2", 7, 2),
		roundDetail("Alpha", "RD1", 9, 3),
	}

	points := BuildRoundEvolution(b, Filter{})
	if len(points) != 3 {
		t.Fatalf("rounds = %d, want 3", len(points))
	}
	if points[0].Round != "RD1" || points[1].Round != "RD2" || points[2].Round != "RD10" {
		t.Errorf("order = %s, %s, %s", points[0].Round, points[1].Round, points[2].Round)
	}
}

func TestBuildRoundEvolutionSumsPerRound(t *testing.T) {
	b := model.Empty()
	b.Details = []model.MatchDetail{
		roundDetail("Alpha", "RD1", 9, 3),
		roundDetail("Beta", "RD1", 4, 1),
	}

	points := BuildRoundEvolution(b, Filter{})
	if len(points) != 1 || points[0].Points != 13 || points[0].Kills != 4 {
		t.Errorf("points = %+v", points)
	}
}

func TestBuildRoundEvolutionSkipsUnlabeled(t *testing.T) {
	b := model.Empty()
	b.Details = []model.MatchDetail{
		roundDetail("Alpha", "", 9, 3),
		roundDetail("Alpha", "RD1", 4, 1),
	}

	points := BuildRoundEvolution(b, Filter{})
	if len(points) != 1 || points[0].Round != "RD1" {
		t.Errorf("points = %+v", points)
	}
}

func TestBuildRoundEvolutionNoDigitsSortLexical(t *testing.T) {
	b := model.Empty()
	b.Details = []model.MatchDetail{
		roundDetail("Alpha", "Final", 1, 0),
		roundDetail("Alpha", "Abertura", 1, 0),
		roundDetail("Alpha", "RD3", 1, 0),
	}

	points := BuildRoundEvolution(b, Filter{})
	// Digit-free labels count as round 0 and precede RD3, ordered
	// lexically among themselves.
	if points[0].Round != "Abertura" || points[1].Round != "Final" || points[2].Round != "RD3" {
		t.Errorf("order = %s, %s, %s", points[0].Round, points[1].Round, points[2].Round)
	}
}

func TestBuildKillSeries(t *testing.T) {
	b := fixtureBundle()
	for i := range b.KillFeed {
		b.KillFeed[i].Round = "RD1"
	}
	b.KillFeed[2].Round = "RD2"

	series := BuildKillSeries(b, Filter{Players: []string{"Foo"}}, ModeKills)
	if len(series) != 1 || series[0].Round != "RD1" || series[0].Kills != 2 {
		t.Errorf("series = %+v", series)
	}
}
