package schema

import (
	"testing"

	"github.com/jhancoach/mundial-stats/internal/tabular"
)

func table(headers []string, rows ...[]string) tabular.Table {
	t := tabular.Table{Headers: headers}
	for _, r := range rows {
		row := make(tabular.Row, len(headers))
		for i, h := range headers {
			if i < len(r) {
				row[h] = r[i]
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestNormalizeDetails(t *testing.T) {
	in := table(
		[]string{"TIME", "MAPA", "RD", "PTS", "PTSC", "ABTS", "B", "S"},
		[]string{"Alpha", "Bermuda", "RD1", "12", "5", "4", "1", "1"},
		[]string{"", "Bermuda", "RD1", "9", "2", "1", "0", "1"},
		[]string{"Beta", "Purgatorio", "RD2", "8 pts", "3", "2", "0", "1"},
	)

	out := NormalizeDetails(in)
	if len(out) != 2 {
		t.Fatalf("rows = %d, want 2 (blank team dropped)", len(out))
	}
	first := out[0]
	if first.Team != "Alpha" || first.Points != 12 || first.PlacementPoints != 5 ||
		first.Kills != 4 || first.Booyahs != 1 || first.Matches != 1 {
		t.Errorf("first = %+v", first)
	}
	if out[1].Points != 8 {
		t.Errorf("annotated points = %d, want 8", out[1].Points)
	}
}

func TestNormalizeDetailsAlternateHeaders(t *testing.T) {
	in := table(
		[]string{"Equipe", "Rodada", "Pts", "PTS/C", "Abates", "Quedas"},
		[]string{"Alpha", "RD1", "10", "4", "3", "1"},
	)

	out := NormalizeDetails(in)
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	d := out[0]
	if d.Team != "Alpha" || d.Round != "RD1" || d.Points != 10 ||
		d.PlacementPoints != 4 || d.Kills != 3 || d.Matches != 1 {
		t.Errorf("row = %+v", d)
	}
}

func TestNormalizeKillFeed(t *testing.T) {
	in := table(
		[]string{"PLAYER", "VITIMA", "ARMA", "SAFE", "RD"},
		[]string{"Foo", "Bar", "M1014", "Safe 3", "RD1"},
		[]string{"", "Baz", "AK", "Safe 1", "RD1"},
	)

	out := NormalizeKillFeed(in)
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1 (blank killer dropped)", len(out))
	}
	k := out[0]
	if k.Killer != "Foo" || k.Victim != "Bar" || k.Weapon != "M1014" || k.Safe != "Safe 3" {
		t.Errorf("row = %+v", k)
	}
}

func TestNormalizePlayerStats(t *testing.T) {
	in := table(
		[]string{"Jogador", "Equipe", "Abates", "Quedas"},
		[]string{"Foo", "Alpha", "5", "1"},
	)

	out := NormalizePlayerStats(in)
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	p := out[0]
	if p.Player != "Foo" || p.Team != "Alpha" || p.Kills != 5 || p.Matches != 1 {
		t.Errorf("row = %+v", p)
	}
}

func TestNormalizeLoadoutsSpacedAbilityHeaders(t *testing.T) {
	in := table(
		[]string{"Player", "Hab 1", "Hab 2", "Hab3", "Hab4", "Pet", "Item"},
		[]string{"Foo", "Alma", "Muro", "Pulo", "Cura", "Rockie", "Medkit"},
	)

	out := NormalizeLoadouts(in)
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	l := out[0]
	want := [4]string{"Alma", "Muro", "Pulo", "Cura"}
	if l.Abilities != want {
		t.Errorf("abilities = %v, want %v", l.Abilities, want)
	}
	if l.Pet != "Rockie" || l.Item != "Medkit" {
		t.Errorf("row = %+v", l)
	}
}

func TestNormalizeDimensionKeyAndFallback(t *testing.T) {
	spaced := table(
		[]string{"Hab 1", "IMG"},
		[]string{"Alma", "http://img/alma.png"},
	)
	out := NormalizeDimension(spaced, "Hab1")
	if len(out) != 1 || out[0].Name != "Alma" || out[0].Image != "http://img/alma.png" {
		t.Errorf("spaced key = %+v", out)
	}

	generic := table(
		[]string{"Nome", "Imagem"},
		[]string{"Rockie", "http://img/rockie.png"},
		[]string{"", "http://img/ghost.png"},
	)
	out = NormalizeDimension(generic, "Pet")
	if len(out) != 1 || out[0].Name != "Rockie" {
		t.Errorf("generic fallback = %+v", out)
	}
}

func TestNormalizeTeamRefs(t *testing.T) {
	in := table(
		[]string{"TIME", "Link"},
		[]string{"Alpha", "http://img/alpha.png"},
	)
	out := NormalizeTeamRefs(in)
	if len(out) != 1 || out[0].Name != "Alpha" || out[0].Image != "http://img/alpha.png" {
		t.Errorf("team refs = %+v", out)
	}
}
