package resolve

import (
	"testing"

	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/domain/player"
	"github.com/fplstats/cleansheets/internal/domain/team"
)

func TestTeamIndexExactMatch(t *testing.T) {
	t.Parallel()

	idx := NewTeamIndex([]team.Team{
		{ID: 1, Name: "Arsenal"},
		{ID: 2, Name: "Chelsea"},
	})

	id, ok := idx.Resolve("Arsenal")
	if !ok || id != 1 {
		t.Fatalf("expected Arsenal -> 1, got %d ok=%t", id, ok)
	}
	if _, ok := idx.Resolve("Arsenal FC"); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestTeamIndexAliases(t *testing.T) {
	t.Parallel()

	idx := NewTeamIndex([]team.Team{
		{ID: 10, Name: "Brighton and Hove Albion"},
		{ID: 11, Name: "Nottingham Forest"},
		{ID: 12, Name: "Leicester"},
		{ID: 13, Name: "Tottenham Hotspur"},
	})

	cases := map[string]int64{
		"Brighton":        10,
		"Nott'ham Forest": 11,
		"Leicester City":  12,
		"Tottenham":       13,
	}
	for alias, want := range cases {
		id, ok := idx.Resolve(alias)
		if !ok || id != want {
			t.Fatalf("alias %q: want %d, got %d ok=%t", alias, want, id, ok)
		}
	}
}

func TestTeamIndexAliasWithoutCanonicalTeam(t *testing.T) {
	t.Parallel()

	idx := NewTeamIndex([]team.Team{{ID: 1, Name: "Arsenal"}})
	if _, ok := idx.Resolve("Brighton"); ok {
		t.Fatal("alias must not resolve when canonical team is absent")
	}
}

func TestPlayerIndex(t *testing.T) {
	t.Parallel()

	idx := NewPlayerIndex([]player.Player{
		{ID: 5, Name: "Bukayo Saka"},
	})

	if id, ok := idx.Resolve("Bukayo Saka"); !ok || id != 5 {
		t.Fatalf("expected exact player match, got %d ok=%t", id, ok)
	}
	if _, ok := idx.Resolve("B. Saka"); ok {
		t.Fatal("inexact player name must not resolve")
	}
}

func TestMatchKeyFromURL(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://fbref.com/en/matches/abc123de/Arsenal-Chelsea-March-1-2025": "abc123de",
		"https://fbref.com/en/matches/abc123de/":                             "abc123de",
		"/en/matches/abc123de/Arsenal-Chelsea":                               "abc123de",
		"":                                                                   "",
	}
	for url, want := range cases {
		if got := MatchKeyFromURL(url); got != want {
			t.Fatalf("url %q: want %q, got %q", url, want, got)
		}
	}
}

func TestMatchIndexResolvesAcrossURLForms(t *testing.T) {
	t.Parallel()

	idx := NewMatchIndex([]fixture.Match{
		{ID: 42, ReportURL: "https://fbref.com/en/matches/abc123de/Arsenal-Chelsea-March-1-2025"},
	})

	id, ok := idx.Resolve("/en/matches/abc123de/Arsenal-Chelsea")
	if !ok || id != 42 {
		t.Fatalf("expected match to resolve by short id, got %d ok=%t", id, ok)
	}
	if _, ok := idx.Resolve("/en/matches/ffffffff/Other"); ok {
		t.Fatal("unknown match id must not resolve")
	}
}

func TestNormalizeSourceTeamName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Manchester UtdTable":    "Manchester United",
		"Man Utd":                "Manchester United",
		"West Ham Utd":           "West Ham",
		"Brighton & Hove Albion": "Brighton and Hove Albion",
		"Wolves":                 "Wolverhampton Wanderers",
		"Newcastle Utd":          "Newcastle United",
		"Sheffield Utd":          "Sheffield United",
		"Arsenal":                "Arsenal",
	}
	for in, want := range cases {
		if got := NormalizeSourceTeamName(in); got != want {
			t.Fatalf("normalize %q: want %q, got %q", in, want, got)
		}
	}
}
