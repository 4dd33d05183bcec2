package usecase

import (
	"context"
	"testing"

	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/platform/logging"
	"github.com/fplstats/cleansheets/internal/snapshot"
)

func TestXGUpdateService_Update_DerivesOpponentBasedFlags(t *testing.T) {
	t.Parallel()

	matches := &stubMatchRepository{matches: []fixture.Match{
		{ID: 1, SeasonID: 1, ReportURL: "https://fbref.com/en/matches/abc123de/Arsenal-Wolves"},
	}}
	svc := NewXGUpdateService(matches, 0.7, logging.NewNop())

	summary, err := svc.Update(context.Background(), map[string]snapshot.MatchNpxG{
		"https://fbref.com/en/matches/abc123de/Arsenal-Wolves": {
			HomeTeamNpxG: "1.9",
			AwayTeamNpxG: "0.7",
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if summary.Updated != 1 {
		t.Fatalf("expected 1 updated, got %d", summary.Updated)
	}

	m := matches.matches[0]
	// Home concedes 0.7 which is at the threshold, so home is expected
	// clean; away faces 1.9 and is not.
	if !m.HomeExpectedClean {
		t.Fatal("home side should be expected clean at threshold")
	}
	if m.AwayExpectedClean {
		t.Fatal("away side should not be expected clean")
	}
	if m.HomeNpxG == nil || *m.HomeNpxG != 1.9 || m.AwayNpxG == nil || *m.AwayNpxG != 0.7 {
		t.Fatalf("npxg not stored: %+v", m)
	}
}

func TestXGUpdateService_Update_ExpandsRelativeURLs(t *testing.T) {
	t.Parallel()

	matches := &stubMatchRepository{matches: []fixture.Match{
		{ID: 1, SeasonID: 1, ReportURL: "https://fbref.com/en/matches/abc123de/Arsenal-Wolves"},
	}}
	svc := NewXGUpdateService(matches, 0.7, logging.NewNop())

	summary, err := svc.Update(context.Background(), map[string]snapshot.MatchNpxG{
		"/en/matches/abc123de/Arsenal-Wolves": {HomeTeamNpxG: "0.3", AwayTeamNpxG: "0.2"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if summary.Updated != 1 {
		t.Fatalf("expected relative URL to match stored absolute URL, got %+v", summary)
	}
}

func TestXGUpdateService_Update_StoreFailureDoesNotAbortRun(t *testing.T) {
	t.Parallel()

	matches := &stubMatchRepository{
		matches: []fixture.Match{
			{ID: 1, SeasonID: 1, ReportURL: "https://fbref.com/en/matches/aaaa0001/x"},
			{ID: 2, SeasonID: 1, ReportURL: "https://fbref.com/en/matches/aaaa0002/x"},
		},
		failUpdates: map[string]error{
			"https://fbref.com/en/matches/aaaa0001/x": errStubFailure,
		},
	}
	svc := NewXGUpdateService(matches, 0.7, logging.NewNop())

	summary, err := svc.Update(context.Background(), map[string]snapshot.MatchNpxG{
		"https://fbref.com/en/matches/aaaa0001/x": {HomeTeamNpxG: "1.0", AwayTeamNpxG: "0.2"},
		"https://fbref.com/en/matches/aaaa0002/x": {HomeTeamNpxG: "0.5", AwayTeamNpxG: "1.1"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if summary.Updated != 1 || summary.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if matches.matches[1].HomeNpxG == nil {
		t.Fatal("second match not updated after store failure on the first")
	}
	if summary.Diagnostics.Count() != 1 || summary.Diagnostics.Items()[0].Kind != DiagStoreFailure {
		t.Fatalf("store failure not recorded: %+v", summary.Diagnostics.Items())
	}
}

func TestXGUpdateService_Update_ReportsParseAndMissAsDiagnostics(t *testing.T) {
	t.Parallel()

	matches := &stubMatchRepository{}
	svc := NewXGUpdateService(matches, 0.7, logging.NewNop())

	summary, err := svc.Update(context.Background(), map[string]snapshot.MatchNpxG{
		"https://fbref.com/en/matches/aaaa0001/x": {HomeTeamNpxG: "n/a", AwayTeamNpxG: "0.2"},
		"https://fbref.com/en/matches/aaaa0002/x": {HomeTeamNpxG: "1.0", AwayTeamNpxG: "0.2"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if summary.Failed != 1 || summary.Unmatched != 1 || summary.Updated != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Diagnostics.Count() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", summary.Diagnostics.Count())
	}
}
