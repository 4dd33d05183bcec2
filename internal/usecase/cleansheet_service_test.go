package usecase

import (
	"context"
	"testing"

	"github.com/fplstats/cleansheets/internal/domain/appearance"
	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/platform/logging"
)

func TestCleanSheetService_Propagate_MarksEligibleAppearances(t *testing.T) {
	t.Parallel()

	seasons := newStubSeasonRepository("2024-2025")
	matches := &stubMatchRepository{matches: []fixture.Match{
		{ID: 7, SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeExpectedClean: true, ReportURL: "u"},
	}}
	appearances := &stubAppearanceRepository{
		rows: []appearance.Appearance{
			// Started the full match for the clean side.
			{MatchID: 7, TeamID: 1, PlayerID: 1, Started: true, Minutes: intPtr(90)},
			// Started but subbed off before the eligibility bar.
			{MatchID: 7, TeamID: 1, PlayerID: 2, Started: true, Minutes: intPtr(45)},
			// Came off the bench.
			{MatchID: 7, TeamID: 1, PlayerID: 3, Started: false, Minutes: intPtr(90)},
			// Wrong side.
			{MatchID: 7, TeamID: 2, PlayerID: 4, Started: true, Minutes: intPtr(90)},
		},
		rowSeason: map[int]int64{0: 1, 1: 1, 2: 1, 3: 1},
	}
	svc := NewCleanSheetService(seasons, matches, appearances, 0.5, logging.NewNop())

	summary, err := svc.Propagate(context.Background(), "2024-2025")
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	if summary.MatchesFlagged != 1 {
		t.Fatalf("expected 1 flagged side, got %d", summary.MatchesFlagged)
	}
	if summary.AppearancesClean != 1 {
		t.Fatalf("expected 1 appearance marked clean, got %d", summary.AppearancesClean)
	}
	if !appearances.rows[0].ExpectedClean {
		t.Fatal("eligible starter not marked")
	}
	if appearances.rows[1].ExpectedClean || appearances.rows[2].ExpectedClean || appearances.rows[3].ExpectedClean {
		t.Fatal("ineligible rows must stay unmarked")
	}
}

func TestCleanSheetService_Propagate_NonBlankCombinesCleanAndXGI(t *testing.T) {
	t.Parallel()

	seasons := newStubSeasonRepository("2024-2025")
	matches := &stubMatchRepository{matches: []fixture.Match{
		{ID: 7, SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeExpectedClean: true, ReportURL: "u"},
	}}
	appearances := &stubAppearanceRepository{
		rows: []appearance.Appearance{
			// Clean side starter: non-blank via the clean flag.
			{MatchID: 7, TeamID: 1, PlayerID: 1, Started: true, Minutes: intPtr(90)},
			// Attacker on the conceding side: non-blank via xGI.
			{MatchID: 7, TeamID: 2, PlayerID: 2, Started: true, Minutes: intPtr(90), ExpectedGoalInvolvement: 0.8},
			// Neither clean nor involved.
			{MatchID: 7, TeamID: 2, PlayerID: 3, Started: true, Minutes: intPtr(90), ExpectedGoalInvolvement: 0.1},
		},
		rowSeason: map[int]int64{0: 1, 1: 1, 2: 1},
	}
	svc := NewCleanSheetService(seasons, matches, appearances, 0.5, logging.NewNop())

	summary, err := svc.Propagate(context.Background(), "2024-2025")
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	if summary.AppearancesNonBlank != 2 {
		t.Fatalf("expected 2 non-blanks, got %d", summary.AppearancesNonBlank)
	}
	if !appearances.rows[0].ExpectedNonBlank || !appearances.rows[1].ExpectedNonBlank {
		t.Fatal("expected non-blank rows not marked")
	}
	if appearances.rows[2].ExpectedNonBlank {
		t.Fatal("low-involvement row must stay blank")
	}
}

func TestCleanSheetService_Propagate_StoreFailureDoesNotAbortRun(t *testing.T) {
	t.Parallel()

	seasons := newStubSeasonRepository("2024-2025")
	matches := &stubMatchRepository{matches: []fixture.Match{
		{ID: 7, SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeExpectedClean: true, ReportURL: "u7"},
		{ID: 8, SeasonID: 1, HomeTeamID: 3, AwayTeamID: 4, HomeExpectedClean: true, ReportURL: "u8"},
	}}
	appearances := &stubAppearanceRepository{
		rows: []appearance.Appearance{
			{MatchID: 7, TeamID: 1, PlayerID: 1, Started: true, Minutes: intPtr(90)},
			{MatchID: 8, TeamID: 3, PlayerID: 2, Started: true, Minutes: intPtr(90)},
		},
		rowSeason: map[int]int64{0: 1, 1: 1},
		failClean: map[int64]error{7: errStubFailure},
	}
	svc := NewCleanSheetService(seasons, matches, appearances, 0.5, logging.NewNop())

	summary, err := svc.Propagate(context.Background(), "2024-2025")
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	if summary.Failed != 1 || summary.MatchesFlagged != 1 || summary.AppearancesClean != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if !appearances.rows[1].ExpectedClean {
		t.Fatal("second match not propagated after store failure on the first")
	}
	if summary.AppearancesNonBlank != 1 {
		t.Fatalf("non-blank step skipped: %+v", summary)
	}
	if summary.Diagnostics.Count() != 1 || summary.Diagnostics.Items()[0].Kind != DiagStoreFailure {
		t.Fatalf("store failure not recorded: %+v", summary.Diagnostics.Items())
	}
}

func TestCleanSheetService_Propagate_RerunIsIdempotent(t *testing.T) {
	t.Parallel()

	seasons := newStubSeasonRepository("2024-2025")
	matches := &stubMatchRepository{matches: []fixture.Match{
		{ID: 7, SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeExpectedClean: true, AwayExpectedClean: true, ReportURL: "u"},
	}}
	appearances := &stubAppearanceRepository{
		rows: []appearance.Appearance{
			{MatchID: 7, TeamID: 1, PlayerID: 1, Started: true, Minutes: intPtr(90)},
			{MatchID: 7, TeamID: 2, PlayerID: 2, Started: true, Minutes: intPtr(61)},
		},
		rowSeason: map[int]int64{0: 1, 1: 1},
	}
	svc := NewCleanSheetService(seasons, matches, appearances, 0.5, logging.NewNop())

	first, err := svc.Propagate(context.Background(), "2024-2025")
	if err != nil {
		t.Fatalf("first propagate: %v", err)
	}
	if first.AppearancesClean != 2 || first.MatchesFlagged != 2 {
		t.Fatalf("unexpected first run: %+v", first)
	}

	second, err := svc.Propagate(context.Background(), "2024-2025")
	if err != nil {
		t.Fatalf("second propagate: %v", err)
	}
	if second.AppearancesClean != 0 || second.AppearancesNonBlank != 0 {
		t.Fatalf("rerun touched rows again: %+v", second)
	}
}
