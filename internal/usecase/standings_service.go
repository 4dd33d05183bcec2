package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/domain/season"
	"github.com/fplstats/cleansheets/internal/domain/standings"
	"github.com/fplstats/cleansheets/internal/platform/logging"
)

// StandingsSummary reports what one standings computation did.
type StandingsSummary struct {
	SeasonID int64
	Teams    int
	Rows     []standings.Row
}

// StandingsService recomputes the expected-clean-sheet table for a season
// from match flags alone and replaces the stored rows wholesale. Every
// team that appears in a season match is present, zero totals included.
type StandingsService struct {
	seasons   season.Repository
	matches   fixture.Repository
	standings standings.Repository
	logger    *logging.Logger
}

func NewStandingsService(
	seasons season.Repository,
	matches fixture.Repository,
	standingsRepo standings.Repository,
	logger *logging.Logger,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		seasons:   seasons,
		matches:   matches,
		standings: standingsRepo,
		logger:    logger,
	}
}

func (s *StandingsService) Compute(ctx context.Context, seasonLabel string) (StandingsSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.Compute")
	defer span.End()

	seasonLabel = strings.TrimSpace(seasonLabel)
	if seasonLabel == "" {
		return StandingsSummary{}, fmt.Errorf("%w: season label is required", ErrInvalidInput)
	}
	current, found, err := s.seasons.GetByLabel(ctx, seasonLabel)
	if err != nil {
		return StandingsSummary{}, fmt.Errorf("load season %q: %w", seasonLabel, err)
	}
	if !found {
		return StandingsSummary{}, fmt.Errorf("%w: season %q", ErrNotFound, seasonLabel)
	}

	matches, err := s.matches.ListBySeason(ctx, current.ID)
	if err != nil {
		return StandingsSummary{}, fmt.Errorf("list season matches: %w", err)
	}

	totals := make(map[int64]int)
	names := make(map[int64]string)
	for _, m := range matches {
		names[m.HomeTeamID] = m.HomeTeamName
		names[m.AwayTeamID] = m.AwayTeamName
		if _, ok := totals[m.HomeTeamID]; !ok {
			totals[m.HomeTeamID] = 0
		}
		if _, ok := totals[m.AwayTeamID]; !ok {
			totals[m.AwayTeamID] = 0
		}
		if m.HomeExpectedClean {
			totals[m.HomeTeamID]++
		}
		if m.AwayExpectedClean {
			totals[m.AwayTeamID]++
		}
	}

	rows := make([]standings.Row, 0, len(totals))
	for teamID, total := range totals {
		rows = append(rows, standings.Row{
			SeasonID:            current.ID,
			TeamID:              teamID,
			TeamName:            names[teamID],
			ExpectedCleanSheets: total,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ExpectedCleanSheets != rows[j].ExpectedCleanSheets {
			return rows[i].ExpectedCleanSheets > rows[j].ExpectedCleanSheets
		}
		return rows[i].TeamName < rows[j].TeamName
	})

	if err := s.standings.Replace(ctx, current.ID, rows); err != nil {
		return StandingsSummary{}, fmt.Errorf("replace standings: %w", err)
	}

	s.logger.InfoContext(ctx, "standings computed",
		"season", seasonLabel,
		"teams", len(rows),
	)
	return StandingsSummary{SeasonID: current.ID, Teams: len(rows), Rows: rows}, nil
}
