package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fplstats/cleansheets/internal/domain/appearance"
	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/domain/season"
	"github.com/fplstats/cleansheets/internal/platform/logging"
)

// DefaultNonBlankXGIThreshold is the expected goal involvement at or above
// which an appearance counts as an expected non-blank even without a clean
// sheet.
const DefaultNonBlankXGIThreshold = 0.5

// CleanSheetPropagationSummary reports what one propagation run did.
type CleanSheetPropagationSummary struct {
	SeasonID            int64
	MatchesFlagged      int
	AppearancesClean    int64
	AppearancesNonBlank int64
	Failed              int
	Diagnostics         *Report
}

// CleanSheetService pushes match-level expected-clean flags down to the
// eligible appearances of the flagged side, then derives the non-blank
// flag across the season. Both updates are idempotent, so the job can be
// rerun after late snapshot corrections.
type CleanSheetService struct {
	seasons     season.Repository
	matches     fixture.Repository
	appearances appearance.Repository
	minMinutes  int
	minXGI      float64
	logger      *logging.Logger
}

func NewCleanSheetService(
	seasons season.Repository,
	matches fixture.Repository,
	appearances appearance.Repository,
	minXGI float64,
	logger *logging.Logger,
) *CleanSheetService {
	if minXGI <= 0 {
		minXGI = DefaultNonBlankXGIThreshold
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CleanSheetService{
		seasons:     seasons,
		matches:     matches,
		appearances: appearances,
		minMinutes:  appearance.MinMinutesForCleanSheet,
		minXGI:      minXGI,
		logger:      logger,
	}
}

func (s *CleanSheetService) Propagate(ctx context.Context, seasonLabel string) (CleanSheetPropagationSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "CleanSheetService.Propagate")
	defer span.End()

	seasonLabel = strings.TrimSpace(seasonLabel)
	if seasonLabel == "" {
		return CleanSheetPropagationSummary{}, fmt.Errorf("%w: season label is required", ErrInvalidInput)
	}
	current, found, err := s.seasons.GetByLabel(ctx, seasonLabel)
	if err != nil {
		return CleanSheetPropagationSummary{}, fmt.Errorf("load season %q: %w", seasonLabel, err)
	}
	if !found {
		return CleanSheetPropagationSummary{}, fmt.Errorf("%w: season %q", ErrNotFound, seasonLabel)
	}

	matches, err := s.matches.ListBySeason(ctx, current.ID)
	if err != nil {
		return CleanSheetPropagationSummary{}, fmt.Errorf("list season matches: %w", err)
	}

	summary := CleanSheetPropagationSummary{SeasonID: current.ID, Diagnostics: &Report{}}
	for _, m := range matches {
		if m.HomeExpectedClean {
			rows, err := s.appearances.MarkExpectedClean(ctx, m.ID, m.HomeTeamID, s.minMinutes)
			if err != nil {
				summary.Failed++
				summary.Diagnostics.Add(DiagStoreFailure, m.ReportURL, fmt.Sprintf("mark clean (home): %v", err))
			} else {
				summary.MatchesFlagged++
				summary.AppearancesClean += rows
			}
		}
		if m.AwayExpectedClean {
			rows, err := s.appearances.MarkExpectedClean(ctx, m.ID, m.AwayTeamID, s.minMinutes)
			if err != nil {
				summary.Failed++
				summary.Diagnostics.Add(DiagStoreFailure, m.ReportURL, fmt.Sprintf("mark clean (away): %v", err))
			} else {
				summary.MatchesFlagged++
				summary.AppearancesClean += rows
			}
		}
	}

	nonBlank, err := s.appearances.MarkExpectedNonBlank(ctx, current.ID, s.minXGI)
	if err != nil {
		return summary, fmt.Errorf("mark non-blank: %w", err)
	}
	summary.AppearancesNonBlank = nonBlank

	s.logger.InfoContext(ctx, "clean sheet propagation finished",
		"season", seasonLabel,
		"matches_flagged", summary.MatchesFlagged,
		"appearances_clean", summary.AppearancesClean,
		"appearances_non_blank", summary.AppearancesNonBlank,
		"failed", summary.Failed,
	)
	return summary, nil
}
