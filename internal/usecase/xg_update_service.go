package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/platform/logging"
	"github.com/fplstats/cleansheets/internal/snapshot"
)

// DefaultCleanSheetThreshold is the npxG level at or below which the
// opposing side is expected to have kept a clean sheet.
const DefaultCleanSheetThreshold = 0.7

// XGUpdateSummary reports what one expected-goals update run did.
type XGUpdateSummary struct {
	Updated     int
	Unmatched   int
	Failed      int
	Diagnostics *Report
}

// XGUpdateService writes scraped per-match npxG onto stored matches and
// derives each side's expected-clean flag. A side is expected clean when
// the OPPONENT's npxG is at or below the threshold.
type XGUpdateService struct {
	matches   fixture.Repository
	threshold float64
	logger    *logging.Logger
}

func NewXGUpdateService(matches fixture.Repository, threshold float64, logger *logging.Logger) *XGUpdateService {
	if threshold <= 0 {
		threshold = DefaultCleanSheetThreshold
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &XGUpdateService{matches: matches, threshold: threshold, logger: logger}
}

func (s *XGUpdateService) Update(ctx context.Context, byURL map[string]snapshot.MatchNpxG) (XGUpdateSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "XGUpdateService.Update")
	defer span.End()

	summary := XGUpdateSummary{Diagnostics: &Report{}}

	// Stable order keeps diagnostics reproducible across runs.
	urls := make([]string, 0, len(byURL))
	for url := range byURL {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	for _, url := range urls {
		entry := byURL[url]

		homeNpxG, err := parseNpxG(entry.HomeTeamNpxG)
		if err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagParseFailure, url, fmt.Sprintf("home npxg: %v", err))
			continue
		}
		awayNpxG, err := parseNpxG(entry.AwayTeamNpxG)
		if err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagParseFailure, url, fmt.Sprintf("away npxg: %v", err))
			continue
		}

		homeClean := awayNpxG <= s.threshold
		awayClean := homeNpxG <= s.threshold

		rows, err := s.matches.UpdateExpectedGoals(ctx, snapshot.AbsoluteReportURL(url), homeNpxG, awayNpxG, homeClean, awayClean)
		if err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagStoreFailure, url, err.Error())
			continue
		}
		if rows == 0 {
			summary.Unmatched++
			summary.Diagnostics.Add(DiagMissingMatch, url, "no stored match with this report URL")
			continue
		}
		summary.Updated++
	}

	s.logger.InfoContext(ctx, "expected goals update finished",
		"updated", summary.Updated,
		"unmatched", summary.Unmatched,
		"failed", summary.Failed,
		"threshold", s.threshold,
	)
	return summary, nil
}

func parseNpxG(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %q is not finite", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("value %q is negative", raw)
	}
	return v, nil
}
