package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/domain/season"
	"github.com/fplstats/cleansheets/internal/domain/team"
	"github.com/fplstats/cleansheets/internal/platform/logging"
	"github.com/fplstats/cleansheets/internal/resolve"
	"github.com/fplstats/cleansheets/internal/snapshot"
)

// MatchImportSummary reports what one fixtures import run did.
type MatchImportSummary struct {
	SeasonID        int64
	Created         int
	SkippedExisting int
	SkippedNoReport int
	Failed          int
	Diagnostics     *Report
}

// MatchImportService loads a fixtures snapshot into the matches table.
// Seasons and teams are created on first sight; a fixture whose (season,
// home, away) pairing already exists is skipped, so reruns are idempotent
// for single-pairing seasons.
type MatchImportService struct {
	seasons season.Repository
	teams   team.Repository
	matches fixture.Repository
	logger  *logging.Logger
}

func NewMatchImportService(
	seasons season.Repository,
	teams team.Repository,
	matches fixture.Repository,
	logger *logging.Logger,
) *MatchImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchImportService{
		seasons: seasons,
		teams:   teams,
		matches: matches,
		logger:  logger,
	}
}

func (s *MatchImportService) Import(ctx context.Context, seasonLabel string, fixtures []snapshot.Fixture) (MatchImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchImportService.Import")
	defer span.End()

	seasonLabel = strings.TrimSpace(seasonLabel)
	if seasonLabel == "" {
		return MatchImportSummary{}, fmt.Errorf("%w: season label is required", ErrInvalidInput)
	}

	current, err := s.ensureSeason(ctx, seasonLabel)
	if err != nil {
		return MatchImportSummary{}, err
	}

	summary := MatchImportSummary{SeasonID: current.ID, Diagnostics: &Report{}}
	teamCache := make(map[string]team.Team)

	for _, f := range fixtures {
		reportURL := f.ReportURL()
		if reportURL == "" {
			summary.SkippedNoReport++
			continue
		}

		home, err := s.ensureTeam(ctx, teamCache, f.HomeTeam)
		if err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagResolutionFailure, f.HomeTeam, err.Error())
			continue
		}
		away, err := s.ensureTeam(ctx, teamCache, f.AwayTeam)
		if err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagResolutionFailure, f.AwayTeam, err.Error())
			continue
		}

		exists, err := s.matches.Exists(ctx, current.ID, home.ID, away.ID)
		if err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagStoreFailure, reportURL, fmt.Sprintf("check existing match: %v", err))
			continue
		}
		if exists {
			summary.SkippedExisting++
			continue
		}

		match := fixture.Match{
			SeasonID:     current.ID,
			Gameweek:     f.Gameweek,
			HomeTeamID:   home.ID,
			AwayTeamID:   away.ID,
			HomeTeamName: home.Name,
			AwayTeamName: away.Name,
			ReportURL:    reportURL,
		}
		if err := match.Validate(); err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagParseFailure, reportURL, err.Error())
			continue
		}
		if _, err := s.matches.Create(ctx, match); err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagStoreFailure, reportURL, fmt.Sprintf("create match: %v", err))
			continue
		}
		summary.Created++
	}

	s.logger.InfoContext(ctx, "fixtures import finished",
		"season", seasonLabel,
		"created", summary.Created,
		"skipped_existing", summary.SkippedExisting,
		"skipped_no_report", summary.SkippedNoReport,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (s *MatchImportService) ensureSeason(ctx context.Context, label string) (season.Season, error) {
	current, found, err := s.seasons.GetByLabel(ctx, label)
	if err != nil {
		return season.Season{}, fmt.Errorf("load season %q: %w", label, err)
	}
	if found {
		return current, nil
	}
	created, err := s.seasons.Create(ctx, label)
	if err != nil {
		return season.Season{}, fmt.Errorf("create season %q: %w", label, err)
	}
	s.logger.InfoContext(ctx, "season created", "season", label, "season_id", created.ID)
	return created, nil
}

func (s *MatchImportService) ensureTeam(ctx context.Context, cache map[string]team.Team, rawName string) (team.Team, error) {
	name := resolve.NormalizeSourceTeamName(rawName)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: empty team name", ErrInvalidInput)
	}
	if cached, ok := cache[name]; ok {
		return cached, nil
	}

	existing, found, err := s.teams.GetByName(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("load team %q: %w", name, err)
	}
	if found {
		cache[name] = existing
		return existing, nil
	}

	created, err := s.teams.Create(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team %q: %w", name, err)
	}
	s.logger.DebugContext(ctx, "team created", "team", name, "team_id", created.ID)
	cache[name] = created
	return created, nil
}
