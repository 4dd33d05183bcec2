package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/fplstats/cleansheets/internal/domain/appearance"
	"github.com/fplstats/cleansheets/internal/domain/fixture"
	"github.com/fplstats/cleansheets/internal/domain/player"
	"github.com/fplstats/cleansheets/internal/domain/season"
	"github.com/fplstats/cleansheets/internal/domain/team"
	"github.com/fplstats/cleansheets/internal/platform/logging"
	"github.com/fplstats/cleansheets/internal/resolve"
	"github.com/fplstats/cleansheets/internal/snapshot"
)

// DefaultImportBatchSize bounds one appearance insert statement.
const DefaultImportBatchSize = 100

// AppearanceImportSummary reports what one appearance import run did.
type AppearanceImportSummary struct {
	SeasonID int64
	Inserted int
	Skipped  int
	Failed   int
	Batches  int
	// Diagnostics lists skipped rows and failed batches.
	Diagnostics *Report
}

// AppearanceImportService loads an appearance snapshot into per-match
// player rows. Every row is resolved against stored matches, teams and
// players before insert; rows that fail resolution are skipped and
// reported, never guessed at. Inserts run in fixed-size batches and a
// failed batch fails as a unit.
type AppearanceImportService struct {
	seasons     season.Repository
	teams       team.Repository
	players     player.Repository
	matches     fixture.Repository
	appearances appearance.Repository
	batchSize   int
	logger      *logging.Logger
}

func NewAppearanceImportService(
	seasons season.Repository,
	teams team.Repository,
	players player.Repository,
	matches fixture.Repository,
	appearances appearance.Repository,
	batchSize int,
	logger *logging.Logger,
) *AppearanceImportService {
	if batchSize <= 0 {
		batchSize = DefaultImportBatchSize
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AppearanceImportService{
		seasons:     seasons,
		teams:       teams,
		players:     players,
		matches:     matches,
		appearances: appearances,
		batchSize:   batchSize,
		logger:      logger,
	}
}

func (s *AppearanceImportService) Import(ctx context.Context, seasonLabel string, rows []snapshot.Appearance) (AppearanceImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "AppearanceImportService.Import")
	defer span.End()

	seasonLabel = strings.TrimSpace(seasonLabel)
	if seasonLabel == "" {
		return AppearanceImportSummary{}, fmt.Errorf("%w: season label is required", ErrInvalidInput)
	}
	current, found, err := s.seasons.GetByLabel(ctx, seasonLabel)
	if err != nil {
		return AppearanceImportSummary{}, fmt.Errorf("load season %q: %w", seasonLabel, err)
	}
	if !found {
		return AppearanceImportSummary{}, fmt.Errorf("%w: season %q, import fixtures first", ErrNotFound, seasonLabel)
	}

	teamIdx, playerIdx, matchIdx, err := s.loadIndexes(ctx, current.ID)
	if err != nil {
		return AppearanceImportSummary{SeasonID: current.ID}, err
	}

	summary := AppearanceImportSummary{SeasonID: current.ID, Diagnostics: &Report{}}

	pending := make([]appearance.Appearance, 0, s.batchSize)
	for _, row := range rows {
		item, ok := s.resolveRow(row, teamIdx, playerIdx, matchIdx, summary.Diagnostics)
		if !ok {
			summary.Skipped++
			continue
		}
		pending = append(pending, item)
		if len(pending) >= s.batchSize {
			s.flush(ctx, pending, &summary)
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		s.flush(ctx, pending, &summary)
	}

	s.logger.InfoContext(ctx, "appearance import finished",
		"season", seasonLabel,
		"inserted", summary.Inserted,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"batches", summary.Batches,
	)
	return summary, nil
}

// loadIndexes preloads the three lookup tables concurrently; the import
// itself then runs entirely against memory.
func (s *AppearanceImportService) loadIndexes(ctx context.Context, seasonID int64) (*resolve.TeamIndex, *resolve.PlayerIndex, *resolve.MatchIndex, error) {
	var (
		teams      []team.Team
		players    []player.Player
		matches    []fixture.Match
		teamErr    error
		playerErr  error
		matchesErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		teams, teamErr = s.teams.List(ctx)
	})
	wg.Go(func() {
		players, playerErr = s.players.List(ctx)
	})
	wg.Go(func() {
		matches, matchesErr = s.matches.ListBySeason(ctx, seasonID)
	})
	wg.Wait()

	if teamErr != nil {
		return nil, nil, nil, fmt.Errorf("list teams: %w", teamErr)
	}
	if playerErr != nil {
		return nil, nil, nil, fmt.Errorf("list players: %w", playerErr)
	}
	if matchesErr != nil {
		return nil, nil, nil, fmt.Errorf("list season matches: %w", matchesErr)
	}
	return resolve.NewTeamIndex(teams), resolve.NewPlayerIndex(players), resolve.NewMatchIndex(matches), nil
}

func (s *AppearanceImportService) resolveRow(
	row snapshot.Appearance,
	teamIdx *resolve.TeamIndex,
	playerIdx *resolve.PlayerIndex,
	matchIdx *resolve.MatchIndex,
	diags *Report,
) (appearance.Appearance, bool) {
	matchKey := strings.TrimSpace(row.MatchID)
	if matchKey == "" {
		matchKey = resolve.MatchKeyFromURL(row.MatchURL)
	}
	matchID, ok := matchIdx.ResolveKey(matchKey)
	if !ok {
		diags.Add(DiagMissingMatch, row.MatchURL, "no stored match for report URL")
		return appearance.Appearance{}, false
	}

	teamName := resolve.NormalizeSourceTeamName(row.TeamName)
	teamID, ok := teamIdx.Resolve(teamName)
	if !ok {
		diags.Add(DiagResolutionFailure, row.TeamName, "unknown team")
		return appearance.Appearance{}, false
	}

	playerID, ok := playerIdx.Resolve(row.PlayerName)
	if !ok {
		diags.Add(DiagResolutionFailure, row.PlayerName, "unknown player")
		return appearance.Appearance{}, false
	}

	var npxg, xag float64
	if row.NpxG != nil {
		npxg = *row.NpxG
	}
	if row.XAG != nil {
		xag = *row.XAG
	}

	item := appearance.Appearance{
		MatchID:                 matchID,
		TeamID:                  teamID,
		PlayerID:                playerID,
		InSquad:                 row.InSquad,
		Started:                 row.Started,
		Minutes:                 row.Minutes.Ptr(),
		NpxG:                    npxg,
		XAG:                     xag,
		ExpectedGoalInvolvement: npxg + xag,
		FantasyPosition:         string(player.FantasyUnknown),
	}
	if err := item.Validate(); err != nil {
		diags.Add(DiagParseFailure, row.PlayerName, err.Error())
		return appearance.Appearance{}, false
	}
	return item, true
}

func (s *AppearanceImportService) flush(ctx context.Context, batch []appearance.Appearance, summary *AppearanceImportSummary) {
	summary.Batches++
	if err := s.appearances.BulkInsert(ctx, batch); err != nil {
		summary.Failed += len(batch)
		summary.Diagnostics.Add(DiagBatchInsertFailure, fmt.Sprintf("batch %d", summary.Batches), err.Error())
		s.logger.ErrorContext(ctx, "appearance batch insert failed",
			"batch", summary.Batches,
			"size", len(batch),
			"error", err.Error(),
		)
		return
	}
	summary.Inserted += len(batch)
}
