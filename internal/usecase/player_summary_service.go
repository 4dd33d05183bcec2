package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fplstats/cleansheets/internal/domain/appearance"
	"github.com/fplstats/cleansheets/internal/domain/player"
	"github.com/fplstats/cleansheets/internal/domain/playersummary"
	"github.com/fplstats/cleansheets/internal/domain/season"
	"github.com/fplstats/cleansheets/internal/platform/logging"
)

// PlayerSummarySummary reports what one player summary computation did.
type PlayerSummarySummary struct {
	SeasonID int64
	Players  int
	Rows     []playersummary.Summary
}

// PlayerSummaryService aggregates a season's appearances into one line per
// player and replaces the stored summaries wholesale. Ratio denominators
// of zero yield a ratio of zero rather than an error.
type PlayerSummaryService struct {
	seasons     season.Repository
	players     player.Repository
	appearances appearance.Repository
	summaries   playersummary.Repository
	logger      *logging.Logger
}

func NewPlayerSummaryService(
	seasons season.Repository,
	players player.Repository,
	appearances appearance.Repository,
	summaries playersummary.Repository,
	logger *logging.Logger,
) *PlayerSummaryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerSummaryService{
		seasons:     seasons,
		players:     players,
		appearances: appearances,
		summaries:   summaries,
		logger:      logger,
	}
}

func (s *PlayerSummaryService) Compute(ctx context.Context, seasonLabel string) (PlayerSummarySummary, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerSummaryService.Compute")
	defer span.End()

	seasonLabel = strings.TrimSpace(seasonLabel)
	if seasonLabel == "" {
		return PlayerSummarySummary{}, fmt.Errorf("%w: season label is required", ErrInvalidInput)
	}
	current, found, err := s.seasons.GetByLabel(ctx, seasonLabel)
	if err != nil {
		return PlayerSummarySummary{}, fmt.Errorf("load season %q: %w", seasonLabel, err)
	}
	if !found {
		return PlayerSummarySummary{}, fmt.Errorf("%w: season %q", ErrNotFound, seasonLabel)
	}

	rows, err := s.appearances.ListBySeason(ctx, current.ID)
	if err != nil {
		return PlayerSummarySummary{}, fmt.Errorf("list season appearances: %w", err)
	}
	ids := make([]int64, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	for _, a := range rows {
		if _, ok := seen[a.PlayerID]; ok {
			continue
		}
		seen[a.PlayerID] = struct{}{}
		ids = append(ids, a.PlayerID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	seasonPlayers, err := s.players.ListByIDs(ctx, ids)
	if err != nil {
		return PlayerSummarySummary{}, fmt.Errorf("list season players: %w", err)
	}
	names := make(map[int64]string, len(seasonPlayers))
	for _, p := range seasonPlayers {
		names[p.ID] = p.Name
	}

	byPlayer := make(map[int64]*playersummary.Summary)
	for _, a := range rows {
		line, ok := byPlayer[a.PlayerID]
		if !ok {
			line = &playersummary.Summary{
				SeasonID:   current.ID,
				PlayerID:   a.PlayerID,
				PlayerName: names[a.PlayerID],
			}
			byPlayer[a.PlayerID] = line
		}
		if a.InSquad {
			line.TimesInSquad++
		}
		if a.Started {
			line.TimesStarted++
		}
		if a.Minutes != nil {
			line.TotalMinutes += *a.Minutes
		}
		if a.ExpectedNonBlank {
			line.NonBlanks++
		}
	}

	summaries := make([]playersummary.Summary, 0, len(byPlayer))
	for _, line := range byPlayer {
		if line.TimesInSquad > 0 {
			line.NonBlanksPerSquad = float64(line.NonBlanks) / float64(line.TimesInSquad)
		}
		if line.TimesStarted > 0 {
			line.NonBlanksPerStart = float64(line.NonBlanks) / float64(line.TimesStarted)
		}
		summaries = append(summaries, *line)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].NonBlanks != summaries[j].NonBlanks {
			return summaries[i].NonBlanks > summaries[j].NonBlanks
		}
		return summaries[i].PlayerName < summaries[j].PlayerName
	})

	if err := s.summaries.Replace(ctx, current.ID, summaries); err != nil {
		return PlayerSummarySummary{}, fmt.Errorf("replace player summaries: %w", err)
	}

	s.logger.InfoContext(ctx, "player summaries computed",
		"season", seasonLabel,
		"players", len(summaries),
	)
	return PlayerSummarySummary{SeasonID: current.ID, Players: len(summaries), Rows: summaries}, nil
}
