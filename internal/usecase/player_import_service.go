package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/fplstats/cleansheets/internal/domain/player"
	"github.com/fplstats/cleansheets/internal/domain/team"
	"github.com/fplstats/cleansheets/internal/platform/logging"
	"github.com/fplstats/cleansheets/internal/resolve"
	"github.com/fplstats/cleansheets/internal/snapshot"
)

// PlayerImportSummary reports what one player import run did.
type PlayerImportSummary struct {
	Created  int
	Existing int
	Failed   int
	// Diagnostics lists rows whose team could not be resolved.
	Diagnostics *Report
}

// PlayerImportService creates player rows from an appearance snapshot, one
// per distinct (player, team) name pair. Teams are not created here: a
// team unknown at this point means the fixtures were never imported, which
// is worth surfacing rather than papering over.
type PlayerImportService struct {
	teams   team.Repository
	players player.Repository
	logger  *logging.Logger
}

func NewPlayerImportService(teams team.Repository, players player.Repository, logger *logging.Logger) *PlayerImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerImportService{teams: teams, players: players, logger: logger}
}

func (s *PlayerImportService) Import(ctx context.Context, rows []snapshot.Appearance) (PlayerImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerImportService.Import")
	defer span.End()

	existing, err := s.players.List(ctx)
	if err != nil {
		return PlayerImportSummary{}, fmt.Errorf("list players: %w", err)
	}
	known := resolve.NewPlayerIndex(existing)

	type pair struct{ playerName, teamName string }
	seen := make(map[pair]struct{}, len(rows))
	pairs := make([]pair, 0, len(rows))
	for _, row := range rows {
		p := pair{row.PlayerName, resolve.NormalizeSourceTeamName(row.TeamName)}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].playerName != pairs[j].playerName {
			return pairs[i].playerName < pairs[j].playerName
		}
		return pairs[i].teamName < pairs[j].teamName
	})

	summary := PlayerImportSummary{Diagnostics: &Report{}}
	teamCache := make(map[string]team.Team)

	for _, p := range pairs {
		if _, ok := known.Resolve(p.playerName); ok {
			summary.Existing++
			continue
		}

		club, ok := teamCache[p.teamName]
		if !ok {
			loaded, found, err := s.teams.GetByName(ctx, p.teamName)
			if err != nil {
				return summary, fmt.Errorf("load team %q: %w", p.teamName, err)
			}
			if !found {
				summary.Failed++
				summary.Diagnostics.Add(DiagResolutionFailure, p.teamName, "team not found, import fixtures first")
				continue
			}
			club = loaded
			teamCache[p.teamName] = club
		}

		created, err := s.players.Create(ctx, player.Player{
			Name:            p.playerName,
			TeamID:          club.ID,
			FantasyPosition: player.FantasyUnknown,
		})
		if err != nil {
			return summary, fmt.Errorf("create player %q: %w", p.playerName, err)
		}
		summary.Created++
		s.logger.DebugContext(ctx, "player created", "player", created.Name, "team", club.Name)
	}

	s.logger.InfoContext(ctx, "player import finished",
		"created", summary.Created,
		"existing", summary.Existing,
		"failed", summary.Failed,
	)
	return summary, nil
}
