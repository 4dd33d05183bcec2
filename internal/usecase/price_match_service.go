package usecase

import (
	"context"
	"fmt"

	"github.com/fplstats/cleansheets/internal/domain/player"
	"github.com/fplstats/cleansheets/internal/platform/logging"
	"github.com/fplstats/cleansheets/internal/resolve"
	"github.com/fplstats/cleansheets/internal/snapshot"
)

// PriceMatchSummary reports what one pricing run did.
type PriceMatchSummary struct {
	Matched     int
	Unmatched   int
	Failed      int
	Diagnostics *Report
}

// PriceMatchService joins the fantasy pricing feed onto stored players by
// name variants and writes position and price onto the first stored player
// the variants accept. Unmatched feed rows are reported, not created.
type PriceMatchService struct {
	players player.Repository
	logger  *logging.Logger
}

func NewPriceMatchService(players player.Repository, logger *logging.Logger) *PriceMatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PriceMatchService{players: players, logger: logger}
}

func (s *PriceMatchService) Match(ctx context.Context, prices []snapshot.PlayerPrice) (PriceMatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "PriceMatchService.Match")
	defer span.End()

	stored, err := s.players.List(ctx)
	if err != nil {
		return PriceMatchSummary{}, fmt.Errorf("list players: %w", err)
	}

	summary := PriceMatchSummary{Diagnostics: &Report{}}
	for _, row := range prices {
		found, ok := resolve.FindPlayer(stored, row.FirstName, row.SecondName)
		if !ok {
			summary.Unmatched++
			summary.Diagnostics.Add(DiagResolutionFailure, row.FirstName+" "+row.SecondName, "no stored player accepted the name variants")
			continue
		}

		position, fantasyPosition := positionFromElementType(row.ElementType)
		if err := s.players.UpdatePricing(ctx, found.ID, position, fantasyPosition, row.Price()); err != nil {
			summary.Failed++
			summary.Diagnostics.Add(DiagStoreFailure, found.Name, fmt.Sprintf("update pricing: %v", err))
			continue
		}
		summary.Matched++
	}

	s.logger.InfoContext(ctx, "pricing feed matched",
		"matched", summary.Matched,
		"unmatched", summary.Unmatched,
		"failed", summary.Failed,
	)
	return summary, nil
}

func positionFromElementType(elementType string) (string, player.FantasyPosition) {
	switch elementType {
	case "GK":
		return "Goalkeeper", player.FantasyGoalkeeper
	case "DEF":
		return "Defender", player.FantasyDefender
	case "MID":
		return "Midfielder", player.FantasyMidfielder
	case "FWD":
		return "Forward", player.FantasyForward
	default:
		return "", player.FantasyUnknown
	}
}
