package main

import (
	"context"
	"fmt"

	"github.com/fplstats/cleansheets/internal/app"
	"github.com/fplstats/cleansheets/internal/infrastructure/repository/postgres"
	"github.com/fplstats/cleansheets/internal/usecase"
)

func main() {
	app.RunJob("propagate-cleansheets", func(ctx context.Context, env app.JobEnv) error {
		svc := usecase.NewCleanSheetService(
			postgres.NewSeasonRepository(env.DB),
			postgres.NewMatchRepository(env.DB),
			postgres.NewAppearanceRepository(env.DB),
			env.Cfg.NonBlankXGIThreshold,
			env.Logger,
		)
		summary, err := svc.Propagate(ctx, env.Cfg.SeasonLabel)
		if err != nil {
			return err
		}

		fmt.Printf("season %s: flagged_sides=%d appearances_clean=%d appearances_non_blank=%d failed=%d\n",
			env.Cfg.SeasonLabel, summary.MatchesFlagged, summary.AppearancesClean, summary.AppearancesNonBlank, summary.Failed)
		if out := summary.Diagnostics.Summary(); out != "" {
			fmt.Print(out)
		}
		return nil
	})
}
