package main

import (
	"context"
	"fmt"

	"github.com/fplstats/cleansheets/internal/app"
	"github.com/fplstats/cleansheets/internal/infrastructure/repository/postgres"
	"github.com/fplstats/cleansheets/internal/usecase"
)

func main() {
	app.RunJob("compute-standings", func(ctx context.Context, env app.JobEnv) error {
		svc := usecase.NewStandingsService(
			postgres.NewSeasonRepository(env.DB),
			postgres.NewMatchRepository(env.DB),
			postgres.NewStandingsRepository(env.DB),
			env.Logger,
		)
		summary, err := svc.Compute(ctx, env.Cfg.SeasonLabel)
		if err != nil {
			return err
		}

		fmt.Printf("season %s expected clean sheets (%d teams):\n", env.Cfg.SeasonLabel, summary.Teams)
		for i, row := range summary.Rows {
			fmt.Printf("%2d. %-28s %d\n", i+1, row.TeamName, row.ExpectedCleanSheets)
		}
		return nil
	})
}
