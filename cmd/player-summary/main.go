package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/fplstats/cleansheets/internal/app"
	"github.com/fplstats/cleansheets/internal/infrastructure/repository/postgres"
	"github.com/fplstats/cleansheets/internal/usecase"
)

func main() {
	top := flag.Int("top", 20, "how many players to print, 0 for all")
	flag.Parse()

	app.RunJob("player-summary", func(ctx context.Context, env app.JobEnv) error {
		svc := usecase.NewPlayerSummaryService(
			postgres.NewSeasonRepository(env.DB),
			postgres.NewPlayerRepository(env.DB),
			postgres.NewAppearanceRepository(env.DB),
			postgres.NewPlayerSummaryRepository(env.DB),
			env.Logger,
		)
		summary, err := svc.Compute(ctx, env.Cfg.SeasonLabel)
		if err != nil {
			return err
		}

		rows := summary.Rows
		if *top > 0 && len(rows) > *top {
			rows = rows[:*top]
		}
		fmt.Printf("season %s player summaries (%d players):\n", env.Cfg.SeasonLabel, summary.Players)
		for _, row := range rows {
			fmt.Printf("%-28s squad=%3d started=%3d minutes=%5d non_blanks=%3d per_squad=%.2f per_start=%.2f\n",
				row.PlayerName, row.TimesInSquad, row.TimesStarted, row.TotalMinutes,
				row.NonBlanks, row.NonBlanksPerSquad, row.NonBlanksPerStart)
		}
		return nil
	})
}
