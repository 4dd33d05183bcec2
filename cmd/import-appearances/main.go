package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/fplstats/cleansheets/internal/app"
	"github.com/fplstats/cleansheets/internal/infrastructure/repository/postgres"
	"github.com/fplstats/cleansheets/internal/snapshot"
	"github.com/fplstats/cleansheets/internal/usecase"
)

func main() {
	appearancesSource := flag.String("appearances", "appearance_data.json", "appearance snapshot: local path or http(s) URL")
	flag.Parse()

	app.RunJob("import-appearances", func(ctx context.Context, env app.JobEnv) error {
		data, err := snapshot.NewFetcher(env.Cfg.SnapshotFetchTimeout).Fetch(*appearancesSource)
		if err != nil {
			return err
		}
		rows, malformed, err := snapshot.DecodeAppearances(data)
		if err != nil {
			return err
		}

		svc := usecase.NewAppearanceImportService(
			postgres.NewSeasonRepository(env.DB),
			postgres.NewTeamRepository(env.DB),
			postgres.NewPlayerRepository(env.DB),
			postgres.NewMatchRepository(env.DB),
			postgres.NewAppearanceRepository(env.DB),
			env.Cfg.ImportBatchSize,
			env.Logger,
		)
		summary, err := svc.Import(ctx, env.Cfg.SeasonLabel, rows)
		if err != nil {
			return err
		}

		fmt.Printf("season %s: inserted=%d skipped_unresolved=%d skipped_failed_batches=%d batches=%d\n",
			env.Cfg.SeasonLabel, summary.Inserted, summary.Skipped, summary.Failed, summary.Batches)
		if out := summary.Diagnostics.Summary(); out != "" {
			fmt.Print(out)
		}
		for _, issue := range malformed {
			fmt.Printf("parse_failure: %s\n", issue)
		}
		return nil
	})
}
