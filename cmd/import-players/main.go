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

	app.RunJob("import-players", func(ctx context.Context, env app.JobEnv) error {
		data, err := snapshot.NewFetcher(env.Cfg.SnapshotFetchTimeout).Fetch(*appearancesSource)
		if err != nil {
			return err
		}
		rows, malformed, err := snapshot.DecodeAppearances(data)
		if err != nil {
			return err
		}

		svc := usecase.NewPlayerImportService(
			postgres.NewTeamRepository(env.DB),
			postgres.NewPlayerRepository(env.DB),
			env.Logger,
		)
		summary, err := svc.Import(ctx, rows)
		if err != nil {
			return err
		}

		fmt.Printf("players: created=%d existing=%d failed=%d\n",
			summary.Created, summary.Existing, summary.Failed)
		if out := summary.Diagnostics.Summary(); out != "" {
			fmt.Print(out)
		}
		for _, issue := range malformed {
			fmt.Printf("parse_failure: %s\n", issue)
		}
		return nil
	})
}
