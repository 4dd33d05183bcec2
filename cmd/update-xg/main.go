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
	npxgSource := flag.String("npxg", "all_matches_npxg.json", "expected-goals snapshot: local path or http(s) URL")
	flag.Parse()

	app.RunJob("update-xg", func(ctx context.Context, env app.JobEnv) error {
		data, err := snapshot.NewFetcher(env.Cfg.SnapshotFetchTimeout).Fetch(*npxgSource)
		if err != nil {
			return err
		}
		byURL, err := snapshot.DecodeNpxG(data)
		if err != nil {
			return err
		}

		svc := usecase.NewXGUpdateService(
			postgres.NewMatchRepository(env.DB),
			env.Cfg.CleanSheetThreshold,
			env.Logger,
		)
		summary, err := svc.Update(ctx, byURL)
		if err != nil {
			return err
		}

		fmt.Printf("expected goals: updated=%d unmatched=%d failed=%d\n",
			summary.Updated, summary.Unmatched, summary.Failed)
		if out := summary.Diagnostics.Summary(); out != "" {
			fmt.Print(out)
		}
		return nil
	})
}
