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
	fixturesSource := flag.String("fixtures", "premier_league_matches.json", "fixtures snapshot: local path or http(s) URL")
	flag.Parse()

	app.RunJob("import-matches", func(ctx context.Context, env app.JobEnv) error {
		data, err := snapshot.NewFetcher(env.Cfg.SnapshotFetchTimeout).Fetch(*fixturesSource)
		if err != nil {
			return err
		}
		fixtures, malformed, err := snapshot.DecodeFixtures(data)
		if err != nil {
			return err
		}

		svc := usecase.NewMatchImportService(
			postgres.NewSeasonRepository(env.DB),
			postgres.NewTeamRepository(env.DB),
			postgres.NewMatchRepository(env.DB),
			env.Logger,
		)
		summary, err := svc.Import(ctx, env.Cfg.SeasonLabel, fixtures)
		if err != nil {
			return err
		}

		fmt.Printf("season %s: created=%d skipped_existing=%d skipped_no_report=%d failed=%d\n",
			env.Cfg.SeasonLabel, summary.Created, summary.SkippedExisting, summary.SkippedNoReport, summary.Failed)
		if out := summary.Diagnostics.Summary(); out != "" {
			fmt.Print(out)
		}
		for _, issue := range malformed {
			fmt.Printf("parse_failure: %s\n", issue)
		}
		return nil
	})
}
