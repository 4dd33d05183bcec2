package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/fplstats/cleansheets/internal/app"
	"github.com/fplstats/cleansheets/internal/infrastructure/repository/postgres"
	"github.com/fplstats/cleansheets/internal/snapshot"
	"github.com/fplstats/cleansheets/internal/usecase"
)

func main() {
	pricesSource := flag.String("prices", "fpl_prices.csv", "fantasy pricing CSV: local path or http(s) URL")
	flag.Parse()

	app.RunJob("match-fpl-prices", func(ctx context.Context, env app.JobEnv) error {
		data, err := snapshot.NewFetcher(env.Cfg.SnapshotFetchTimeout).Fetch(*pricesSource)
		if err != nil {
			return err
		}
		prices, malformed, err := snapshot.DecodePrices(bytes.NewReader(data))
		if err != nil {
			return err
		}

		svc := usecase.NewPriceMatchService(postgres.NewPlayerRepository(env.DB), env.Logger)
		summary, err := svc.Match(ctx, prices)
		if err != nil {
			return err
		}

		fmt.Printf("pricing feed: matched=%d unmatched=%d failed=%d\n", summary.Matched, summary.Unmatched, summary.Failed)
		if out := summary.Diagnostics.Summary(); out != "" {
			fmt.Print(out)
		}
		for _, issue := range malformed {
			fmt.Printf("parse_failure: %s\n", issue)
		}
		return nil
	})
}
