package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstats/cleansheets/internal/domain/fixture"
	qb "github.com/fplstats/cleansheets/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID int64) ([]fixture.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("gameweek NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by season: %w", err)
	}

	out := make([]fixture.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) Exists(ctx context.Context, seasonID, homeTeamID, awayTeamID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("matches").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("home_team_id", homeTeamID),
			qb.Eq("away_team_id", awayTeamID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build match exists query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count matches: %w", err)
	}
	return count > 0, nil
}

func (r *MatchRepository) Create(ctx context.Context, item fixture.Match) (fixture.Match, error) {
	query, args, err := qb.InsertModel("matches", matchInsertModel{
		SeasonID:     item.SeasonID,
		Gameweek:     item.Gameweek,
		HomeTeamID:   item.HomeTeamID,
		AwayTeamID:   item.AwayTeamID,
		HomeTeamName: item.HomeTeamName,
		AwayTeamName: item.AwayTeamName,
		ReportURL:    item.ReportURL,
	}, "RETURNING id")
	if err != nil {
		return fixture.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return fixture.Match{}, fmt.Errorf("insert match: %w", err)
	}

	item.ID = id
	return item, nil
}

func (r *MatchRepository) UpdateExpectedGoals(ctx context.Context, reportURL string, homeNpxG, awayNpxG float64, homeClean, awayClean bool) (int64, error) {
	query, args, err := qb.Update("matches").
		Set("home_npxg", homeNpxG).
		Set("away_npxg", awayNpxG).
		Set("home_expected_clean", homeClean).
		Set("away_expected_clean", awayClean).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("report_url", reportURL)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build update expected goals query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update expected goals: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count updated matches: %w", err)
	}
	return rows, nil
}

func matchFromRow(row matchTableModel) fixture.Match {
	out := fixture.Match{
		ID:                row.ID,
		SeasonID:          row.SeasonID,
		HomeTeamID:        row.HomeTeamID,
		AwayTeamID:        row.AwayTeamID,
		HomeTeamName:      row.HomeTeamName,
		AwayTeamName:      row.AwayTeamName,
		HomeExpectedClean: row.HomeExpectedClean,
		AwayExpectedClean: row.AwayExpectedClean,
		ReportURL:         row.ReportURL,
	}
	if row.Gameweek.Valid {
		gw := int(row.Gameweek.Int64)
		out.Gameweek = &gw
	}
	if row.HomeNpxG.Valid {
		v := row.HomeNpxG.Float64
		out.HomeNpxG = &v
	}
	if row.AwayNpxG.Valid {
		v := row.AwayNpxG.Float64
		out.AwayNpxG = &v
	}
	return out
}
