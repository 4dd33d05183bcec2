package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstats/cleansheets/internal/domain/standings"
	qb "github.com/fplstats/cleansheets/internal/platform/querybuilder"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) ListBySeason(ctx context.Context, seasonID int64) ([]standings.Row, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("expected_clean_sheets DESC", "team_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings by season: %w", err)
	}

	out := make([]standings.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.Row{
			SeasonID:            row.SeasonID,
			TeamID:              row.TeamID,
			TeamName:            row.TeamName,
			ExpectedCleanSheets: row.ExpectedCleanSheets,
		})
	}
	return out, nil
}

// Replace clears and rewrites a season's table inside one transaction so a
// reader never sees a half-replaced season.
func (r *StandingsRepository) Replace(ctx context.Context, seasonID int64, rows []standings.Row) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin standings replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("standings").
		Where(qb.Eq("season_id", seasonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear standings: %w", err)
	}

	if len(rows) > 0 {
		insert := qb.InsertInto("standings").
			Columns("season_id", "team_id", "team_name", "expected_clean_sheets")
		for _, row := range rows {
			insert.Values(row.SeasonID, row.TeamID, row.TeamName, row.ExpectedCleanSheets)
		}
		insertQuery, insertArgs, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert standings query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert standings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit standings replace: %w", err)
	}
	return nil
}
