package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstats/cleansheets/internal/domain/playersummary"
	qb "github.com/fplstats/cleansheets/internal/platform/querybuilder"
)

type PlayerSummaryRepository struct {
	db *sqlx.DB
}

func NewPlayerSummaryRepository(db *sqlx.DB) *PlayerSummaryRepository {
	return &PlayerSummaryRepository{db: db}
}

func (r *PlayerSummaryRepository) ListBySeason(ctx context.Context, seasonID int64) ([]playersummary.Summary, error) {
	query, args, err := qb.Select("*").From("player_season_summaries").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("non_blanks DESC", "player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player summaries query: %w", err)
	}

	var rows []playerSummaryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player summaries by season: %w", err)
	}

	out := make([]playersummary.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, playersummary.Summary{
			SeasonID:          row.SeasonID,
			PlayerID:          row.PlayerID,
			PlayerName:        row.PlayerName,
			TimesInSquad:      row.TimesInSquad,
			TimesStarted:      row.TimesStarted,
			TotalMinutes:      row.TotalMinutes,
			NonBlanks:         row.NonBlanks,
			NonBlanksPerSquad: row.NonBlanksPerSquad,
			NonBlanksPerStart: row.NonBlanksPerStart,
		})
	}
	return out, nil
}

// Replace clears and rewrites a season's summaries inside one transaction.
func (r *PlayerSummaryRepository) Replace(ctx context.Context, seasonID int64, items []playersummary.Summary) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin player summaries replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("player_season_summaries").
		Where(qb.Eq("season_id", seasonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear player summaries query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear player summaries: %w", err)
	}

	if len(items) > 0 {
		insert := qb.InsertInto("player_season_summaries").
			Columns("season_id", "player_id", "player_name", "times_in_squad", "times_started", "total_minutes", "non_blanks", "non_blanks_per_squad", "non_blanks_per_start")
		for _, item := range items {
			insert.Values(item.SeasonID, item.PlayerID, item.PlayerName, item.TimesInSquad, item.TimesStarted, item.TotalMinutes, item.NonBlanks, item.NonBlanksPerSquad, item.NonBlanksPerStart)
		}
		insertQuery, insertArgs, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert player summaries query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert player summaries: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit player summaries replace: %w", err)
	}
	return nil
}
