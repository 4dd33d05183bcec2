package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstats/cleansheets/internal/domain/appearance"
	qb "github.com/fplstats/cleansheets/internal/platform/querybuilder"
)

type AppearanceRepository struct {
	db *sqlx.DB
}

func NewAppearanceRepository(db *sqlx.DB) *AppearanceRepository {
	return &AppearanceRepository{db: db}
}

// BulkInsert writes one batch in a single multi-row statement; the batch
// succeeds or fails as a unit.
func (r *AppearanceRepository) BulkInsert(ctx context.Context, items []appearance.Appearance) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]appearanceInsertModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, appearanceInsertFromDomain(item))
	}

	query, args, err := qb.InsertModels("appearances", rows, "")
	if err != nil {
		return fmt.Errorf("build insert appearances query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert appearances: %w", err)
	}
	return nil
}

func (r *AppearanceRepository) ListBySeason(ctx context.Context, seasonID int64) ([]appearance.Appearance, error) {
	query, args, err := qb.Select("appearances.*").From("appearances").
		Where(qb.Expr("match_id IN (SELECT id FROM matches WHERE season_id = ?)", seasonID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select appearances query: %w", err)
	}

	var rows []appearanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select appearances by season: %w", err)
	}

	out := make([]appearance.Appearance, 0, len(rows))
	for _, row := range rows {
		out = append(out, appearanceFromRow(row))
	}
	return out, nil
}

func (r *AppearanceRepository) MarkExpectedClean(ctx context.Context, matchID, teamID int64, minMinutes int) (int64, error) {
	query, args, err := qb.Update("appearances").
		Set("expected_clean", true).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("match_id", matchID),
			qb.Eq("team_id", teamID),
			qb.Expr("started"),
			qb.Expr("minutes >= ?", minMinutes),
			qb.Expr("NOT expected_clean"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build mark expected clean query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark expected clean: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count marked appearances: %w", err)
	}
	return rows, nil
}

func (r *AppearanceRepository) MarkExpectedNonBlank(ctx context.Context, seasonID int64, minXGI float64) (int64, error) {
	query, args, err := qb.Update("appearances").
		Set("expected_non_blank", true).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Expr("match_id IN (SELECT id FROM matches WHERE season_id = ?)", seasonID),
			qb.Expr("(expected_clean OR expected_goal_involvement >= ?)", minXGI),
			qb.Expr("NOT expected_non_blank"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build mark expected non-blank query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark expected non-blank: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count marked appearances: %w", err)
	}
	return rows, nil
}
