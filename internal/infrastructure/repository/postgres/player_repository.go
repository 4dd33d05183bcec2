package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstats/cleansheets/internal/domain/player"
	qb "github.com/fplstats/cleansheets/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, ids []int64) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	query, args, err := qb.Select("*").From("players").
		Where(qb.In("id", values)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by id query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by id: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	if item.FantasyPosition == "" {
		item.FantasyPosition = player.FantasyUnknown
	}
	query, args, err := qb.InsertModel("players", playerInsertModel{
		Name:            item.Name,
		TeamID:          item.TeamID,
		FantasyPosition: string(item.FantasyPosition),
	}, "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	item.ID = id
	return item, nil
}

func (r *PlayerRepository) UpdatePricing(ctx context.Context, playerID int64, position string, fantasyPosition player.FantasyPosition, price float64) error {
	query, args, err := qb.Update("players").
		Set("position", position).
		Set("fantasy_position", string(fantasyPosition)).
		Set("price", price).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player pricing query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player pricing: %w", err)
	}
	return nil
}

func playerFromRow(row playerTableModel) player.Player {
	out := player.Player{
		ID:              row.ID,
		Name:            row.Name,
		TeamID:          row.TeamID,
		FantasyPosition: player.FantasyPosition(row.FantasyPosition),
	}
	if row.Position.Valid {
		out.Position = row.Position.String
	}
	if row.Price.Valid {
		out.Price = row.Price.Float64
	}
	return out
}
