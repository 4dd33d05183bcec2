package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstats/cleansheets/internal/domain/season"
	qb "github.com/fplstats/cleansheets/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByLabel(ctx context.Context, label string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("label", label)).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select season by label: %w", err)
	}

	return season.Season{ID: row.ID, Label: row.Label}, true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, label string) (season.Season, error) {
	query, args, err := qb.InsertModel("seasons", seasonInsertModel{Label: label}, "RETURNING id")
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return season.Season{}, fmt.Errorf("insert season: %w", err)
	}

	return season.Season{ID: id, Label: label}, nil
}
