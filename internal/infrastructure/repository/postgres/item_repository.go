package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
	qb "github.com/riskibarqy/fpl-annoyer/internal/platform/querybuilder"
)

type ItemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, it item.Item) (item.Item, error) {
	row := itemToModel(it)
	insert, err := qb.InsertModel(itemsTable, row)
	if err != nil {
		return item.Item{}, fmt.Errorf("build insert item query: %w", err)
	}
	query, args, err := insert.Returning("id", "created_at").ToSQL()
	if err != nil {
		return item.Item{}, fmt.Errorf("build insert item query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&row.ID, &row.CreatedAt); err != nil {
		return item.Item{}, queryError("insert item", err)
	}
	return row.toDomain(), nil
}

func (r *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	query, args, err := qb.Select(itemColumns...).From(itemsTable).
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select items query: %w", err)
	}

	var rows []itemTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, queryError("select items", err)
	}

	out := make([]item.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (item.Item, bool, error) {
	query, args, err := qb.Select(itemColumns...).From(itemsTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return item.Item{}, false, fmt.Errorf("build select item query: %w", err)
	}

	var row itemTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return item.Item{}, false, nil
		}
		return item.Item{}, false, queryError(fmt.Sprintf("select item id=%d", id), err)
	}
	return row.toDomain(), true, nil
}

// Delete soft-deletes the row so ids stay unique.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Update(itemsTable).
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete item query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, queryError(fmt.Sprintf("delete item id=%d", id), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete item rows affected: %w", err)
	}
	return affected > 0, nil
}
