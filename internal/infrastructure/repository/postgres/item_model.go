package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
	"github.com/shopspring/decimal"
)

const itemsTable = "items"

var itemColumns = []string{"id", "name", "description", "price", "created_at"}

type itemTableModel struct {
	ID          int64           `db:"id,auto"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	CreatedAt   time.Time       `db:"created_at,auto"`
}

func itemToModel(it item.Item) itemTableModel {
	row := itemTableModel{Name: it.Name, Price: it.Price}
	if it.Description != nil {
		row.Description = sql.NullString{String: *it.Description, Valid: true}
	}
	return row
}

func (m itemTableModel) toDomain() item.Item {
	out := item.Item{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		CreatedAt: m.CreatedAt.UTC(),
	}
	if m.Description.Valid {
		desc := m.Description.String
		out.Description = &desc
	}
	return out
}
