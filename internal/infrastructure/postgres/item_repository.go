package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/grabgo/vending-cli/internal/domain/entity"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Search busca artículos activos por subcadena en nombre o categoría
// (ILIKE), ordenados por nombre y con tope de filas.
func (r *ItemRepo) Search(term string, limit int) ([]*entity.Item, error) {
	query := `
		SELECT item_id, name, category, unit_cost, calories, is_active
		FROM item
		WHERE is_active = TRUE
		  AND (name ILIKE $1 OR category ILIKE $1)
		ORDER BY name LIMIT $2`
	pattern := "%" + term + "%"
	rows, err := r.q.Query(context.Background(), query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.UnitCost, &it.Calories, &it.IsActive); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetUnitCost devuelve el costo unitario actual, o nil si el artículo no
// existe (el snapshot de precio queda NULL, no es un error).
func (r *ItemRepo) GetUnitCost(itemID int) (*decimal.Decimal, error) {
	query := `SELECT unit_cost FROM item WHERE item_id = $1`
	var cost decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(&cost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit cost: %w", err)
	}
	return &cost, nil
}
