package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grabgo/vending-cli/internal/domain/entity"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para
// serializar dispenses concurrentes del mismo slot. Devuelve nil si no hay fila.
func (r *StockRepo) GetForUpdate(machineID, itemID int) (*entity.Stock, error) {
	query := `
		SELECT machine_id, item_id, qty
		FROM stock WHERE machine_id = $1 AND item_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, machineID, itemID).Scan(&s.MachineID, &s.ItemID, &s.Qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Decrement resta exactamente una unidad. El caller ya validó qty > 0 con la
// fila bloqueada, así que la invariante de cantidad no negativa se mantiene.
func (r *StockRepo) Decrement(machineID, itemID int) error {
	query := `UPDATE stock SET qty = qty - 1 WHERE machine_id = $1 AND item_id = $2`
	_, err := r.q.Exec(context.Background(), query, machineID, itemID)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}

// UpsertAdd inserta la cantidad si no hay fila o la suma a la existente.
// El conflicto lo resuelve la base; reposiciones concurrentes del mismo slot
// no pierden actualizaciones.
func (r *StockRepo) UpsertAdd(machineID, itemID, qty int) error {
	query := `
		INSERT INTO stock (machine_id, item_id, qty)
		VALUES ($1, $2, $3)
		ON CONFLICT (machine_id, item_id) DO UPDATE
		SET qty = stock.qty + EXCLUDED.qty`
	_, err := r.q.Exec(context.Background(), query, machineID, itemID, qty)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// MachineStock lista el stock de una máquina ordenado por nombre de artículo.
func (r *StockRepo) MachineStock(machineID int) ([]*entity.StockLine, error) {
	query := `
		SELECT i.item_id, i.name, s.qty
		FROM stock s
		JOIN item i ON i.item_id = s.item_id
		WHERE s.machine_id = $1
		ORDER BY i.name`
	rows, err := r.q.Query(context.Background(), query, machineID)
	if err != nil {
		return nil, fmt.Errorf("machine stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLine
	for rows.Next() {
		var l entity.StockLine
		if err := rows.Scan(&l.ItemID, &l.ItemName, &l.Qty); err != nil {
			return nil, fmt.Errorf("scan stock line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// LowStock lista filas con qty por debajo del umbral, ordenadas por
// ubicación de máquina y nombre de artículo.
func (r *StockRepo) LowStock(threshold int) ([]*entity.LowStockLine, error) {
	query := `
		SELECT m.location, i.name, s.qty
		FROM stock s
		JOIN machine m ON m.machine_id = s.machine_id
		JOIN item i    ON i.item_id = s.item_id
		WHERE s.qty < $1
		ORDER BY m.location, i.name`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.LowStockLine
	for rows.Next() {
		var l entity.LowStockLine
		if err := rows.Scan(&l.Location, &l.ItemName, &l.Qty); err != nil {
			return nil, fmt.Errorf("scan low stock line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
