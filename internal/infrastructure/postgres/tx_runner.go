package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grabgo/vending-cli/internal/application/vending"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

// Ensure TxRunner implements vending.TxRunner.
var _ vending.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El error de fn se devuelve sin envolver; solo los
// fallos de Begin/Commit llevan contexto propio. Exactamente una
// transacción por invocación, sin reintentos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	machineRepo repository.MachineRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
	dispenseRepo repository.DispenseRepository,
	restockRepo repository.RestockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	machineRepo := NewMachineRepository(tx)
	stockRepo := NewStockRepository(tx)
	itemRepo := NewItemRepository(tx)
	dispenseRepo := NewDispenseRepository(tx)
	restockRepo := NewRestockRepository(tx)

	if err := fn(machineRepo, stockRepo, itemRepo, dispenseRepo, restockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
