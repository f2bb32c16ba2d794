package vending

import (
	"context"

	"github.com/grabgo/vending-cli/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Los pasos del callback corren en orden sobre
// la misma transacción; si alguno falla se hace Rollback de todo y el error
// del callback llega al caller sin envolver.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		machineRepo repository.MachineRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
		dispenseRepo repository.DispenseRepository,
		restockRepo repository.RestockRepository,
	) error) error
}
