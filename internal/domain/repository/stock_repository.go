package repository

import "github.com/grabgo/vending-cli/internal/domain/entity"

// StockRepository puerto sobre la tabla stock (clave compuesta machine+item).
type StockRepository interface {
	// GetForUpdate lee la cantidad disponible bloqueando la fila
	// (SELECT FOR UPDATE) para serializar dispenses concurrentes sobre el
	// mismo slot. Devuelve nil si no hay fila.
	GetForUpdate(machineID, itemID int) (*entity.Stock, error)

	// Decrement resta exactamente una unidad a la fila ya bloqueada.
	Decrement(machineID, itemID int) error

	// UpsertAdd inserta la cantidad si no hay fila, o la suma a la
	// existente (ON CONFLICT ... DO UPDATE). Sin tope superior.
	UpsertAdd(machineID, itemID, qty int) error

	// MachineStock lista el stock de una máquina ordenado por nombre de artículo.
	MachineStock(machineID int) ([]*entity.StockLine, error)

	// LowStock lista las filas con qty por debajo del umbral, ordenadas por
	// ubicación de máquina y nombre de artículo.
	LowStock(threshold int) ([]*entity.LowStockLine, error)
}
