package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dispense representa la entrega de una unidad de un artículo a un cliente.
// Append-only: una vez escrito no hay update ni delete. El identificador y
// el timestamp los asigna la base al insertar; la aplicación no los fabrica.
type Dispense struct {
	ID            int64
	CustomerID    int
	MachineID     int
	ItemID        int
	TS            time.Time
	PriceCharged  *decimal.Decimal // snapshot de unit_cost al dispensar; nil si el artículo no existe
	PaymentMethod string
}
