package entity

import "github.com/shopspring/decimal"

// Item representa un artículo del catálogo de las máquinas.
// El core solo lo lee; altas y bajas de catálogo ocurren fuera de esta herramienta.
type Item struct {
	ID       int
	Name     string
	Category string
	UnitCost decimal.Decimal
	Calories int
	IsActive bool
}
