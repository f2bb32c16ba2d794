package repository

import (
	"github.com/shopspring/decimal"

	"github.com/grabgo/vending-cli/internal/domain/entity"
)

// ItemRepository puerto de lectura del catálogo de artículos.
type ItemRepository interface {
	// Search busca artículos activos por subcadena (case-insensitive) en
	// nombre o categoría, ordenados por nombre, con tope de filas.
	Search(term string, limit int) ([]*entity.Item, error)

	// GetUnitCost devuelve el costo unitario actual del artículo, o nil si
	// el artículo no existe (no es un error: el precio queda NULL).
	GetUnitCost(itemID int) (*decimal.Decimal, error)
}
