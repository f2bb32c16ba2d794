package vending

import (
	"github.com/grabgo/vending-cli/internal/domain/entity"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

// ReportingUseCase consultas de solo lectura: búsqueda de artículos, stock de
// una máquina y reporte de bajo stock. Sin transacciones ni estado compartido.
type ReportingUseCase struct {
	itemRepo          repository.ItemRepository
	stockRepo         repository.StockRepository
	searchLimit       int
	lowStockThreshold int
}

// NewReportingUseCase construye el caso de uso con los repos atados al pool.
func NewReportingUseCase(
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	searchLimit, lowStockThreshold int,
) *ReportingUseCase {
	return &ReportingUseCase{
		itemRepo:          itemRepo,
		stockRepo:         stockRepo,
		searchLimit:       searchLimit,
		lowStockThreshold: lowStockThreshold,
	}
}

// SearchItems busca artículos activos por subcadena en nombre o categoría.
func (uc *ReportingUseCase) SearchItems(term string) ([]*entity.Item, error) {
	return uc.itemRepo.Search(term, uc.searchLimit)
}

// MachineStock lista el stock de una máquina ordenado por nombre de artículo.
func (uc *ReportingUseCase) MachineStock(machineID int) ([]*entity.StockLine, error) {
	return uc.stockRepo.MachineStock(machineID)
}

// LowStock lista las filas con cantidad por debajo del umbral configurado.
func (uc *ReportingUseCase) LowStock() ([]*entity.LowStockLine, error) {
	return uc.stockRepo.LowStock(uc.lowStockThreshold)
}
