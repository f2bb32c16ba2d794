package vending

import (
	"context"

	"github.com/grabgo/vending-cli/internal/domain"
	"github.com/grabgo/vending-cli/internal/domain/entity"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

// RestockUseCase registra una reposición de forma transaccional: cabecera con
// ID generado por la base, una línea por entrada del operador y upsert
// aditivo del stock. Cabecera, líneas y upserts comitean juntos o ninguno.
type RestockUseCase struct {
	txRunner TxRunner
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(txRunner TxRunner) *RestockUseCase {
	return &RestockUseCase{txRunner: txRunner}
}

// RestockLineInput una entrada item,cantidad tal como la tecleó el operador.
type RestockLineInput struct {
	ItemID int
	Qty    int
}

// RestockInput entrada para una reposición. Lines conserva el orden de entrada.
type RestockInput struct {
	StaffID   int
	MachineID int
	Lines     []RestockLineInput
}

// Restock inicia la transacción, crea la cabecera (capturando el restock_id
// generado) y por cada línea inserta la fila de restockline y suma al stock.
// Artículos repetidos dentro de la misma reposición acumulan aditivamente:
// cada línea es un insert y un upsert propios, el historial no se fusiona.
func (uc *RestockUseCase) Restock(ctx context.Context, input RestockInput) error {
	// El shell no invoca el workflow con lista vacía; esta guarda cubre
	// a otros callers (subcomandos).
	if len(input.Lines) == 0 {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		_ repository.MachineRepository,
		stockRepo repository.StockRepository,
		_ repository.ItemRepository,
		_ repository.DispenseRepository,
		restockRepo repository.RestockRepository,
	) error {
		restockID, err := restockRepo.CreateHeader(input.StaffID, input.MachineID)
		if err != nil {
			return err
		}
		return uc.insertLines(stockRepo, restockRepo, restockID, input)
	})
}

// insertLines inserta las líneas en el orden de entrada y aplica el upsert
// aditivo del stock por cada una. El restockID viene de la cabecera recién
// creada en la misma transacción.
func (uc *RestockUseCase) insertLines(
	stockRepo repository.StockRepository,
	restockRepo repository.RestockRepository,
	restockID int64,
	input RestockInput,
) error {
	for _, line := range input.Lines {
		if err := restockRepo.CreateLine(&entity.RestockLine{
			RestockID: restockID,
			ItemID:    line.ItemID,
			Qty:       line.Qty,
		}); err != nil {
			return err
		}
		if err := stockRepo.UpsertAdd(input.MachineID, line.ItemID, line.Qty); err != nil {
			return err
		}
	}
	return nil
}
