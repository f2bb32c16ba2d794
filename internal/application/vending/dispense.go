package vending

import (
	"context"

	"github.com/grabgo/vending-cli/internal/domain"
	"github.com/grabgo/vending-cli/internal/domain/entity"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

// DispenseUseCase dispensa una unidad de un artículo de forma transaccional:
// valida la máquina, bloquea y decrementa el stock (SELECT FOR UPDATE) y
// registra el evento de dispensado. Todo o nada.
type DispenseUseCase struct {
	txRunner      TxRunner
	paymentMethod string
}

// NewDispenseUseCase construye el caso de uso.
func NewDispenseUseCase(txRunner TxRunner, paymentMethod string) *DispenseUseCase {
	return &DispenseUseCase{txRunner: txRunner, paymentMethod: paymentMethod}
}

// DispenseInput entrada para dispensar: cliente, máquina y artículo.
type DispenseInput struct {
	CustomerID int
	MachineID  int
	ItemID     int
}

// Dispense inicia una transacción, ejecuta los dos pasos en orden
// (chequear-y-decrementar, registrar evento) y hace Commit o Rollback.
// El decremento y el evento son atómicos como par: nunca queda uno sin el otro.
func (uc *DispenseUseCase) Dispense(ctx context.Context, input DispenseInput) error {
	return uc.txRunner.Run(ctx, func(
		machineRepo repository.MachineRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
		dispenseRepo repository.DispenseRepository,
		_ repository.RestockRepository,
	) error {
		if err := uc.checkAndDecrement(machineRepo, stockRepo, input); err != nil {
			return err
		}
		return uc.recordDispense(itemRepo, dispenseRepo, input)
	})
}

// checkAndDecrement valida estado de la máquina, bloquea la fila de stock
// (FOR UPDATE, serializa dispenses concurrentes del mismo slot) y resta 1.
func (uc *DispenseUseCase) checkAndDecrement(
	machineRepo repository.MachineRepository,
	stockRepo repository.StockRepository,
	input DispenseInput,
) error {
	machine, err := machineRepo.GetByID(input.MachineID)
	if err != nil {
		return err
	}
	if machine == nil {
		return domain.ErrMachineNotFound
	}
	if !machine.IsActive() {
		return domain.ErrMachineInactive
	}

	stock, err := stockRepo.GetForUpdate(input.MachineID, input.ItemID)
	if err != nil {
		return err
	}
	if stock == nil || stock.Qty <= 0 {
		return domain.ErrOutOfStock
	}
	return stockRepo.Decrement(input.MachineID, input.ItemID)
}

// recordDispense toma el snapshot del costo unitario (NULL si el artículo no
// existe; la FK de stock lo hace prácticamente inalcanzable) e inserta el evento.
func (uc *DispenseUseCase) recordDispense(
	itemRepo repository.ItemRepository,
	dispenseRepo repository.DispenseRepository,
	input DispenseInput,
) error {
	price, err := itemRepo.GetUnitCost(input.ItemID)
	if err != nil {
		return err
	}
	return dispenseRepo.Create(&entity.Dispense{
		CustomerID:    input.CustomerID,
		MachineID:     input.MachineID,
		ItemID:        input.ItemID,
		PriceCharged:  price,
		PaymentMethod: uc.paymentMethod,
	})
}
