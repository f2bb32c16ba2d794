package vending_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grabgo/vending-cli/internal/application/vending"
	"github.com/grabgo/vending-cli/internal/domain"
	"github.com/grabgo/vending-cli/internal/domain/entity"
)

func seededStore() *memStore {
	st := newMemStore()
	st.machines[1] = &entity.Machine{ID: 1, Location: "Lobby Norte", Status: entity.MachineStatusActive}
	st.machines[2] = &entity.Machine{ID: 2, Location: "Piso 3", Status: "maintenance"}
	st.items[7] = &entity.Item{ID: 7, Name: "Trail Mix", Category: "snack", UnitCost: decimal.RequireFromString("2.50"), Calories: 210, IsActive: true}
	st.stock[stockKey{1, 7}] = 3
	return st
}

func TestDispenseSuccess(t *testing.T) {
	st := seededStore()
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	err := uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 42, MachineID: 1, ItemID: 7})
	require.NoError(t, err)

	assert.Equal(t, 2, st.stock[stockKey{1, 7}], "el stock baja exactamente en 1")
	require.Len(t, st.dispenses, 1, "exactamente un evento de dispensado")

	d := st.dispenses[0]
	assert.NotZero(t, d.ID, "identificador asignado por la base")
	assert.Equal(t, 42, d.CustomerID)
	assert.Equal(t, 1, d.MachineID)
	assert.Equal(t, 7, d.ItemID)
	assert.Equal(t, "card", d.PaymentMethod)
	require.NotNil(t, d.PriceCharged, "snapshot del costo unitario")
	assert.True(t, d.PriceCharged.Equal(decimal.RequireFromString("2.50")))

	assert.Equal(t, 1, runner.commits)
	assert.Zero(t, runner.rollbacks)
}

// El dispense_id lo genera la base (columna serial); el caso de uso inserta
// sin identificador, igual que el resto de IDs del esquema.
func TestDispenseEventIDAssignedByStore(t *testing.T) {
	st := seededStore()
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	require.NoError(t, uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 42, MachineID: 1, ItemID: 7}))

	require.Equal(t, []int64{0}, st.receivedDispenseIDs, "el insert llega sin ID fabricado por la app")
	require.Len(t, st.dispenses, 1)
	assert.Equal(t, int64(700), st.dispenses[0].ID, "el ID persistido es el generado por la base")
}

func TestDispenseLocksRowBeforeDecrement(t *testing.T) {
	st := seededStore()
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	require.NoError(t, uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 42, MachineID: 1, ItemID: 7}))

	// La lectura bloqueante precede a toda mutación dentro de la transacción.
	require.Equal(t, []string{
		"machine.GetByID",
		"stock.GetForUpdate",
		"stock.Decrement",
		"item.GetUnitCost",
		"dispense.Create",
	}, st.calls)
}

func TestDispenseOutOfStock(t *testing.T) {
	st := seededStore()
	st.stock[stockKey{1, 7}] = 0
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	err := uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 42, MachineID: 1, ItemID: 7})
	require.ErrorIs(t, err, domain.ErrOutOfStock)

	assert.Equal(t, 0, st.stock[stockKey{1, 7}], "el stock no se toca")
	assert.Empty(t, st.dispenses, "no se registra evento")
	assert.Zero(t, runner.commits)
	assert.Equal(t, 1, runner.rollbacks)
}

func TestDispenseNoStockRow(t *testing.T) {
	st := seededStore()
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	err := uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 42, MachineID: 1, ItemID: 99})
	require.ErrorIs(t, err, domain.ErrOutOfStock)
	assert.Empty(t, st.dispenses)
	assert.Equal(t, 1, runner.rollbacks)
}

func TestDispenseMachineNotFound(t *testing.T) {
	st := seededStore()
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	err := uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 42, MachineID: 9, ItemID: 7})
	require.ErrorIs(t, err, domain.ErrMachineNotFound)

	assert.Equal(t, 3, st.stock[stockKey{1, 7}])
	assert.Empty(t, st.dispenses)
	assert.Equal(t, 1, runner.rollbacks)
}

func TestDispenseMachineInactive(t *testing.T) {
	st := seededStore()
	st.stock[stockKey{2, 7}] = 5
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	err := uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 42, MachineID: 2, ItemID: 7})
	require.ErrorIs(t, err, domain.ErrMachineInactive)

	assert.Equal(t, 5, st.stock[stockKey{2, 7}], "la máquina inactiva no muta stock")
	assert.Empty(t, st.dispenses)
}

// Artículo sin fila en catálogo pero con stock: el precio queda nil (NULL),
// el dispensado no se rechaza por eso.
func TestDispenseUnknownItemPriceIsNull(t *testing.T) {
	st := seededStore()
	st.stock[stockKey{1, 55}] = 1
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	err := uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 42, MachineID: 1, ItemID: 55})
	require.NoError(t, err)

	assert.Equal(t, 0, st.stock[stockKey{1, 55}])
	require.Len(t, st.dispenses, 1)
	assert.Nil(t, st.dispenses[0].PriceCharged)
}

// Con una unidad restante, dispensados en serie: el primero gana, el resto
// reporta OutOfStock. (La serialización real la da el FOR UPDATE en la base;
// aquí se verifica que la decisión usa la cantidad leída bajo el lock.)
func TestDispenseLastUnitThenOutOfStock(t *testing.T) {
	st := seededStore()
	st.stock[stockKey{1, 7}] = 1
	runner := &fakeTxRunner{st: st}
	uc := vending.NewDispenseUseCase(runner, "card")

	require.NoError(t, uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 1, MachineID: 1, ItemID: 7}))
	for i := 0; i < 3; i++ {
		err := uc.Dispense(context.Background(), vending.DispenseInput{CustomerID: 1, MachineID: 1, ItemID: 7})
		require.ErrorIs(t, err, domain.ErrOutOfStock)
	}

	assert.Equal(t, 0, st.stock[stockKey{1, 7}], "nunca queda negativo")
	assert.Len(t, st.dispenses, 1, "solo el primero registró evento")
	assert.Equal(t, 1, runner.commits)
	assert.Equal(t, 3, runner.rollbacks)
}
