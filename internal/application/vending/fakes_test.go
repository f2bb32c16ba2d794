package vending_test

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/grabgo/vending-cli/internal/application/vending"
	"github.com/grabgo/vending-cli/internal/domain/entity"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido entre repos y un fakeTxRunner que
// simula Commit/Rollback con snapshot del estado.
// ──────────────────────────────────────────────────────────────────────────────

var errInjected = errors.New("injected store failure")

type stockKey struct {
	machineID, itemID int
}

type memStore struct {
	machines     map[int]*entity.Machine
	items        map[int]*entity.Item
	stock        map[stockKey]int
	dispenses    []*entity.Dispense
	restocks     []*entity.Restock
	restockLines []*entity.RestockLine

	nextRestockID  int64
	nextDispenseID int64
	// IDs con los que llegó cada Dispense a Create; la base es quien genera
	// el identificador, así que deben venir en cero.
	receivedDispenseIDs []int64
	calls               []string // orden de llamadas, para verificar lock antes de mutar

	// failOnLineInsert hace fallar el n-ésimo CreateLine (1-based); 0 = nunca.
	failOnLineInsert int
	lineInserts      int
}

func newMemStore() *memStore {
	return &memStore{
		machines:       map[int]*entity.Machine{},
		items:          map[int]*entity.Item{},
		stock:          map[stockKey]int{},
		nextRestockID:  100,
		nextDispenseID: 700,
	}
}

type memSnapshot struct {
	stock        map[stockKey]int
	dispenses    []*entity.Dispense
	restocks     []*entity.Restock
	restockLines []*entity.RestockLine
}

func (st *memStore) snapshot() memSnapshot {
	stock := make(map[stockKey]int, len(st.stock))
	for k, v := range st.stock {
		stock[k] = v
	}
	return memSnapshot{
		stock:        stock,
		dispenses:    append([]*entity.Dispense(nil), st.dispenses...),
		restocks:     append([]*entity.Restock(nil), st.restocks...),
		restockLines: append([]*entity.RestockLine(nil), st.restockLines...),
	}
}

func (st *memStore) restore(s memSnapshot) {
	st.stock = s.stock
	st.dispenses = s.dispenses
	st.restocks = s.restocks
	st.restockLines = s.restockLines
}

type fakeMachineRepo struct{ st *memStore }

func (f *fakeMachineRepo) GetByID(machineID int) (*entity.Machine, error) {
	f.st.calls = append(f.st.calls, "machine.GetByID")
	return f.st.machines[machineID], nil
}

type fakeItemRepo struct{ st *memStore }

func (f *fakeItemRepo) Search(term string, limit int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range f.st.items {
		if it.IsActive {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeItemRepo) GetUnitCost(itemID int) (*decimal.Decimal, error) {
	f.st.calls = append(f.st.calls, "item.GetUnitCost")
	it, ok := f.st.items[itemID]
	if !ok {
		return nil, nil
	}
	cost := it.UnitCost
	return &cost, nil
}

type fakeStockRepo struct{ st *memStore }

func (f *fakeStockRepo) GetForUpdate(machineID, itemID int) (*entity.Stock, error) {
	f.st.calls = append(f.st.calls, "stock.GetForUpdate")
	qty, ok := f.st.stock[stockKey{machineID, itemID}]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{MachineID: machineID, ItemID: itemID, Qty: qty}, nil
}

func (f *fakeStockRepo) Decrement(machineID, itemID int) error {
	f.st.calls = append(f.st.calls, "stock.Decrement")
	f.st.stock[stockKey{machineID, itemID}]--
	return nil
}

func (f *fakeStockRepo) UpsertAdd(machineID, itemID, qty int) error {
	f.st.calls = append(f.st.calls, "stock.UpsertAdd")
	f.st.stock[stockKey{machineID, itemID}] += qty
	return nil
}

func (f *fakeStockRepo) MachineStock(machineID int) ([]*entity.StockLine, error) {
	var out []*entity.StockLine
	for k, qty := range f.st.stock {
		if k.machineID != machineID {
			continue
		}
		name := fmt.Sprintf("item-%d", k.itemID)
		if it, ok := f.st.items[k.itemID]; ok {
			name = it.Name
		}
		out = append(out, &entity.StockLine{ItemID: k.itemID, ItemName: name, Qty: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemName < out[j].ItemName })
	return out, nil
}

func (f *fakeStockRepo) LowStock(threshold int) ([]*entity.LowStockLine, error) {
	var out []*entity.LowStockLine
	for k, qty := range f.st.stock {
		if qty >= threshold {
			continue
		}
		location := ""
		if m, ok := f.st.machines[k.machineID]; ok {
			location = m.Location
		}
		name := fmt.Sprintf("item-%d", k.itemID)
		if it, ok := f.st.items[k.itemID]; ok {
			name = it.Name
		}
		out = append(out, &entity.LowStockLine{Location: location, ItemName: name, Qty: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].ItemName < out[j].ItemName
	})
	return out, nil
}

type fakeDispenseRepo struct{ st *memStore }

func (f *fakeDispenseRepo) Create(d *entity.Dispense) error {
	f.st.calls = append(f.st.calls, "dispense.Create")
	f.st.receivedDispenseIDs = append(f.st.receivedDispenseIDs, d.ID)
	// Como la columna serial: la base asigna el identificador.
	d.ID = f.st.nextDispenseID
	f.st.nextDispenseID++
	cp := *d
	f.st.dispenses = append(f.st.dispenses, &cp)
	return nil
}

type fakeRestockRepo struct{ st *memStore }

func (f *fakeRestockRepo) CreateHeader(staffID, machineID int) (int64, error) {
	f.st.calls = append(f.st.calls, "restock.CreateHeader")
	id := f.st.nextRestockID
	f.st.nextRestockID++
	f.st.restocks = append(f.st.restocks, &entity.Restock{ID: id, StaffID: staffID, MachineID: machineID})
	return id, nil
}

func (f *fakeRestockRepo) CreateLine(line *entity.RestockLine) error {
	f.st.calls = append(f.st.calls, "restock.CreateLine")
	f.st.lineInserts++
	if f.st.failOnLineInsert > 0 && f.st.lineInserts == f.st.failOnLineInsert {
		return errInjected
	}
	cp := *line
	f.st.restockLines = append(f.st.restockLines, &cp)
	return nil
}

// fakeTxRunner simula la semántica todo-o-nada: snapshot antes del callback,
// restore si devuelve error. Cuenta commits y rollbacks.
type fakeTxRunner struct {
	st        *memStore
	commits   int
	rollbacks int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	machineRepo repository.MachineRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
	dispenseRepo repository.DispenseRepository,
	restockRepo repository.RestockRepository,
) error) error {
	snap := r.st.snapshot()
	err := fn(
		&fakeMachineRepo{r.st},
		&fakeStockRepo{r.st},
		&fakeItemRepo{r.st},
		&fakeDispenseRepo{r.st},
		&fakeRestockRepo{r.st},
	)
	if err != nil {
		r.st.restore(snap)
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}

var _ vending.TxRunner = (*fakeTxRunner)(nil)
