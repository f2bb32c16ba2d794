package postgres

import (
	"context"
	"fmt"

	"github.com/grabgo/vending-cli/internal/domain/entity"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

var _ repository.DispenseRepository = (*DispenseRepo)(nil)

// DispenseRepo implementación append-only sobre la tabla dispense (usable con pool o tx).
type DispenseRepo struct {
	q Querier
}

// NewDispenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDispenseRepository(q Querier) *DispenseRepo {
	return &DispenseRepo{q: q}
}

// Create inserta el evento con timestamp del servidor (NOW()) y captura el
// dispense_id generado por la base en d.ID. PriceCharged nil se inserta como NULL.
func (r *DispenseRepo) Create(d *entity.Dispense) error {
	query := `
		INSERT INTO dispense (customer_id, machine_id, item_id, ts, price_charged, payment_method)
		VALUES ($1, $2, $3, NOW(), $4, $5)
		RETURNING dispense_id`
	err := r.q.QueryRow(context.Background(), query,
		d.CustomerID, d.MachineID, d.ItemID, d.PriceCharged, d.PaymentMethod,
	).Scan(&d.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("create dispense: referencia inexistente: %w", err)
		}
		return fmt.Errorf("create dispense: %w", err)
	}
	return nil
}
