package postgres

import (
	"context"
	"fmt"

	"github.com/grabgo/vending-cli/internal/domain/entity"
	"github.com/grabgo/vending-cli/internal/domain/repository"
)

var _ repository.RestockRepository = (*RestockRepo)(nil)

// RestockRepo implementación append-only sobre restock y restockline (usable con pool o tx).
type RestockRepo struct {
	q Querier
}

// NewRestockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRestockRepository(q Querier) *RestockRepo {
	return &RestockRepo{q: q}
}

// CreateHeader inserta la cabecera con timestamp del servidor y devuelve el
// restock_id generado por la base para enhebrarlo en las líneas.
func (r *RestockRepo) CreateHeader(staffID, machineID int) (int64, error) {
	query := `
		INSERT INTO restock (staff_id, machine_id, ts)
		VALUES ($1, $2, NOW()) RETURNING restock_id`
	var id int64
	if err := r.q.QueryRow(context.Background(), query, staffID, machineID).Scan(&id); err != nil {
		return 0, fmt.Errorf("create restock header: %w", err)
	}
	return id, nil
}

// CreateLine inserta una línea de reposición referenciando la cabecera.
func (r *RestockRepo) CreateLine(line *entity.RestockLine) error {
	query := `INSERT INTO restockline (restock_id, item_id, qty) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, line.RestockID, line.ItemID, line.Qty)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("create restock line: referencia inexistente: %w", err)
		}
		return fmt.Errorf("create restock line: %w", err)
	}
	return nil
}
