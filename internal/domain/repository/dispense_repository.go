package repository

import "github.com/grabgo/vending-cli/internal/domain/entity"

// DispenseRepository puerto append-only sobre la tabla dispense.
type DispenseRepository interface {
	// Create inserta el evento de dispensado. El timestamp lo asigna el
	// servidor (NOW()) y el identificador lo genera la base; a la vuelta
	// queda en d.ID.
	Create(d *entity.Dispense) error
}
