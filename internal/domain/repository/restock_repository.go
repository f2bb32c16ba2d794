package repository

import "github.com/grabgo/vending-cli/internal/domain/entity"

// RestockRepository puerto append-only sobre restock y restockline.
type RestockRepository interface {
	// CreateHeader inserta la cabecera con timestamp del servidor y
	// devuelve el restock_id generado por la base.
	CreateHeader(staffID, machineID int) (int64, error)

	// CreateLine inserta una línea de reposición referenciando la cabecera.
	CreateLine(line *entity.RestockLine) error
}
