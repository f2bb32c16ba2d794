package entity

import "time"

// Restock representa la cabecera de una reposición: quién, qué máquina y cuándo.
// El identificador lo genera la base (RETURNING) y se usa para las líneas.
type Restock struct {
	ID        int64
	StaffID   int
	MachineID int
	TS        time.Time
}

// RestockLine una línea de reposición: artículo y cantidad tal como la
// tecleó el operador. Se conserva el historial exacto aunque un artículo
// se repita dentro de la misma reposición.
type RestockLine struct {
	RestockID int64
	ItemID    int
	Qty       int
}
