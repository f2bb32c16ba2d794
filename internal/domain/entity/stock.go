package entity

// Stock representa la cantidad disponible de un artículo en una máquina.
// Clave compuesta (MachineID, ItemID). Invariante: Qty nunca negativa;
// un dispense que la violaría se rechaza antes de escribir.
type Stock struct {
	MachineID int
	ItemID    int
	Qty       int
}

// StockLine fila del reporte de stock de una máquina (join con item).
type StockLine struct {
	ItemID   int
	ItemName string
	Qty      int
}

// LowStockLine fila del reporte de bajo stock (join con machine e item).
type LowStockLine struct {
	Location string
	ItemName string
	Qty      int
}
