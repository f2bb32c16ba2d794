package entity

// MachineStatusActive es el único estado que habilita el dispensado;
// cualquier otro valor de status se trata como máquina inactiva.
const MachineStatusActive = "active"

// Machine representa una máquina expendedora de la red. Solo lectura para el core.
type Machine struct {
	ID       int
	Location string
	Status   string
}

// IsActive indica si la máquina puede dispensar.
func (m Machine) IsActive() bool {
	return m.Status == MachineStatusActive
}
