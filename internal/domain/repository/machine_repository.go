package repository

import "github.com/grabgo/vending-cli/internal/domain/entity"

// MachineRepository puerto de lectura de máquinas expendedoras.
type MachineRepository interface {
	// GetByID devuelve la máquina, o nil si no existe.
	GetByID(machineID int) (*entity.Machine, error)
}
