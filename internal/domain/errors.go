package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se comparan con errors.Is
// y cada uno tiene un mensaje de una línea apto para el operador.
var (
	ErrMachineNotFound = errors.New("machine not found")
	ErrMachineInactive = errors.New("machine is not active")
	ErrOutOfStock      = errors.New("out of stock")
	ErrMalformedInput  = errors.New("bad format; use item_id,qty")
	ErrInvalidInput    = errors.New("invalid input")
)
