package cli

import (
	"strconv"
	"strings"

	"github.com/grabgo/vending-cli/internal/application/vending"
	"github.com/grabgo/vending-cli/internal/domain"
)

// ParseRestockLine interpreta una línea "item_id,qty" tecleada por el
// operador. Devuelve ErrMalformedInput si no son exactamente dos enteros;
// la línea se descarta y la recolección continúa.
func ParseRestockLine(line string) (vending.RestockLineInput, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return vending.RestockLineInput{}, domain.ErrMalformedInput
	}
	itemID, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return vending.RestockLineInput{}, domain.ErrMalformedInput
	}
	qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return vending.RestockLineInput{}, domain.ErrMalformedInput
	}
	return vending.RestockLineInput{ItemID: itemID, Qty: qty}, nil
}
