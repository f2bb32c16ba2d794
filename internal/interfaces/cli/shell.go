package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/grabgo/vending-cli/internal/application/vending"
	"github.com/grabgo/vending-cli/internal/domain"
)

// Shell es el menú interactivo de la herramienta. Lee opciones numeradas de
// la entrada, ejecuta la acción y vuelve al menú; cada fallo es una sola
// línea impresa, nunca estado parcial.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
	app *App
}

// NewShell construye el shell sobre los streams dados (stdin/stdout en
// producción, buffers en tests).
func NewShell(in io.Reader, out io.Writer, app *App) *Shell {
	return &Shell{in: bufio.NewScanner(in), out: out, app: app}
}

// Run ejecuta el bucle del menú hasta que el operador elige 0 o se agota la
// entrada. Síncrono y bloqueante: cada acción termina antes del siguiente prompt.
func (s *Shell) Run(ctx context.Context) error {
	for {
		choice, ok := s.menu()
		if !ok {
			return nil
		}
		switch choice {
		case "0":
			fmt.Fprintln(s.out, "Bye.")
			return nil
		case "1":
			s.searchItems()
		case "2":
			s.viewMachineStock()
		case "3":
			s.lowStock()
		case "4":
			s.dispenseItem(ctx)
		case "5":
			s.restockMachine(ctx)
		default:
			fmt.Fprintln(s.out, "Unknown option.")
		}
	}
}

func (s *Shell) menu() (string, bool) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== Grab & Go CLI ===")
	fmt.Fprintln(s.out, "1) Search active items")
	fmt.Fprintln(s.out, "2) View machine stock")
	fmt.Fprintf(s.out, "3) Low-stock report (< %d)\n", s.app.Cfg.Vending.LowStockThreshold)
	fmt.Fprintln(s.out, "4) Dispense item")
	fmt.Fprintln(s.out, "5) Restock machine")
	fmt.Fprintln(s.out, "0) Exit")
	return s.prompt("Choose: ")
}

// prompt imprime la etiqueta y lee una línea recortada. ok=false al agotarse la entrada.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptInt lee una línea y la convierte a entero.
func (s *Shell) promptInt(label string) (int, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Shell) searchItems() {
	term, ok := s.prompt("Keyword (name/category): ")
	if !ok {
		return
	}
	items, err := s.app.Reporting.SearchItems(term)
	if err != nil {
		s.app.Log.Error().Err(err).Str("term", term).Msg("search items")
		fmt.Fprintf(s.out, "Search failed: %v\n", err)
		return
	}
	printItems(s.out, items)
}

func (s *Shell) viewMachineStock() {
	machineID, ok := s.promptInt("Machine ID: ")
	if !ok {
		fmt.Fprintln(s.out, "No stock for that machine (or invalid ID).")
		return
	}
	lines, err := s.app.Reporting.MachineStock(machineID)
	if err != nil {
		s.app.Log.Error().Err(err).Int("machine_id", machineID).Msg("machine stock")
		fmt.Fprintf(s.out, "Stock report failed: %v\n", err)
		return
	}
	printMachineStock(s.out, lines)
}

func (s *Shell) lowStock() {
	lines, err := s.app.Reporting.LowStock()
	if err != nil {
		s.app.Log.Error().Err(err).Msg("low stock")
		fmt.Fprintf(s.out, "Low-stock report failed: %v\n", err)
		return
	}
	printLowStock(s.out, lines)
}

func (s *Shell) dispenseItem(ctx context.Context) {
	customerID, ok := s.promptInt("Customer ID: ")
	if !ok {
		fmt.Fprintf(s.out, "Failed to dispense: %v\n", domain.ErrInvalidInput)
		return
	}
	machineID, ok := s.promptInt("Machine ID: ")
	if !ok {
		fmt.Fprintf(s.out, "Failed to dispense: %v\n", domain.ErrInvalidInput)
		return
	}
	itemID, ok := s.promptInt("Item ID: ")
	if !ok {
		fmt.Fprintf(s.out, "Failed to dispense: %v\n", domain.ErrInvalidInput)
		return
	}

	// opID correlaciona las líneas de log de esta invocación del workflow.
	opID := uuid.New().String()
	err := s.app.Dispense.Dispense(ctx, vending.DispenseInput{
		CustomerID: customerID,
		MachineID:  machineID,
		ItemID:     itemID,
	})
	if err != nil {
		s.app.Log.Error().Err(err).
			Str("op_id", opID).
			Int("customer_id", customerID).
			Int("machine_id", machineID).
			Int("item_id", itemID).
			Msg("dispense failed")
		fmt.Fprintf(s.out, "Failed to dispense: %v\n", err)
		return
	}
	s.app.Log.Debug().
		Str("op_id", opID).
		Int("machine_id", machineID).
		Int("item_id", itemID).
		Msg("dispensed")
	fmt.Fprintln(s.out, "Dispensed successfully.")
}

func (s *Shell) restockMachine(ctx context.Context) {
	staffID, ok := s.promptInt("Staff ID: ")
	if !ok {
		fmt.Fprintf(s.out, "Failed to restock: %v\n", domain.ErrInvalidInput)
		return
	}
	machineID, ok := s.promptInt("Machine ID: ")
	if !ok {
		fmt.Fprintf(s.out, "Failed to restock: %v\n", domain.ErrInvalidInput)
		return
	}

	fmt.Fprintln(s.out, "Enter item_id,qty (e.g., 1,10). Blank line to finish.")
	lines := s.collectLines()

	if len(lines) == 0 {
		fmt.Fprintln(s.out, "No lines entered.")
		return
	}

	opID := uuid.New().String()
	err := s.app.Restock.Restock(ctx, vending.RestockInput{
		StaffID:   staffID,
		MachineID: machineID,
		Lines:     lines,
	})
	if err != nil {
		s.app.Log.Error().Err(err).
			Str("op_id", opID).
			Int("staff_id", staffID).
			Int("machine_id", machineID).
			Int("lines", len(lines)).
			Msg("restock failed")
		fmt.Fprintf(s.out, "Failed to restock: %v\n", err)
		return
	}
	s.app.Log.Debug().
		Str("op_id", opID).
		Int("machine_id", machineID).
		Int("lines", len(lines)).
		Msg("restock recorded")
	fmt.Fprintln(s.out, "Restock recorded.")
}

// collectLines lee entradas item_id,qty hasta línea en blanco (o EOF).
// Las mal formadas se reportan y descartan en el momento; la recolección sigue.
func (s *Shell) collectLines() []vending.RestockLineInput {
	var lines []vending.RestockLineInput
	for {
		raw, ok := s.prompt("> ")
		if !ok || raw == "" {
			return lines
		}
		line, err := ParseRestockLine(raw)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		lines = append(lines, line)
	}
}
