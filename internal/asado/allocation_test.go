package asado

import (
	"errors"
	"testing"
)

func TestAllocationRejectsOverBudget(t *testing.T) {
	a := NewAllocation()

	if err := a.SetCorte("Vacío", 60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.SetAchura("Mollejas", 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 60 + 30 + 20 = 110, must be refused.
	err := a.SetCorte("Entraña", 20)
	if !errors.Is(err, ErrPresupuestoExcedido) {
		t.Fatalf("expected ErrPresupuestoExcedido, got %v", err)
	}

	// Prior state untouched.
	if a.Allocated() != 90 {
		t.Fatalf("allocation mutated after rejected update: %f", a.Allocated())
	}
	if _, ok := a.Cortes["Entraña"]; ok {
		t.Fatal("rejected cut was stored")
	}
}

func TestAllocationUpdateReplacesOwnShare(t *testing.T) {
	a := NewAllocation()

	if err := a.SetCorte("Vacío", 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Lowering an existing share must not count the old value against the
	// budget.
	if err := a.SetCorte("Vacío", 100); err != nil {
		t.Fatalf("raising own share to exactly 100 should pass: %v", err)
	}
	if a.Restante() != 0 {
		t.Fatalf("expected 0 restante, got %f", a.Restante())
	}
}

func TestAllocationRejectsUnknownNames(t *testing.T) {
	a := NewAllocation()

	if err := a.SetCorte("Lomo de Cerdo", 10); !errors.Is(err, ErrCorteDesconocido) {
		t.Fatalf("expected ErrCorteDesconocido, got %v", err)
	}
	if err := a.SetAchura("Provoleta", 10); !errors.Is(err, ErrAchuraDesconocida) {
		t.Fatalf("expected ErrAchuraDesconocida, got %v", err)
	}
}

func TestAllocationRejectsInvalidPercent(t *testing.T) {
	a := NewAllocation()

	if err := a.SetCorte("Vacío", -5); !errors.Is(err, ErrPorcentajeInvalido) {
		t.Fatalf("expected ErrPorcentajeInvalido, got %v", err)
	}
	if err := a.SetCorte("Vacío", 101); !errors.Is(err, ErrPorcentajeInvalido) {
		t.Fatalf("expected ErrPorcentajeInvalido, got %v", err)
	}
}

func TestAllocationZeroingRemovesEntry(t *testing.T) {
	a := NewAllocation()

	if err := a.SetAchura("Riñones", 15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.SetAchura("Riñones", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.Achuras["Riñones"]; ok {
		t.Fatal("zeroed achura still present")
	}
}

func TestDistributeMatchesPercentages(t *testing.T) {
	a := NewAllocation()
	_ = a.SetCorte("Asado de Tira", 50)
	_ = a.SetCorte("Vacío", 20)
	_ = a.SetAchura("Chinchulines", 30)

	cortes, achuras := a.Distribute(3.0)

	if !almostEqual(cortes["Asado de Tira"], 1.5) {
		t.Errorf("Asado de Tira: expected 1.5, got %f", cortes["Asado de Tira"])
	}
	if !almostEqual(cortes["Vacío"], 0.6) {
		t.Errorf("Vacío: expected 0.6, got %f", cortes["Vacío"])
	}
	if !almostEqual(achuras["Chinchulines"], 0.9) {
		t.Errorf("Chinchulines: expected 0.9, got %f", achuras["Chinchulines"])
	}

	var total float64
	for _, kg := range cortes {
		total += kg
	}
	for _, kg := range achuras {
		total += kg
	}
	if !almostEqual(total, 3.0) {
		t.Fatalf("fully allocated distribution should sum to base: got %f", total)
	}
}

func TestAllocationFromMapsValidatesBudget(t *testing.T) {
	_, err := AllocationFromMaps(
		map[string]float64{"Vacío": 70, "Matambre": 20},
		map[string]float64{"Mollejas": 20},
	)
	if !errors.Is(err, ErrPresupuestoExcedido) {
		t.Fatalf("expected ErrPresupuestoExcedido, got %v", err)
	}

	a, err := AllocationFromMaps(
		map[string]float64{"Vacío": 70},
		map[string]float64{"Mollejas": 30},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Restante() != 0 {
		t.Fatalf("expected 0 restante, got %f", a.Restante())
	}
}
