package asado

import (
	"errors"
	"fmt"
)

// The cuts and achuras a user can allocate meat to. These mirror the rows
// seeded in tipos_carnes; allocation rejects anything outside the set.
var (
	Cortes = []string{
		"Asado de Tira",
		"Vacío",
		"Matambre",
		"Entraña",
		"Bondiola",
		"Colita de Cuadril",
	}

	Achuras = []string{
		"Chinchulines",
		"Mollejas",
		"Riñones",
	}
)

var (
	ErrPresupuestoExcedido = errors.New("la distribución supera el 100% del total")
	ErrCorteDesconocido    = errors.New("corte desconocido")
	ErrAchuraDesconocida   = errors.New("achura desconocida")
	ErrPorcentajeInvalido  = errors.New("el porcentaje debe estar entre 0 y 100")
)

func isCorte(nombre string) bool {
	for _, c := range Cortes {
		if c == nombre {
			return true
		}
	}
	return false
}

func isAchura(nombre string) bool {
	for _, a := range Achuras {
		if a == nombre {
			return true
		}
	}
	return false
}

// Allocation maps cut and achura names to their percentage share of the
// estimated meat mass. Cut percentages plus achura percentages can never
// exceed 100; updates that would break that are rejected without touching
// the prior state.
type Allocation struct {
	Cortes  map[string]float64 `json:"cortes"`
	Achuras map[string]float64 `json:"achuras"`
}

func NewAllocation() *Allocation {
	return &Allocation{
		Cortes:  make(map[string]float64),
		Achuras: make(map[string]float64),
	}
}

// Allocated returns the percentage already assigned across both categories.
func (a *Allocation) Allocated() float64 {
	var sum float64
	for _, pct := range a.Cortes {
		sum += pct
	}
	for _, pct := range a.Achuras {
		sum += pct
	}
	return sum
}

// Restante is the percentage still free to assign.
func (a *Allocation) Restante() float64 {
	return 100 - a.Allocated()
}

// SetCorte updates one cut's share. The update is refused when it would push
// the combined total past 100.
func (a *Allocation) SetCorte(nombre string, pct float64) error {
	if !isCorte(nombre) {
		return fmt.Errorf("%w: %s", ErrCorteDesconocido, nombre)
	}
	return a.set(a.Cortes, nombre, pct)
}

// SetAchura updates one achura's share under the same budget.
func (a *Allocation) SetAchura(nombre string, pct float64) error {
	if !isAchura(nombre) {
		return fmt.Errorf("%w: %s", ErrAchuraDesconocida, nombre)
	}
	return a.set(a.Achuras, nombre, pct)
}

func (a *Allocation) set(m map[string]float64, nombre string, pct float64) error {
	if pct < 0 || pct > 100 {
		return ErrPorcentajeInvalido
	}
	if a.Allocated()-m[nombre]+pct > 100 {
		return ErrPresupuestoExcedido
	}
	if pct == 0 {
		delete(m, nombre)
		return nil
	}
	m[nombre] = pct
	return nil
}

// AllocationFromMaps rebuilds an Allocation from raw request maps, applying
// every entry through the budget checks. Used by the HTTP layer, which
// receives whole maps rather than incremental slider updates.
func AllocationFromMaps(cortes, achuras map[string]float64) (*Allocation, error) {
	a := NewAllocation()
	for nombre, pct := range cortes {
		if err := a.SetCorte(nombre, pct); err != nil {
			return nil, err
		}
	}
	for nombre, pct := range achuras {
		if err := a.SetAchura(nombre, pct); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Distribute converts the percentage shares into kilograms of the given base
// mass. Only items with a positive share appear in the result.
func (a *Allocation) Distribute(baseKg float64) (cortesKg, achurasKg map[string]float64) {
	cortesKg = make(map[string]float64)
	achurasKg = make(map[string]float64)
	for nombre, pct := range a.Cortes {
		if pct > 0 {
			cortesKg[nombre] = baseKg * pct / 100
		}
	}
	for nombre, pct := range a.Achuras {
		if pct > 0 {
			achurasKg[nombre] = baseKg * pct / 100
		}
	}
	return cortesKg, achurasKg
}
