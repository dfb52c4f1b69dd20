package order

import (
	"errors"
	"fmt"

	"github.com/obli137/calculasado/internal/asado"
)

// Tolerance for comparing allocated kilograms against the estimate.
const kgEpsilon = 1e-9

var ErrDistribucionIncompleta = errors.New("distribución incompleta")

// Compose snapshots an estimate plus its allocation into an Order. It is a
// pre-condition gate: when the allocated mass falls short of the estimated
// total it refuses and reports how many kg are still unassigned, so the
// caller can surface "te faltan N kg por distribuir". Over-allocation cannot
// happen, the allocator's budget invariant prevents it upstream.
func Compose(est asado.Estimate, alloc *asado.Allocation, split asado.EmbutidoSplit) (Order, error) {
	cortesKg, achurasKg := alloc.Distribute(est.CarneKg)

	var asignado float64
	for _, kg := range cortesKg {
		asignado += kg
	}
	for _, kg := range achurasKg {
		asignado += kg
	}

	if faltante := est.CarneKg - asignado; faltante > kgEpsilon {
		return Order{}, fmt.Errorf("%w: faltan %.2f kg por distribuir", ErrDistribucionIncompleta, faltante)
	}

	chorizos, morcillas := split.Units(est.EmbutidoUnits)

	return Order{
		DistribucionCortes:  cortesKg,
		DistribucionAchuras: achurasKg,
		DistribucionEmbutidos: EmbutidoUnits{
			Chorizo:  chorizos,
			Morcilla: morcillas,
		},
		PanKg: est.PanKg,
	}, nil
}
