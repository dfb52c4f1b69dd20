package precios

import "context"

// Repository defines the data-access contract for the price table.
type Repository interface {
	ListAll(ctx context.Context) ([]TipoCarne, error)
	UpdatePrecio(ctx context.Context, id string, precioKg float64) error
}
