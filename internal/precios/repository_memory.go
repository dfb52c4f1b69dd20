package precios

import "context"

// InMemoryRepository backs the tests.
type InMemoryRepository struct {
	tipos map[string]TipoCarne
}

func NewInMemoryRepository(rows []TipoCarne) *InMemoryRepository {
	r := &InMemoryRepository{tipos: make(map[string]TipoCarne)}
	for _, row := range rows {
		r.tipos[row.ID] = row
	}
	return r
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]TipoCarne, error) {
	var out []TipoCarne
	for _, t := range r.tipos {
		out = append(out, t)
	}
	return out, nil
}

func (r *InMemoryRepository) UpdatePrecio(ctx context.Context, id string, precioKg float64) error {
	t, ok := r.tipos[id]
	if !ok {
		return ErrTipoCarneNotFound
	}
	t.PrecioKg = precioKg
	r.tipos[id] = t
	return nil
}
