package order

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs the tests. failPedido / failItems let tests force
// either of the two submission writes to fail.
type InMemoryRepository struct {
	pedidos map[string]*Pedido

	failPedido bool
	failItems  bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{pedidos: make(map[string]*Pedido)}
}

func (r *InMemoryRepository) FailNextPedido() { r.failPedido = true }
func (r *InMemoryRepository) FailNextItems()  { r.failItems = true }

func (r *InMemoryRepository) InsertPedido(ctx context.Context, p *Pedido) error {
	if r.failPedido {
		r.failPedido = false
		return errors.New("insert pedido failed")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	stored := *p
	r.pedidos[p.ID] = &stored
	return nil
}

func (r *InMemoryRepository) InsertItems(ctx context.Context, pedidoID string, items []PedidoItem) error {
	if r.failItems {
		r.failItems = false
		return errors.New("insert items failed")
	}
	p, ok := r.pedidos[pedidoID]
	if !ok {
		return errors.New("pedido not found")
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].PedidoID = pedidoID
	}
	p.Items = append(p.Items, items...)
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Pedido, error) {
	var out []Pedido
	for _, p := range r.pedidos {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
