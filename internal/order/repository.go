package order

import "context"

// Repository defines the persistence contract for pedidos. Submission is
// two sequential writes, parent first, then the line items.
type Repository interface {
	InsertPedido(ctx context.Context, p *Pedido) error
	InsertItems(ctx context.Context, pedidoID string, items []PedidoItem) error
	ListByUser(ctx context.Context, userID string) ([]Pedido, error)
}
