package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) InsertPedido(ctx context.Context, p *Pedido) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO pedidos (
			id, user_id, estado, direccion_entrega, ciudad, codigo_postal,
			telefono, metodo_pago, notas, subtotal, costo_envio, total,
			fecha_entrega
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		p.ID, p.UserID, p.Estado, p.DireccionEntrega, p.Ciudad, p.CodigoPostal,
		p.Telefono, p.MetodoPago, p.Notas, p.Subtotal, p.CostoEnvio, p.Total,
		p.FechaEntrega,
	)
	return err
}

func (r *PostgresRepository) InsertItems(ctx context.Context, pedidoID string, items []PedidoItem) error {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		_, err := r.db.Exec(ctx, `
			INSERT INTO pedidos_items (
				id, pedido_id, tipo_carne_id, cantidad_kg,
				precio_unitario, subtotal
			)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			items[i].ID, pedidoID, items[i].TipoCarneID, items[i].CantidadKg,
			items[i].PrecioUnitario, items[i].Subtotal,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Pedido, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, estado, direccion_entrega, ciudad, codigo_postal,
		       telefono, metodo_pago, notas, subtotal, costo_envio, total,
		       fecha_entrega, created_at
		FROM pedidos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pedidos []Pedido
	for rows.Next() {
		var p Pedido
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Estado, &p.DireccionEntrega, &p.Ciudad,
			&p.CodigoPostal, &p.Telefono, &p.MetodoPago, &p.Notas,
			&p.Subtotal, &p.CostoEnvio, &p.Total, &p.FechaEntrega, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		pedidos = append(pedidos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range pedidos {
		items, err := r.listItems(ctx, pedidos[i].ID)
		if err != nil {
			return nil, err
		}
		pedidos[i].Items = items
	}
	return pedidos, nil
}

func (r *PostgresRepository) listItems(ctx context.Context, pedidoID string) ([]PedidoItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, pedido_id, tipo_carne_id, cantidad_kg, precio_unitario, subtotal
		FROM pedidos_items
		WHERE pedido_id = $1
	`, pedidoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PedidoItem
	for rows.Next() {
		var it PedidoItem
		if err := rows.Scan(
			&it.ID, &it.PedidoID, &it.TipoCarneID,
			&it.CantidadKg, &it.PrecioUnitario, &it.Subtotal,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
