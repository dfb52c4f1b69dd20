package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/obli137/calculasado/internal/precios"
)

var (
	ErrNoAutenticado = errors.New("debes iniciar sesión para confirmar la compra")
	ErrSubmitFailed  = errors.New("hubo un error al procesar tu pedido")
)

type Service struct {
	pedidos Repository
	precios precios.Repository
}

func NewService(pedidos Repository, preciosRepo precios.Repository) *Service {
	return &Service{pedidos: pedidos, precios: preciosRepo}
}

// --------------------------------------------------
// Resumen (summary stage)
// --------------------------------------------------

// Resumen prices an order against the current table. The table load must
// succeed before any total is produced; a load failure is the caller's error,
// never a zero-priced quote.
func (s *Service) Resumen(ctx context.Context, o Order) (*precios.Quote, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	q := s.quote(o, table)
	return &q, nil
}

// --------------------------------------------------
// Submit (two sequential writes)
// --------------------------------------------------

// Submit runs the checkout to completion: price, validate preconditions,
// insert the pedido, insert the items. Any failing precondition blocks
// before the first write. A failing write leaves the checkout at PRICED so
// the user can retry; the caller gets one generic error either way.
func (s *Service) Submit(ctx context.Context, userID string, o Order, dir DireccionEnvio) (*Pedido, error) {
	if userID == "" {
		return nil, ErrNoAutenticado
	}
	if err := dir.Validate(); err != nil {
		return nil, err
	}

	ck := NewCheckout()
	if err := ck.SetOrder(o); err != nil {
		return nil, err
	}

	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	if err := ck.Price(s.quote(o, table)); err != nil {
		return nil, err
	}

	pedido := &Pedido{
		UserID:           userID,
		Estado:           EstadoPendiente,
		DireccionEntrega: dir.Calle + " " + dir.Numero,
		Ciudad:           dir.Ciudad,
		CodigoPostal:     dir.CodigoPostal,
		Telefono:         dir.Telefono,
		MetodoPago:       dir.MetodoPago,
		Notas:            dir.Notas,
		Subtotal:         ck.Quote.Subtotal,
		CostoEnvio:       ck.Quote.CostoEnvio,
		Total:            ck.Quote.Total,
		FechaEntrega:     dir.FechaEntrega,
	}

	if err := s.pedidos.InsertPedido(ctx, pedido); err != nil {
		log.Printf("insert pedido failed: %v", err)
		return nil, ErrSubmitFailed
	}

	items := itemsFrom(ck.Quote, pedido.ID)
	if err := s.pedidos.InsertItems(ctx, pedido.ID, items); err != nil {
		log.Printf("insert pedido items failed (pedido %s): %v", pedido.ID, err)
		return nil, ErrSubmitFailed
	}
	pedido.Items = items

	if err := ck.Submit(); err != nil {
		return nil, err
	}
	return pedido, nil
}

// ListMisCompras returns the user's past pedidos, newest first.
func (s *Service) ListMisCompras(ctx context.Context, userID string) ([]Pedido, error) {
	if userID == "" {
		return nil, ErrNoAutenticado
	}
	return s.pedidos.ListByUser(ctx, userID)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (s *Service) loadTable(ctx context.Context) (precios.PriceTable, error) {
	rows, err := s.precios.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return precios.TableFrom(rows), nil
}

func (s *Service) quote(o Order, table precios.PriceTable) precios.Quote {
	return precios.QuoteBasket(
		o.DistribucionCortes,
		o.DistribucionAchuras,
		o.DistribucionEmbutidos.Chorizo,
		o.DistribucionEmbutidos.Morcilla,
		table,
	)
}

// itemsFrom converts quote lines into persistable items. Lines quoted at
// zero because the table has no row for them cannot reference a tipo_carne
// id; they are logged and skipped.
func itemsFrom(q precios.Quote, pedidoID string) []PedidoItem {
	var items []PedidoItem
	for _, it := range q.Items {
		if it.TipoCarneID == "" {
			log.Printf("pedido %s: %q sin precio en tipos_carnes, no se persiste", pedidoID, it.Nombre)
			continue
		}
		items = append(items, PedidoItem{
			PedidoID:       pedidoID,
			TipoCarneID:    it.TipoCarneID,
			CantidadKg:     it.CantidadKg,
			PrecioUnitario: it.PrecioKg,
			Subtotal:       it.Subtotal,
		})
	}
	return items
}
