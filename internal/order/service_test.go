package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/obli137/calculasado/internal/precios"
)

func testPrecios() *precios.InMemoryRepository {
	return precios.NewInMemoryRepository([]precios.TipoCarne{
		{ID: "1", Nombre: "Vacío", Categoria: precios.CategoriaCarne, PrecioKg: 8000},
		{ID: "2", Nombre: "Mollejas", Categoria: precios.CategoriaAchura, PrecioKg: 12000},
		{ID: "3", Nombre: "Chorizo", Categoria: precios.CategoriaEmbutido, PrecioKg: 5000},
		{ID: "4", Nombre: "Morcilla", Categoria: precios.CategoriaEmbutido, PrecioKg: 4000},
	})
}

func testOrder() Order {
	return Order{
		DistribucionCortes:    map[string]float64{"Vacío": 1.5},
		DistribucionAchuras:   map[string]float64{"Mollejas": 0.5},
		DistribucionEmbutidos: EmbutidoUnits{Chorizo: 2, Morcilla: 1},
		PanKg:                 1.4,
	}
}

func testDireccion() DireccionEnvio {
	return DireccionEnvio{
		Calle:        "Av. Corrientes",
		Numero:       "1234",
		Ciudad:       "Buenos Aires",
		CodigoPostal: "C1043",
		Telefono:     "11-5555-0000",
		MetodoPago:   PagoEfectivo,
		FechaEntrega: time.Now().Add(48 * time.Hour),
	}
}

func TestSubmitPersistsPedidoAndItems(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, testPrecios())

	pedido, err := service.Submit(context.Background(), "user-1", testOrder(), testDireccion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pedido.Estado != EstadoPendiente {
		t.Fatalf("expected estado PENDIENTE, got %s", pedido.Estado)
	}
	if len(pedido.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(pedido.Items))
	}

	// 1.5*8000 + 0.5*12000 + 2*0.15*5000 + 1*0.15*4000 = 20100
	if pedido.Subtotal != 20100 {
		t.Fatalf("expected subtotal 20100, got %f", pedido.Subtotal)
	}
	if pedido.Total != 20100+precios.CostoEnvio {
		t.Fatalf("expected total with envío, got %f", pedido.Total)
	}
	if pedido.DireccionEntrega != "Av. Corrientes 1234" {
		t.Fatalf("unexpected dirección: %s", pedido.DireccionEntrega)
	}
}

func TestSubmitRequiresUser(t *testing.T) {
	service := NewService(NewInMemoryRepository(), testPrecios())

	_, err := service.Submit(context.Background(), "", testOrder(), testDireccion())
	if !errors.Is(err, ErrNoAutenticado) {
		t.Fatalf("expected ErrNoAutenticado, got %v", err)
	}
}

func TestSubmitRequiresCompleteDireccion(t *testing.T) {
	service := NewService(NewInMemoryRepository(), testPrecios())

	dir := testDireccion()
	dir.Ciudad = ""

	_, err := service.Submit(context.Background(), "user-1", testOrder(), dir)
	if !errors.Is(err, ErrDireccionIncompleta) {
		t.Fatalf("expected ErrDireccionIncompleta, got %v", err)
	}
}

func TestSubmitRejectsInvalidMetodoPago(t *testing.T) {
	service := NewService(NewInMemoryRepository(), testPrecios())

	dir := testDireccion()
	dir.MetodoPago = "CRYPTO"

	if _, err := service.Submit(context.Background(), "user-1", testOrder(), dir); err == nil {
		t.Fatal("expected error for invalid método de pago")
	}
}

func TestSubmitFailedPedidoWrite(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.FailNextPedido()
	service := NewService(repo, testPrecios())

	_, err := service.Submit(context.Background(), "user-1", testOrder(), testDireccion())
	if !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("expected ErrSubmitFailed, got %v", err)
	}

	// Nothing persisted, retry succeeds.
	if _, err := service.Submit(context.Background(), "user-1", testOrder(), testDireccion()); err != nil {
		t.Fatalf("retry after failure should work: %v", err)
	}
}

func TestSubmitFailedItemsWrite(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.FailNextItems()
	service := NewService(repo, testPrecios())

	_, err := service.Submit(context.Background(), "user-1", testOrder(), testDireccion())
	if !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("expected ErrSubmitFailed, got %v", err)
	}
}

func TestSubmitSkipsUnpricedItems(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, testPrecios())

	orden := testOrder()
	orden.DistribucionCortes["Entraña"] = 0.3 // not in the price table

	pedido, err := service.Submit(context.Background(), "user-1", orden, testDireccion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Quoted at zero but not persistable without a tipo_carne_id.
	if len(pedido.Items) != 4 {
		t.Fatalf("expected 4 persisted items, got %d", len(pedido.Items))
	}
	for _, it := range pedido.Items {
		if it.TipoCarneID == "" {
			t.Fatal("persisted an item without tipo_carne_id")
		}
	}
}

func TestResumenQuotesOrder(t *testing.T) {
	service := NewService(NewInMemoryRepository(), testPrecios())

	quote, err := service.Resumen(context.Background(), testOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Subtotal != 20100 {
		t.Fatalf("expected subtotal 20100, got %f", quote.Subtotal)
	}
}

func TestListMisComprasNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, testPrecios())

	for i := 0; i < 3; i++ {
		if _, err := service.Submit(context.Background(), "user-1", testOrder(), testDireccion()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	if _, err := service.Submit(context.Background(), "user-2", testOrder(), testDireccion()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	compras, err := service.ListMisCompras(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(compras) != 3 {
		t.Fatalf("expected 3 compras for user-1, got %d", len(compras))
	}
	for i := 1; i < len(compras); i++ {
		if compras[i].CreatedAt.After(compras[i-1].CreatedAt) {
			t.Fatal("compras not ordered newest first")
		}
	}
}
