package order

import (
	"errors"
	"time"
)

// Payment methods accepted at checkout.
const (
	PagoEfectivo      = "EFECTIVO"
	PagoTransferencia = "TRANSFERENCIA"
	PagoMercadoPago   = "MERCADO_PAGO"
)

// EstadoPendiente is the state a pedido is persisted with.
const EstadoPendiente = "PENDIENTE"

// EmbutidoUnits is the chorizo/morcilla unit breakdown inside an order.
type EmbutidoUnits struct {
	Chorizo  int `json:"chorizo"`
	Morcilla int `json:"morcilla"`
}

// Order is the immutable snapshot handed from the calculator to the summary
// stage. It carries only the allocation result, not the guest counts that
// produced it.
type Order struct {
	DistribucionCortes    map[string]float64 `json:"distribucion_cortes"`
	DistribucionAchuras   map[string]float64 `json:"distribucion_achuras"`
	DistribucionEmbutidos EmbutidoUnits      `json:"distribucion_embutidos"`
	PanKg                 float64            `json:"pan"`
}

// DireccionEnvio is the delivery data collected at the summary stage.
type DireccionEnvio struct {
	Calle        string    `json:"calle"`
	Numero       string    `json:"numero"`
	Ciudad       string    `json:"ciudad"`
	CodigoPostal string    `json:"codigo_postal"`
	Telefono     string    `json:"telefono"`
	Notas        string    `json:"notas"`
	MetodoPago   string    `json:"metodo_pago"`
	FechaEntrega time.Time `json:"fecha_entrega"`
}

var ErrDireccionIncompleta = errors.New("faltan datos de envío")

// Validate checks the required delivery fields. Notas is optional.
func (d DireccionEnvio) Validate() error {
	if d.Calle == "" || d.Numero == "" || d.Ciudad == "" ||
		d.CodigoPostal == "" || d.Telefono == "" {
		return ErrDireccionIncompleta
	}
	switch d.MetodoPago {
	case PagoEfectivo, PagoTransferencia, PagoMercadoPago:
	default:
		return errors.New("método de pago inválido")
	}
	if d.FechaEntrega.IsZero() {
		return errors.New("fecha de entrega requerida")
	}
	return nil
}

// Pedido is the persisted parent record.
type Pedido struct {
	ID               string       `json:"id"`
	UserID           string       `json:"user_id"`
	Estado           string       `json:"estado"`
	DireccionEntrega string       `json:"direccion_entrega"`
	Ciudad           string       `json:"ciudad"`
	CodigoPostal     string       `json:"codigo_postal"`
	Telefono         string       `json:"telefono"`
	MetodoPago       string       `json:"metodo_pago"`
	Notas            string       `json:"notas,omitempty"`
	Subtotal         float64      `json:"subtotal"`
	CostoEnvio       float64      `json:"costo_envio"`
	Total            float64      `json:"total"`
	FechaEntrega     time.Time    `json:"fecha_entrega"`
	CreatedAt        time.Time    `json:"created_at"`
	Items            []PedidoItem `json:"items,omitempty"`
}

// PedidoItem is one persisted line, referencing a priced tipo_carne row.
type PedidoItem struct {
	ID             string  `json:"id"`
	PedidoID       string  `json:"pedido_id"`
	TipoCarneID    string  `json:"tipo_carne_id"`
	CantidadKg     float64 `json:"cantidad_kg"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}
