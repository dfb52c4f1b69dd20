package precios

import (
	"sort"

	"github.com/shopspring/decimal"
)

// KgPorEmbutido converts embutido units to kilograms before applying the
// per-kg price.
const KgPorEmbutido = 0.15

// CostoEnvio is the flat shipping surcharge added to every order.
const CostoEnvio = 1500

// LineItem is one priced row of a quote.
type LineItem struct {
	TipoCarneID string  `json:"tipo_carne_id,omitempty"`
	Nombre      string  `json:"nombre"`
	Categoria   string  `json:"categoria"`
	CantidadKg  float64 `json:"cantidad_kg"`
	Unidades    int     `json:"unidades,omitempty"`
	PrecioKg    float64 `json:"precio_kg"`
	Subtotal    float64 `json:"subtotal"`
}

// Quote is the priced order: every nonzero item, the subtotal, the fixed
// shipping cost and the final total.
type Quote struct {
	Items      []LineItem `json:"items"`
	Subtotal   float64    `json:"subtotal"`
	CostoEnvio float64    `json:"costo_envio"`
	Total      float64    `json:"total"`
}

// QuoteBasket prices the allocated kilograms and embutido units against the
// current table. Items missing from the table are priced at zero rather than
// failing; they appear in the quote without a tipo_carne_id. Money math runs
// on decimals and is rounded to cents at the edges.
func QuoteBasket(
	cortesKg map[string]float64,
	achurasKg map[string]float64,
	chorizos int,
	morcillas int,
	table PriceTable,
) Quote {

	var items []LineItem

	addKg := func(nombre, categoria string, kg float64) {
		if kg <= 0 {
			return
		}
		row := table[nombre]
		sub := decimal.NewFromFloat(row.PrecioKg).
			Mul(decimal.NewFromFloat(kg)).
			Round(2)
		items = append(items, LineItem{
			TipoCarneID: row.ID,
			Nombre:      nombre,
			Categoria:   categoria,
			CantidadKg:  kg,
			PrecioKg:    row.PrecioKg,
			Subtotal:    sub.InexactFloat64(),
		})
	}

	addUnidades := func(nombre string, unidades int) {
		if unidades <= 0 {
			return
		}
		row := table[nombre]
		kg := float64(unidades) * KgPorEmbutido
		sub := decimal.NewFromFloat(row.PrecioKg).
			Mul(decimal.NewFromFloat(kg)).
			Round(2)
		items = append(items, LineItem{
			TipoCarneID: row.ID,
			Nombre:      nombre,
			Categoria:   CategoriaEmbutido,
			CantidadKg:  kg,
			Unidades:    unidades,
			PrecioKg:    row.PrecioKg,
			Subtotal:    sub.InexactFloat64(),
		})
	}

	for nombre, kg := range cortesKg {
		addKg(nombre, CategoriaCarne, kg)
	}
	for nombre, kg := range achurasKg {
		addKg(nombre, CategoriaAchura, kg)
	}
	addUnidades("Chorizo", chorizos)
	addUnidades("Morcilla", morcillas)

	// Map iteration is random; keep the quote stable for clients.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Categoria != items[j].Categoria {
			return items[i].Categoria < items[j].Categoria
		}
		return items[i].Nombre < items[j].Nombre
	})

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.Subtotal))
	}
	envio := decimal.NewFromInt(CostoEnvio)

	return Quote{
		Items:      items,
		Subtotal:   subtotal.Round(2).InexactFloat64(),
		CostoEnvio: envio.InexactFloat64(),
		Total:      subtotal.Add(envio).Round(2).InexactFloat64(),
	}
}
