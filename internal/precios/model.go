package precios

// Categories in tipos_carnes. Cortes and achuras are sold by the kg,
// embutidos by the unit (converted to kg for pricing).
const (
	CategoriaCarne    = "CARNE"
	CategoriaAchura   = "ACHURA"
	CategoriaEmbutido = "EMBUTIDO"
)

// TipoCarne is one row of the hosted price table.
type TipoCarne struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Categoria string  `json:"categoria"`
	PrecioKg  float64 `json:"precio_kg"`
}

// PriceTable indexes the table by item name, the shape the quoting engine
// works against. Loaded once per summary view.
type PriceTable map[string]TipoCarne

// TableFrom builds the lookup map from the repository rows.
func TableFrom(rows []TipoCarne) PriceTable {
	table := make(PriceTable, len(rows))
	for _, row := range rows {
		table[row.Nombre] = row
	}
	return table
}
