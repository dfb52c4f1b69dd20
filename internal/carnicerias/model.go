package carnicerias

// Carniceria is a butcher shop shown on the donde-comprar map. The map and
// geolocation live in the client; the backend only keeps the directory the
// pins come from.
type Carniceria struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion string  `json:"direccion"`
	Ciudad    string  `json:"ciudad"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Telefono  string  `json:"telefono,omitempty"`
}
