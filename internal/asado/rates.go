package asado

import "strings"

// RateProfile holds the kg-per-person rates used by the estimator.
type RateProfile struct {
	Hombre float64
	Mujer  float64
	Nino   float64
}

// The two rate tables the product has shipped with. Classic is the default:
// it is the table both calculator iterations agree on. Generous bumps every
// category for heavier-eating crowds.
var (
	RatesClassic  = RateProfile{Hombre: 0.45, Mujer: 0.35, Nino: 0.15}
	RatesGenerous = RateProfile{Hombre: 0.5, Mujer: 0.4, Nino: 0.2}
)

// ProfileByName resolves ASADO_RATE_PROFILE values. Unknown or empty names
// fall back to the classic table.
func ProfileByName(name string) RateProfile {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "generous", "generosa":
		return RatesGenerous
	default:
		return RatesClassic
	}
}
