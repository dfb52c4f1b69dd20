package asado

import "math"

// Serving modes. Al pan means everything goes inside bread, so portions
// shrink and bread grows.
const (
	AlPlato = "AL_PLATO"
	AlPan   = "AL_PAN"
)

// Portion adjustments that do not depend on the rate profile.
const (
	alPanReduction = 0.7 // meat drops 30% when served in bread
	panKgAlPlato   = 0.2 // kg of bread per person, al plato
	panKgAlPan     = 0.3 // kg of bread per person, al pan
)

// Party is the guest composition entered by the user.
type Party struct {
	Hombres int `json:"hombres"`
	Mujeres int `json:"mujeres"`
	Ninos   int `json:"ninos"`
}

// normalized coerces negative counts to zero. The form should never send
// them, but the estimator must not go negative either way.
func (p Party) normalized() Party {
	if p.Hombres < 0 {
		p.Hombres = 0
	}
	if p.Mujeres < 0 {
		p.Mujeres = 0
	}
	if p.Ninos < 0 {
		p.Ninos = 0
	}
	return p
}

// Total returns the headcount.
func (p Party) Total() int {
	p = p.normalized()
	return p.Hombres + p.Mujeres + p.Ninos
}

// Estimate is the derived shopping baseline. Recomputed on every input
// change, never mutated.
type Estimate struct {
	CarneKg       float64 `json:"carne_kg"`
	EmbutidoUnits int     `json:"embutidos_unidades"`
	PanKg         float64 `json:"pan_kg"`
	AlPan         bool    `json:"al_pan"`
}

// NewEstimate computes the meat mass, embutido count and bread for a party.
// Zero guests is not an error, the estimate is simply zero.
func NewEstimate(p Party, alPan bool, rates RateProfile) Estimate {
	p = p.normalized()

	carne := float64(p.Hombres)*rates.Hombre +
		float64(p.Mujeres)*rates.Mujer +
		float64(p.Ninos)*rates.Nino

	if alPan {
		carne *= alPanReduction
	}

	personas := p.Total()

	panPorPersona := panKgAlPlato
	if alPan {
		panPorPersona = panKgAlPan
	}

	return Estimate{
		CarneKg:       carne,
		EmbutidoUnits: EmbutidoCount(personas),
		PanKg:         float64(personas) * panPorPersona,
		AlPan:         alPan,
	}
}

// EmbutidoCount is one sausage every two guests, rounded up.
func EmbutidoCount(personas int) int {
	if personas <= 0 {
		return 0
	}
	return int(math.Ceil(float64(personas) / 2))
}
