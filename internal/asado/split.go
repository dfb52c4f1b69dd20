package asado

import "math"

// EmbutidoSplit is the chorizo/morcilla preference. The two shares are
// complementary: setting one recomputes the other so they always sum to 100.
type EmbutidoSplit struct {
	Chorizo  float64 `json:"chorizo"`
	Morcilla float64 `json:"morcilla"`
}

// DefaultSplit is all chorizo, the product's historical default.
var DefaultSplit = EmbutidoSplit{Chorizo: 100, Morcilla: 0}

// NewEmbutidoSplit builds a split from the chorizo share, clamped to 0-100.
func NewEmbutidoSplit(chorizo float64) EmbutidoSplit {
	if chorizo < 0 {
		chorizo = 0
	}
	if chorizo > 100 {
		chorizo = 100
	}
	return EmbutidoSplit{Chorizo: chorizo, Morcilla: 100 - chorizo}
}

// SetChorizo returns the split with the chorizo share updated and the
// morcilla share recomputed.
func (s EmbutidoSplit) SetChorizo(pct float64) EmbutidoSplit {
	return NewEmbutidoSplit(pct)
}

// SetMorcilla is the mirror update.
func (s EmbutidoSplit) SetMorcilla(pct float64) EmbutidoSplit {
	return NewEmbutidoSplit(100 - math.Min(math.Max(pct, 0), 100))
}

// Units distributes total embutidos between chorizo and morcilla by share.
// Rounding is reconciled so the parts always sum exactly to total: a positive
// share that rounds to zero is forced to one unit, and any drift left after
// that is absorbed by the larger share (ties go to chorizo).
func (s EmbutidoSplit) Units(total int) (chorizo, morcilla int) {
	if total <= 0 {
		return 0, 0
	}

	chorizo = int(math.Round(float64(total) * s.Chorizo / 100))
	morcilla = int(math.Round(float64(total) * s.Morcilla / 100))

	if s.Chorizo > 0 && chorizo == 0 {
		chorizo = 1
	}
	if s.Morcilla > 0 && morcilla == 0 {
		morcilla = 1
	}

	if diff := total - (chorizo + morcilla); diff != 0 {
		if s.Chorizo >= s.Morcilla {
			chorizo += diff
		} else {
			morcilla += diff
		}
	}

	if chorizo < 0 {
		chorizo = 0
		morcilla = total
	}
	if morcilla < 0 {
		morcilla = 0
		chorizo = total
	}
	return chorizo, morcilla
}
