package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

var ErrOrdenInvalida = errors.New("datos de la orden inválidos o ausentes")

// EncodeParam serializes an order into the URL-safe string passed between
// the calculator and the summary stage.
func EncodeParam(o Order) (string, error) {
	raw, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(raw)), nil
}

// DecodeParam parses the handoff parameter back into an Order. Missing or
// malformed data comes back as ErrOrdenInvalida with a description, never a
// panic: the summary stage renders the message instead of failing.
func DecodeParam(param string) (Order, error) {
	if param == "" {
		return Order{}, ErrOrdenInvalida
	}

	// Gin already unescapes query values, but the parameter also travels
	// through shared links where it may arrive still escaped.
	raw, err := url.QueryUnescape(param)
	if err != nil {
		raw = param
	}

	var o Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrOrdenInvalida, err)
	}

	if o.DistribucionCortes == nil {
		o.DistribucionCortes = map[string]float64{}
	}
	if o.DistribucionAchuras == nil {
		o.DistribucionAchuras = map[string]float64{}
	}
	return o, nil
}
