package order

import (
	"errors"
	"fmt"

	"github.com/obli137/calculasado/internal/precios"
)

// Checkout states. The flow only moves forward; a failed submission stays at
// PRICED so the user can retry. There is no cancelled or failed terminal
// state.
type Status string

const (
	StatusDraft        Status = "DRAFT"
	StatusReadyToPrice Status = "READY_TO_PRICE"
	StatusPriced       Status = "PRICED"
	StatusSubmitted    Status = "SUBMITTED"
)

var ErrEstadoInvalido = errors.New("transición de estado inválida")

// Checkout tracks one order through pricing and submission.
type Checkout struct {
	Status Status
	Order  Order
	Quote  precios.Quote
}

func NewCheckout() *Checkout {
	return &Checkout{Status: StatusDraft}
}

// SetOrder attaches a fully allocated order. Compose is the allocation gate,
// so an order that exists is by definition ready to price.
func (ck *Checkout) SetOrder(o Order) error {
	if ck.Status != StatusDraft {
		return fmt.Errorf("%w: %s -> %s", ErrEstadoInvalido, ck.Status, StatusReadyToPrice)
	}
	ck.Order = o
	ck.Status = StatusReadyToPrice
	return nil
}

// Price records the quote once the price table has loaded. Re-pricing an
// already priced checkout is allowed: the engine re-runs whenever the table
// changes.
func (ck *Checkout) Price(q precios.Quote) error {
	if ck.Status != StatusReadyToPrice && ck.Status != StatusPriced {
		return fmt.Errorf("%w: %s -> %s", ErrEstadoInvalido, ck.Status, StatusPriced)
	}
	ck.Quote = q
	ck.Status = StatusPriced
	return nil
}

// Submit moves a priced checkout to submitted. The preconditions (identity,
// complete address) are checked by the caller before any write; a write
// failure never reaches this point, so the checkout stays PRICED.
func (ck *Checkout) Submit() error {
	if ck.Status != StatusPriced {
		return fmt.Errorf("%w: %s -> %s", ErrEstadoInvalido, ck.Status, StatusSubmitted)
	}
	ck.Status = StatusSubmitted
	return nil
}
