package cart

import (
	"errors"
	"sync/atomic"
)

// ErrOutsideProvider is returned when cart operations are reached without
// the provider having been wired in. It signals a wiring bug, not a user
// condition: there must never be a second, desynchronized cart instance.
var ErrOutsideProvider = errors.New("cart: se debe usar dentro del CartProvider")

var provided atomic.Bool

// Provider is the capability handle giving the UI tree access to the single
// cart instance.
type Provider struct {
	store *Store
}

// NewProvider wraps the process-wide cart. Constructing it twice panics:
// the single instance is enforced by construction, a second one would
// silently desynchronize from durable storage.
func NewProvider(store *Store) *Provider {
	if !provided.CompareAndSwap(false, true) {
		panic("cart: NewProvider called twice")
	}
	return &Provider{store: store}
}

func (p *Provider) Store() *Store { return p.store }
