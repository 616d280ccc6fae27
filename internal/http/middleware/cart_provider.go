package middleware

import (
	"github.com/gin-gonic/gin"

	"promosur.cl/app/internal/modules/cart"
)

const ctxKeyCart = "cart_store"

// CartProvider injects the single cart instance into every request.
// Handlers reach it through UseCart; there is no other way in.
func CartProvider(p *cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxKeyCart, p.Store())
		c.Next()
	}
}

// UseCart returns the provided cart store. Reaching cart operations on a
// route outside the provider is a wiring bug and fails the call.
func UseCart(c *gin.Context) (*cart.Store, error) {
	v, ok := c.Get(ctxKeyCart)
	if !ok {
		return nil, cart.ErrOutsideProvider
	}
	s, ok := v.(*cart.Store)
	if !ok || s == nil {
		return nil, cart.ErrOutsideProvider
	}
	return s, nil
}
