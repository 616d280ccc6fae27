package middleware

import (
	"github.com/gin-gonic/gin"
)

const cartCountKey = "cart_count"

// CartCount precomputes the header badge total for every request. The
// count is derived from the store on each hit, never cached across requests.
func CartCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if store, err := UseCart(c); err == nil {
			n = store.TotalItems()
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
