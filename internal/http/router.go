package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"promosur.cl/app/internal/http/handlers"
	"promosur.cl/app/internal/http/middleware"
	"promosur.cl/app/internal/modules/cart"
	"promosur.cl/app/internal/modules/catalog"
)

// NewRouter wires the middleware stack and routes. The cart provider wraps
// every route so all handlers see the same single cart instance.
func NewRouter(logger *slog.Logger, engine *catalog.Engine, provider *cart.Provider) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	// ErrorHandler sits outside Recovery: a recovered panic still needs its
	// post-Next pass to write the response.
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CartProvider(provider))
	r.Use(middleware.CartCount())

	products := handlers.NewProductsHandler(engine)
	pricing := handlers.NewPricingHandler(engine)
	cartH := handlers.NewCartHandler(engine)
	stubs := handlers.NewStubsHandler(engine)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/products")
	})

	r.GET("/products", products.List)
	r.GET("/products/:id", products.Show)
	r.GET("/products/:id/quote", pricing.Quote)

	r.GET("/cart", cartH.Show)
	r.POST("/cart/items", cartH.AddItem)
	r.DELETE("/cart/items", cartH.RemoveItem)
	r.GET("/cart/badge", cartH.Badge)

	// Not wired to the core yet.
	r.POST("/auth/login", stubs.Login)
	r.GET("/cart/drawer", stubs.CartDrawer)
	r.POST("/quotes", stubs.QuoteRequest)
	r.POST("/products/:id/cart", stubs.CalculatorAddToCart)

	return r
}
