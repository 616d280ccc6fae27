package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"promosur.cl/app/internal/http/middleware"
	"promosur.cl/app/internal/http/validation"
	"promosur.cl/app/internal/modules/catalog"
	"promosur.cl/app/internal/shared/apperr"
)

// StubsHandler answers the actions that are not wired to the core yet.
// They stay simple acknowledgements on purpose.
type StubsHandler struct {
	engine *catalog.Engine
}

func NewStubsHandler(engine *catalog.Engine) *StubsHandler {
	return &StubsHandler{engine: engine}
}

// Login handles POST /auth/login.
func (h *StubsHandler) Login(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Función de login por implementar.",
	})
}

// CartDrawer handles GET /cart/drawer.
func (h *StubsHandler) CartDrawer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Carrito lateral por implementar.",
	})
}

// CalculatorAddToCart handles POST /products/:id/cart, the calculator's
// "agregar al carrito" button. The button never went live; the cart API
// under /cart/items is the wired surface.
func (h *StubsHandler) CalculatorAddToCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Función de agregar al carrito por implementar.",
	})
}

type quoteRequestInput struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

// QuoteRequest handles POST /quotes, the "solicitar cotización oficial"
// button. Nothing is submitted anywhere; it only acknowledges.
func (h *StubsHandler) QuoteRequest(c *gin.Context) {
	var in quoteRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Datos inválidos.", validation.FromBindError(err, &in)))
		return
	}

	p, ok := h.engine.Get(in.ProductID)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Producto no encontrado."))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Cotización solicitada para %d unidades de %s", in.Quantity, p.Name),
	})
}
