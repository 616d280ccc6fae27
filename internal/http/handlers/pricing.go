package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"promosur.cl/app/internal/http/middleware"
	"promosur.cl/app/internal/modules/catalog"
	"promosur.cl/app/internal/shared/apperr"
)

// PricingHandler serves the standalone calculator endpoint the detail page
// polls as the user edits the quantity or clicks a tier.
type PricingHandler struct {
	engine *catalog.Engine
}

func NewPricingHandler(engine *catalog.Engine) *PricingHandler {
	return &PricingHandler{engine: engine}
}

// Quote handles GET /products/:id/quote?qty=&break=.
func (h *PricingHandler) Quote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Producto no encontrado."))
		return
	}

	p, ok := h.engine.Get(id)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Producto no encontrado."))
		return
	}

	calc := calculatorFromQuery(c, p)

	c.JSON(http.StatusOK, gin.H{
		"quote":       quoteView(calc.Quote()),
		"priceBreaks": breakRows(calc),
	})
}
