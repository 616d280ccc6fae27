package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"promosur.cl/app/internal/http/middleware"
	"promosur.cl/app/internal/modules/catalog"
	"promosur.cl/app/internal/modules/pricing"
	"promosur.cl/app/internal/shared/apperr"
	"promosur.cl/app/pkg/view"
)

// ProductsHandler serves the catalog listing and the product detail page.
type ProductsHandler struct {
	engine *catalog.Engine
}

func NewProductsHandler(engine *catalog.Engine) *ProductsHandler {
	return &ProductsHandler{engine: engine}
}

// List handles GET /products. Query params map onto the filter criteria;
// reset=1 is the "no results" recovery action.
func (h *ProductsHandler) List(c *gin.Context) {
	criteria := catalog.DefaultCriteria()
	if v := c.Query("category"); v != "" {
		criteria.Category = v
	}
	if v := c.Query("supplier"); v != "" {
		criteria.Supplier = v
	}
	criteria.Query = c.Query("search")
	if v := c.Query("sort"); v != "" {
		criteria.SortBy = v
	}
	if c.Query("reset") == "1" {
		criteria = criteria.Reset()
	}

	res := h.engine.Apply(criteria)

	cards := make([]view.ProductCard, 0, len(res.Products))
	for _, p := range res.Products {
		cards = append(cards, view.ProductCard{
			ID:        p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Category:  p.Category,
			Supplier:  p.Supplier,
			ImageURL:  p.ImageURL,
			BasePrice: p.BasePrice,
			Price:     view.Money(p.BasePrice),
			Stock:     p.Stock,
		})
	}

	c.JSON(http.StatusOK, view.ProductListPage{
		Products:         cards,
		Count:            res.Count,
		CategoryCount:    res.CategoryCount,
		Categories:       h.engine.Categories(),
		Suppliers:        h.engine.Suppliers(),
		SelectedCategory: criteria.Category,
		SelectedSupplier: criteria.Supplier,
		SearchQuery:      criteria.Query,
		SortBy:           criteria.SortBy,
	})
}

// Show handles GET /products/:id. qty and break params drive the embedded
// pricing calculator; quantity is applied after the tier selection so the
// selection clears itself when the quantity falls below its minimum.
func (h *ProductsHandler) Show(c *gin.Context) {
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

	c.JSON(http.StatusOK, view.ProductDetailPage{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Supplier:    p.Supplier,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		BasePrice:   p.BasePrice,
		Stock:       p.Stock,
		Colors:      p.Colors,
		Sizes:       p.Sizes,
		Breaks:      breakRows(calc),
		Quote:       quoteView(calc.Quote()),
	})
}

func calculatorFromQuery(c *gin.Context, p catalog.Product) *pricing.Calculator {
	calc := pricing.NewCalculator(p)
	if v := c.Query("break"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			calc.SelectBreak(i)
		}
	}
	if v := c.Query("qty"); v != "" {
		calc.SetQuantity(pricing.ParseQuantity(v))
	}
	return calc
}

func breakRows(calc *pricing.Calculator) []view.PriceBreakRow {
	breaks := calc.Breaks()
	rows := make([]view.PriceBreakRow, 0, len(breaks))
	for _, b := range breaks {
		row := view.PriceBreakRow{
			Index:    b.Index,
			MinQty:   b.MinQty,
			Price:    b.Price,
			PriceFmt: view.Money(b.Price),
			Active:   b.Active,
			Selected: b.Selected,
		}
		if b.Discount != nil {
			row.Discount = "-" + view.Percent(*b.Discount)
		}
		rows = append(rows, row)
	}
	return rows
}

func quoteView(q pricing.Quote) view.QuoteView {
	out := view.QuoteView{
		Quantity:        q.Quantity,
		UnitPrice:       q.UnitPrice,
		UnitPriceFmt:    view.Money(q.UnitPrice),
		Total:           q.Total,
		TotalFmt:        view.Money(q.Total),
		DiscountPercent: q.DiscountPercent,
	}
	if q.DiscountPercent > 0 {
		out.DiscountFmt = "-" + view.Percent(q.DiscountPercent)
	}
	return out
}
