package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promosur.cl/app/internal/http/middleware"
	"promosur.cl/app/internal/http/validation"
	"promosur.cl/app/internal/modules/cart"
	"promosur.cl/app/internal/modules/catalog"
	"promosur.cl/app/internal/modules/pricing"
	"promosur.cl/app/internal/shared/apperr"
	"promosur.cl/app/pkg/view"
)

// CartHandler exposes the cart: page, add, remove and the header badge.
type CartHandler struct {
	engine *catalog.Engine
}

func NewCartHandler(engine *catalog.Engine) *CartHandler {
	return &CartHandler{engine: engine}
}

type addItemInput struct {
	ProductID     int     `json:"productId" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	SelectedColor *string `json:"selectedColor"`
	SelectedSize  *string `json:"selectedSize"`
}

type removeItemInput struct {
	ProductID     int     `json:"productId" binding:"required"`
	SelectedColor *string `json:"selectedColor"`
	SelectedSize  *string `json:"selectedSize"`
}

// Show handles GET /cart.
func (h *CartHandler) Show(c *gin.Context) {
	store, err := middleware.UseCart(c)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, cartPage(store))
}

// AddItem handles POST /cart/items. The product is snapshotted from the
// catalog at add time; line quantities merge on (product, color, size).
func (h *CartHandler) AddItem(c *gin.Context) {
	store, err := middleware.UseCart(c)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	var in addItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Datos inválidos.", validation.FromBindError(err, &in)))
		return
	}

	p, ok := h.engine.Get(in.ProductID)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Producto no encontrado."))
		return
	}

	item := cart.Item{
		Product:       p,
		Quantity:      in.Quantity,
		SelectedColor: in.SelectedColor,
		SelectedSize:  in.SelectedSize,
	}
	if err := store.Add(item); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "✓ Agregado al carrito.",
		"totalItems": store.TotalItems(),
	})
}

// RemoveItem handles DELETE /cart/items. Removing a key that is not in the
// cart still answers 200: it is a no-op, not an error.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	store, err := middleware.UseCart(c)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	var in removeItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Datos inválidos.", validation.FromBindError(err, &in)))
		return
	}

	if err := store.Remove(in.ProductID, in.SelectedColor, in.SelectedSize); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalItems": store.TotalItems()})
}

// Badge handles GET /cart/badge for the header counter.
func (h *CartHandler) Badge(c *gin.Context) {
	c.JSON(http.StatusOK, view.CartBadge{TotalItems: middleware.GetCartCount(c)})
}

func cartPage(store *cart.Store) view.CartPage {
	items := store.Items()

	page := view.CartPage{Items: make([]view.CartLine, 0, len(items))}
	for _, it := range items {
		// Volume pricing applies to cart lines the same way the
		// calculator prices them, off the stored snapshot.
		q := pricing.Resolve(it.Product, it.Quantity, nil)

		line := view.CartLine{
			ProductID:    it.Product.ID,
			Name:         it.Product.Name,
			SKU:          it.Product.SKU,
			ImageURL:     it.Product.ImageURL,
			Quantity:     it.Quantity,
			UnitPrice:    q.UnitPrice,
			UnitPriceFmt: view.Money(q.UnitPrice),
			LineTotal:    q.Total,
			LineTotalFmt: view.Money(q.Total),
		}
		if it.SelectedColor != nil {
			line.SelectedColor = *it.SelectedColor
		}
		if it.SelectedSize != nil {
			line.SelectedSize = *it.SelectedSize
		}
		page.Items = append(page.Items, line)
		page.Subtotal += q.Total
	}

	page.TotalItems = store.TotalItems()
	page.SubtotalFmt = view.Money(page.Subtotal)
	return page
}
