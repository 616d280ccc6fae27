package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promosur.cl/app/internal/localstore"
	"promosur.cl/app/internal/modules/cart"
	"promosur.cl/app/internal/modules/catalog"
)

// The cart provider is single-use per process, so all router tests share
// one store; tests use distinct product IDs to stay independent.
var (
	provideOnce  sync.Once
	testProvider *cart.Provider
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	products := []catalog.Product{
		{ID: 1, Name: "Polera Premium", SKU: "POL-001", Category: "shirts", Supplier: "TextilSur", BasePrice: 1000, Stock: 120,
			Colors: []string{"rojo", "azul"}, Sizes: []string{"M", "L"},
			PriceBreaks: []catalog.PriceBreak{{MinQty: 10, Price: 900}, {MinQty: 50, Price: 800}}},
		{ID: 2, Name: "Taza Corporativa", SKU: "MUG-001", Category: "mugs", Supplier: "CeramicaAndina", BasePrice: 3500, Stock: 300},
		{ID: 3, Name: "Gorro Bordado", SKU: "CAP-001", Category: "caps", Supplier: "TextilSur", BasePrice: 4500, Stock: 45},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provideOnce.Do(func() {
		testProvider = cart.NewProvider(cart.NewStore(localstore.NewMem(), logger))
	})
	return NewRouter(logger, catalog.NewEngine(products), testProvider)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestProductsList(t *testing.T) {
	r := testRouter()

	w, body := doJSON(t, r, http.MethodGet, "/products?category=shirts&supplier=all", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])
	assert.EqualValues(t, 1, body["categoryCount"])

	w, body = doJSON(t, r, http.MethodGet, "/products?search=mug-0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])

	// reset=1 clears category and search, keeps supplier.
	w, body = doJSON(t, r, http.MethodGet, "/products?category=shirts&search=zzz&supplier=TextilSur&reset=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["count"])
	assert.Equal(t, "all", body["selectedCategory"])
	assert.Equal(t, "TextilSur", body["selectedSupplier"])
}

func TestProductDetailQuote(t *testing.T) {
	r := testRouter()

	// qty=10 hits the first tier: 900/unit, 10% off.
	w, body := doJSON(t, r, http.MethodGet, "/products/1?qty=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	quote := body["quote"].(map[string]any)
	assert.EqualValues(t, 900, quote["unitPrice"])
	assert.EqualValues(t, 9000, quote["total"])
	assert.InDelta(t, 10.0, quote["discountPercent"].(float64), 0.001)
	assert.Equal(t, "$9.000", quote["totalFmt"])

	// qty=5 is below every tier and still prices at the lowest tier.
	_, body = doJSON(t, r, http.MethodGet, "/products/1/quote?qty=5", "")
	quote = body["quote"].(map[string]any)
	assert.EqualValues(t, 900, quote["unitPrice"])
	assert.EqualValues(t, 4500, quote["total"])

	// Pinned tier wins; quantity snaps up to its minimum.
	_, body = doJSON(t, r, http.MethodGet, "/products/1/quote?break=1", "")
	quote = body["quote"].(map[string]any)
	assert.EqualValues(t, 50, quote["quantity"])
	assert.EqualValues(t, 800, quote["unitPrice"])

	// Lowering qty below the pinned tier's minimum clears the override.
	_, body = doJSON(t, r, http.MethodGet, "/products/1/quote?break=1&qty=20", "")
	quote = body["quote"].(map[string]any)
	assert.EqualValues(t, 900, quote["unitPrice"])

	// Garbage quantity clamps to 1.
	_, body = doJSON(t, r, http.MethodGet, "/products/1/quote?qty=abc", "")
	quote = body["quote"].(map[string]any)
	assert.EqualValues(t, 1, quote["quantity"])

	w, _ = doJSON(t, r, http.MethodGet, "/products/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartFlow(t *testing.T) {
	r := testRouter()

	w, body := doJSON(t, r, http.MethodPost, "/cart/items",
		`{"productId":2,"quantity":2,"selectedColor":"blanco"}`)
	require.Equal(t, http.StatusOK, w.Code)
	first := int(body["totalItems"].(float64))
	assert.GreaterOrEqual(t, first, 2)

	// Same identity key merges instead of appending.
	_, body = doJSON(t, r, http.MethodPost, "/cart/items",
		`{"productId":2,"quantity":3,"selectedColor":"blanco"}`)
	assert.EqualValues(t, first+3, body["totalItems"])

	// Different variant appends.
	_, _ = doJSON(t, r, http.MethodPost, "/cart/items",
		`{"productId":2,"quantity":1,"selectedColor":"negro"}`)

	w, body = doJSON(t, r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := body["items"].([]any)
	require.GreaterOrEqual(t, len(items), 2)

	// Badge agrees with the cart total.
	_, badge := doJSON(t, r, http.MethodGet, "/cart/badge", "")
	assert.EqualValues(t, body["totalItems"], badge["totalItems"])

	// Removing one variant leaves the other untouched.
	w, body = doJSON(t, r, http.MethodDelete, "/cart/items",
		`{"productId":2,"selectedColor":"blanco"}`)
	require.Equal(t, http.StatusOK, w.Code)

	_, page := doJSON(t, r, http.MethodGet, "/cart", "")
	for _, it := range page["items"].([]any) {
		line := it.(map[string]any)
		if int(line["productId"].(float64)) == 2 {
			assert.Equal(t, "negro", line["selectedColor"])
		}
	}

	// Removing a missing key is a no-op, not an error.
	w, _ = doJSON(t, r, http.MethodDelete, "/cart/items", `{"productId":777}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartAddValidation(t *testing.T) {
	r := testRouter()

	w, body := doJSON(t, r, http.MethodPost, "/cart/items", `{"productId":3,"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body, "fields")

	w, _ = doJSON(t, r, http.MethodPost, "/cart/items", `{"productId":999,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStubs(t *testing.T) {
	r := testRouter()

	w, body := doJSON(t, r, http.MethodPost, "/auth/login", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["message"], "por implementar")

	w, body = doJSON(t, r, http.MethodGet, "/cart/drawer", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["message"], "por implementar")

	w, body = doJSON(t, r, http.MethodPost, "/quotes", `{"productId":1,"quantity":25}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cotización solicitada para 25 unidades de Polera Premium", body["message"])

	// The calculator's own add-to-cart button stays a bare acknowledgement.
	w, body = doJSON(t, r, http.MethodPost, "/products/1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["message"], "por implementar")
}

func TestPanicAnswersInternalError(t *testing.T) {
	r := testRouter()
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w, body := doJSON(t, r, http.MethodGet, "/panic", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Ocurrió un error inesperado.", body["error"])
	assert.NotEmpty(t, body["request_id"])
}
