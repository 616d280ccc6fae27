package catalog

import (
	"sort"
	"strings"
)

// Sort keys accepted by Criteria.SortBy.
const (
	SortByName  = "name"
	SortByPrice = "price"
	SortByStock = "stock"
)

// Criteria is the transient filter/sort state of the catalog page.
// Category and Supplier are either Wildcard or an exact value.
type Criteria struct {
	Category string
	Supplier string
	Query    string
	SortBy   string
}

// DefaultCriteria matches everything, sorted by name.
func DefaultCriteria() Criteria {
	return Criteria{Category: Wildcard, Supplier: Wildcard, SortBy: SortByName}
}

// Reset clears search and category back to defaults, keeping the
// supplier and sort selections (the "no results" recovery action).
func (c Criteria) Reset() Criteria {
	c.Category = Wildcard
	c.Query = ""
	return c
}

// Result is a filtered view of the catalog plus the display aggregates
// the list page shows next to it.
type Result struct {
	Products      []Product
	Count         int
	CategoryCount int
}

// Engine filters and sorts a static product list. The full pipeline is
// recomputed on every call; there is no incremental state.
type Engine struct {
	products []Product
}

func NewEngine(products []Product) *Engine {
	return &Engine{products: products}
}

// All returns the unfiltered catalog.
func (e *Engine) All() []Product {
	out := make([]Product, len(e.products))
	copy(out, e.products)
	return out
}

// Get returns the product with the given ID.
func (e *Engine) Get(id int) (Product, bool) {
	for _, p := range e.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Apply runs the filter pipeline: category, supplier, free-text search,
// then a stable sort. Category and supplier are independent equality
// filters, so their order does not affect the result.
func (e *Engine) Apply(c Criteria) Result {
	filtered := make([]Product, 0, len(e.products))
	filtered = append(filtered, e.products...)

	if c.Category != "" && c.Category != Wildcard {
		filtered = keep(filtered, func(p Product) bool { return p.Category == c.Category })
	}

	if c.Supplier != "" && c.Supplier != Wildcard {
		filtered = keep(filtered, func(p Product) bool { return p.Supplier == c.Supplier })
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		filtered = keep(filtered, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.SKU), q)
		})
	}

	switch c.SortBy {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].BasePrice < filtered[j].BasePrice })
	case SortByStock:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Stock > filtered[j].Stock })
	default:
		// unknown sort key keeps the prior order
	}

	return Result{
		Products:      filtered,
		Count:         len(filtered),
		CategoryCount: countCategories(filtered),
	}
}

func keep(in []Product, pred func(Product) bool) []Product {
	out := in[:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func countCategories(products []Product) int {
	set := map[string]struct{}{}
	for _, p := range products {
		if p.Category != "" && p.Category != Wildcard {
			set[p.Category] = struct{}{}
		}
	}
	return len(set)
}

// Categories returns the distinct category values of the full catalog,
// sorted, for the filter dropdown.
func (e *Engine) Categories() []string {
	return distinct(e.products, func(p Product) string { return p.Category })
}

// Suppliers returns the distinct supplier values of the full catalog, sorted.
func (e *Engine) Suppliers() []string {
	return distinct(e.products, func(p Product) string { return p.Supplier })
}

func distinct(products []Product, field func(Product) string) []string {
	set := map[string]struct{}{}
	for _, p := range products {
		if v := field(p); v != "" {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
