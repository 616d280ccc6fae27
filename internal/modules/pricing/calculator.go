package pricing

import (
	"strconv"

	"promosur.cl/app/internal/modules/catalog"
)

// BreakView is one row of the volume-discount table on the detail page.
type BreakView struct {
	Index    int
	MinQty   int
	Price    int
	Discount *float64
	// Active: the current quantity qualifies for this tier.
	Active bool
	// Selected: the user pinned this tier explicitly.
	Selected bool
}

// Calculator holds the pricing state of one product detail view: the
// requested quantity and an optional explicitly selected tier.
type Calculator struct {
	product  catalog.Product
	breaks   []catalog.PriceBreak
	quantity int
	selected *int
}

func NewCalculator(p catalog.Product) *Calculator {
	return &Calculator{
		product:  p,
		breaks:   SortBreaks(p.PriceBreaks),
		quantity: 1,
	}
}

// ParseQuantity clamps raw user input to a valid quantity. Non-numeric
// input and anything below 1 become 1.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// SetQuantity updates the quantity, clamping to 1, and re-checks the
// selection invariant: an explicitly selected tier is cleared the moment
// the quantity drops below its MinQty. This runs on every quantity change.
func (c *Calculator) SetQuantity(qty int) {
	if qty < 1 {
		qty = 1
	}
	c.quantity = qty

	if c.selected != nil && c.quantity < c.breaks[*c.selected].MinQty {
		c.selected = nil
	}
}

// SelectBreak pins tier i and sets the quantity to its minimum, in either
// direction, so the selection never starts out invalid. Out-of-range indexes
// are ignored.
func (c *Calculator) SelectBreak(i int) {
	if i < 0 || i >= len(c.breaks) {
		return
	}
	sel := i
	c.selected = &sel
	c.quantity = c.breaks[i].MinQty
}

// ClearSelection reverts to automatic tier computation.
func (c *Calculator) ClearSelection() { c.selected = nil }

func (c *Calculator) Quantity() int { return c.quantity }

// SelectedBreak returns the pinned tier index, or -1.
func (c *Calculator) SelectedBreak() int {
	if c.selected == nil {
		return -1
	}
	return *c.selected
}

// Quote recomputes the full quote from current state. Always derived,
// never cached.
func (c *Calculator) Quote() Quote {
	return Resolve(c.product, c.quantity, c.selected)
}

// Breaks returns the tier table rows for display, flagging which tiers the
// current quantity qualifies for and which one is pinned.
func (c *Calculator) Breaks() []BreakView {
	out := make([]BreakView, 0, len(c.breaks))
	for i, b := range c.breaks {
		out = append(out, BreakView{
			Index:    i,
			MinQty:   b.MinQty,
			Price:    b.Price,
			Discount: b.Discount,
			Active:   c.quantity >= b.MinQty,
			Selected: c.selected != nil && *c.selected == i,
		})
	}
	return out
}
