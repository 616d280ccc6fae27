package pricing

import (
	"sort"

	"promosur.cl/app/internal/modules/catalog"
)

// Quote is the result of a volume-pricing calculation for one product.
type Quote struct {
	Quantity  int
	UnitPrice int
	Total     int
	// DiscountPercent against basePrice × quantity. Negative when the
	// resolved tier price exceeds basePrice; callers decide whether to show it.
	DiscountPercent float64
	// TierIndex is the index into the ascending-sorted break list that
	// produced the price, or -1 when basePrice applied.
	TierIndex int
}

// SortBreaks returns the product's price breaks sorted ascending by MinQty.
// Break lists are small; the copy keeps the catalog immutable.
func SortBreaks(breaks []catalog.PriceBreak) []catalog.PriceBreak {
	out := make([]catalog.PriceBreak, len(breaks))
	copy(out, breaks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MinQty < out[j].MinQty })
	return out
}

// Resolve computes the quote for qty units of p. selected pins an explicit
// tier (index into the sorted break list) and wins regardless of whether qty
// satisfies that tier's MinQty; pass nil for automatic tier selection.
//
// Automatic selection keeps the break with the greatest MinQty ≤ qty. When qty
// is below every MinQty the lowest tier's price still applies, not basePrice
// (pending product-owner confirmation, see DESIGN.md).
func Resolve(p catalog.Product, qty int, selected *int) Quote {
	if qty < 1 {
		qty = 1
	}

	breaks := SortBreaks(p.PriceBreaks)

	if len(breaks) == 0 {
		return finishQuote(p, qty, p.BasePrice, -1)
	}

	if selected != nil && *selected >= 0 && *selected < len(breaks) {
		return finishQuote(p, qty, breaks[*selected].Price, *selected)
	}

	idx := 0
	for i := range breaks {
		if qty >= breaks[i].MinQty {
			idx = i
		}
	}
	return finishQuote(p, qty, breaks[idx].Price, idx)
}

func finishQuote(p catalog.Product, qty, unit, tier int) Quote {
	total := unit * qty
	baseTotal := p.BasePrice * qty

	var discount float64
	if baseTotal > 0 {
		discount = float64(baseTotal-total) / float64(baseTotal) * 100
	}

	return Quote{
		Quantity:        qty,
		UnitPrice:       total / qty,
		Total:           total,
		DiscountPercent: discount,
		TierIndex:       tier,
	}
}
