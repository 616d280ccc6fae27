package cart

import "promosur.cl/app/internal/modules/catalog"

// StorageKey is the fixed durable-storage key the whole cart serializes
// under. There is one cart per device; no other key is ever used.
const StorageKey = "cart"

// Item is one cart line. Product is a snapshot taken at add time: later
// catalog changes never retroactively affect stored items. Color and size
// are pointers because "unset" and the empty string are different variants.
type Item struct {
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedColor *string         `json:"selectedColor,omitempty"`
	SelectedSize  *string         `json:"selectedSize,omitempty"`
}

// sameKey reports whether two lines share the (product, color, size)
// identity triple that deduplicates cart entries.
func (it Item) sameKey(productID int, color, size *string) bool {
	return it.Product.ID == productID &&
		eqOpt(it.SelectedColor, color) &&
		eqOpt(it.SelectedSize, size)
}

func eqOpt(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
