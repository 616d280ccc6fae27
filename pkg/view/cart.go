package view

// CartLine is one line of the cart page.
type CartLine struct {
	ProductID     int    `json:"productId"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	ImageURL      string `json:"image,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int    `json:"unitPrice"`
	UnitPriceFmt  string `json:"unitPriceFmt"`
	LineTotal     int    `json:"lineTotal"`
	LineTotalFmt  string `json:"lineTotalFmt"`
}

// CartPage is the cart view with derived totals.
type CartPage struct {
	Items       []CartLine `json:"items"`
	TotalItems  int        `json:"totalItems"`
	Subtotal    int        `json:"subtotal"`
	SubtotalFmt string     `json:"subtotalFmt"`
}

// CartBadge feeds the header badge counter.
type CartBadge struct {
	TotalItems int `json:"totalItems"`
}
