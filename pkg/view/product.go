package view

// ProductCard is one entry of the catalog listing.
type ProductCard struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Category  string `json:"category"`
	Supplier  string `json:"supplier"`
	ImageURL  string `json:"image,omitempty"`
	BasePrice int    `json:"basePrice"`
	Price     string `json:"price"`
	Stock     int    `json:"stock"`
}

// ProductListPage carries the filtered catalog plus the header stats.
type ProductListPage struct {
	Products      []ProductCard `json:"products"`
	Count         int           `json:"count"`
	CategoryCount int           `json:"categoryCount"`
	Categories    []string      `json:"categories"`
	Suppliers     []string      `json:"suppliers"`

	SelectedCategory string `json:"selectedCategory"`
	SelectedSupplier string `json:"selectedSupplier"`
	SearchQuery      string `json:"searchQuery"`
	SortBy           string `json:"sortBy"`
}

// PriceBreakRow is one row of the volume-discount table.
type PriceBreakRow struct {
	Index    int    `json:"index"`
	MinQty   int    `json:"minQty"`
	Price    int    `json:"price"`
	PriceFmt string `json:"priceFmt"`
	Discount string `json:"discount,omitempty"`
	Active   bool   `json:"active"`
	Selected bool   `json:"selected"`
}

// QuoteView is the pricing summary under the calculator.
type QuoteView struct {
	Quantity        int     `json:"quantity"`
	UnitPrice       int     `json:"unitPrice"`
	UnitPriceFmt    string  `json:"unitPriceFmt"`
	Total           int     `json:"total"`
	TotalFmt        string  `json:"totalFmt"`
	DiscountPercent float64 `json:"discountPercent"`
	DiscountFmt     string  `json:"discountFmt,omitempty"`
}

// ProductDetailPage is the detail view hosting the pricing calculator.
type ProductDetailPage struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image,omitempty"`
	BasePrice   int             `json:"basePrice"`
	Stock       int             `json:"stock"`
	Colors      []string        `json:"colors,omitempty"`
	Sizes       []string        `json:"sizes,omitempty"`
	Breaks      []PriceBreakRow `json:"priceBreaks"`
	Quote       QuoteView       `json:"quote"`
}
