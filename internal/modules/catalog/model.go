package catalog

// Wildcard is the sentinel meaning "no filtering on this dimension".
const Wildcard = "all"

// Product is a static catalog entry. The catalog is loaded once at startup
// and never mutated at runtime; cart entries keep their own snapshot.
type Product struct {
	ID          int          `json:"id" gorm:"column:id;primaryKey"`
	Name        string       `json:"name" gorm:"column:name"`
	SKU         string       `json:"sku" gorm:"column:sku"`
	Category    string       `json:"category" gorm:"column:category"`
	Supplier    string       `json:"supplier" gorm:"column:supplier"`
	Description string       `json:"description,omitempty" gorm:"column:description"`
	ImageURL    string       `json:"image,omitempty" gorm:"column:image_url"`
	BasePrice   int          `json:"basePrice" gorm:"column:base_price"`
	Stock       int          `json:"stock" gorm:"column:stock"`
	Colors      []string     `json:"colors,omitempty" gorm:"serializer:json;column:colors_json"`
	Sizes       []string     `json:"sizes,omitempty" gorm:"serializer:json;column:sizes_json"`
	PriceBreaks []PriceBreak `json:"priceBreaks,omitempty" gorm:"foreignKey:ProductID"`
}

// PriceBreak is a volume tier: per-unit price from MinQty units upward.
// Discount is informational display data, never used in calculations.
type PriceBreak struct {
	ID        int      `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int      `json:"-" gorm:"column:product_id"`
	MinQty    int      `json:"minQty" gorm:"column:min_qty"`
	Price     int      `json:"price" gorm:"column:price"`
	Discount  *float64 `json:"discount,omitempty" gorm:"column:discount"`
}

func (Product) TableName() string    { return "products" }
func (PriceBreak) TableName() string { return "price_breaks" }
