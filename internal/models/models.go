package models

// CatalogSummary aggregates the catalog the way the summary endpoint reports it.
type CatalogSummary struct {
	TotalItems      int   `json:"total_items"`
	TotalCategories int   `json:"total_categories"`
	TotalPrice      int64 `json:"total_price"`
	InStock         int   `json:"in_stock"`
}

// Product is a single sellable item. Amounts are whole currency units.
type Product struct {
	ID            int     `json:"id" validate:"gt=0"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         int64   `json:"price" validate:"gte=0"`
	OriginalPrice int64   `json:"originalPrice" validate:"gtefield=Price"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int     `json:"reviewCount" validate:"gte=0"`
	Image         string  `json:"image" validate:"required,url"`
	Brand         string  `json:"brand" validate:"required"`
	InStock       bool    `json:"inStock"`
	Delivery      string  `json:"delivery"`
}

// Category is a node of the browse taxonomy. Top-level nodes carry an icon,
// nested ones an image.
type Category struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Icon     string     `json:"icon,omitempty"`
	Image    string     `json:"image,omitempty"`
	IsParent bool       `json:"isParent,omitempty"`
	Children []Category `json:"children,omitempty"`
}

type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ExportRow is one CSV line of the catalog export.
type ExportRow struct {
	Category      string  `csv:"category"`
	ID            int     `csv:"id"`
	Name          string  `csv:"name"`
	Brand         string  `csv:"brand"`
	Price         int64   `csv:"price"`
	OriginalPrice int64   `csv:"original_price"`
	Rating        float64 `csv:"rating"`
	ReviewCount   int     `csv:"review_count"`
	InStock       bool    `csv:"in_stock"`
	Delivery      string  `csv:"delivery"`
	Image         string  `csv:"image"`
}

// Listing is one catalog entry as enumerated by consumers.
type Listing struct {
	Slug     string    `json:"slug"`
	Products []Product `json:"products"`
}
