package domain

import "time"

// Product is a catalog document as served by the content store. Records are
// validated at the content boundary so consumers can rely on the shape.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Currency    string           `json:"currency"`
	ImageURL    string           `json:"image,omitempty"`
	Gallery     []string         `json:"gallery,omitempty"`
	Category    *CategoryRef     `json:"category,omitempty"`
	InStock     bool             `json:"inStock"`
	Stock       *int             `json:"stock,omitempty"`
	Variants    []Variant        `json:"variants,omitempty"`
	Options     []OptionGroup    `json:"options,omitempty"`
	Related     []ProductSummary `json:"relatedProducts,omitempty"`
	IsNew       bool             `json:"isNew,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// HasVariants reports whether the product uses the stock-tracked variant
// system. Variants and option groups are mutually exclusive selection modes.
func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// Variant is a fixed SKU of a product with its own stock count and an
// optional price override.
type Variant struct {
	Title string   `json:"title"`
	Stock int      `json:"stock"`
	Price *float64 `json:"price,omitempty"`
}

// OptionGroup is a customer-selectable attribute (color, size in months...).
type OptionGroup struct {
	Name     string         `json:"name"`
	Required bool           `json:"required"`
	Multiple bool           `json:"multiple"`
	Choices  []OptionChoice `json:"choices"`
}

type OptionChoice struct {
	Label      string  `json:"label"`
	ExtraPrice float64 `json:"extraPrice"`
}

// ProductSummary is the reduced projection used for grids and related lists.
type ProductSummary struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Slug     string       `json:"slug"`
	Price    float64      `json:"price"`
	ImageURL string       `json:"image,omitempty"`
	Category *CategoryRef `json:"category,omitempty"`
	InStock  bool         `json:"inStock"`
	IsNew    bool         `json:"isNew,omitempty"`
}

type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
