package domain

// UnboundedStock is the ceiling used for products that are simply marked
// in-stock without a granular count.
const UnboundedStock = 999

// CartLine is one distinct purchasable unit in the cart, keyed by product
// identity plus the selected customizations. UnitPrice already includes any
// option surcharge or variant override.
type CartLine struct {
	ID              string              `json:"id"`
	ProductID       string              `json:"productId"`
	Name            string              `json:"name"`
	UnitPrice       float64             `json:"price"`
	Quantity        int                 `json:"quantity"`
	ImageURL        string              `json:"image,omitempty"`
	SelectedOptions map[string][]string `json:"selectedOptions,omitempty"`
	MaxStock        int                 `json:"maxStock"`
}

func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
