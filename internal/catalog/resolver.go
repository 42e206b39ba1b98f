// Package catalog reconciles a product's base price, variant selection and
// option selections into a cart line candidate with a resolved stock
// ceiling.
package catalog

import (
	"fmt"

	"babyheaven-storefront/internal/domain"
)

// Selection captures what the shopper picked on the product page. Exactly
// one of VariantIndex or Options applies: products with variants ignore
// option groups.
type Selection struct {
	VariantIndex *int                `json:"variantIndex,omitempty"`
	Options      map[string][]string `json:"options,omitempty"`
}

// Resolve validates the selection and produces a ready-to-add cart line
// candidate. All failures are user-facing rejections, never silent
// corrections.
func Resolve(product domain.Product, sel Selection, quantity int) (domain.CartLine, error) {
	if quantity < 1 {
		quantity = 1
	}

	var variant *domain.Variant
	if product.HasVariants() {
		if sel.VariantIndex == nil {
			return domain.CartLine{}, domain.NewValidationError("variant", "Por favor seleccione una variante")
		}
		idx := *sel.VariantIndex
		if idx < 0 || idx >= len(product.Variants) {
			return domain.CartLine{}, domain.NewValidationError("variant", "Por favor seleccione una variante")
		}
		variant = &product.Variants[idx]
	} else {
		for _, group := range product.Options {
			if !group.Required {
				continue
			}
			if len(sel.Options[group.Name]) == 0 {
				return domain.CartLine{}, domain.NewValidationError("options", "Por favor seleccione todas las opciones requeridas")
			}
		}
	}

	if unavailable(product, variant) {
		return domain.CartLine{}, domain.NewValidationError("stock", "Este producto no está disponible actualmente")
	}

	ceiling := StockCeiling(product, variant)
	if quantity > ceiling {
		return domain.CartLine{}, domain.NewValidationError("quantity",
			fmt.Sprintf("Solo hay %d unidades disponibles", ceiling))
	}

	price := EffectivePrice(product, sel, variant)

	selected := sel.Options
	if variant != nil {
		selected = map[string][]string{"Variante": {variant.Title}}
	} else if len(selected) == 0 {
		selected = nil
	}

	return domain.CartLine{
		ProductID:       product.ID,
		Name:            product.Name,
		UnitPrice:       price,
		ImageURL:        product.ImageURL,
		SelectedOptions: selected,
		MaxStock:        ceiling,
	}, nil
}

// EffectivePrice resolves the unit price. A selected variant uses its
// override if present, else the base price, and skips option surcharges
// entirely. Without variants the price is base plus every selected choice's
// extra.
func EffectivePrice(product domain.Product, sel Selection, variant *domain.Variant) float64 {
	if variant != nil {
		if variant.Price != nil {
			return *variant.Price
		}
		return product.Price
	}

	price := product.Price
	for _, group := range product.Options {
		selected := sel.Options[group.Name]
		for _, label := range selected {
			for _, choice := range group.Choices {
				if choice.Label == label {
					price += choice.ExtraPrice
					break
				}
			}
		}
	}
	return price
}

// StockCeiling resolves the purchasable ceiling: variant stock, else the
// general count when declared, else the unbounded sentinel for products
// merely marked in stock.
func StockCeiling(product domain.Product, variant *domain.Variant) int {
	if variant != nil {
		return variant.Stock
	}
	if product.Stock != nil {
		return *product.Stock
	}
	if product.InStock {
		return domain.UnboundedStock
	}
	return 0
}

// unavailable mirrors the storefront's out-of-stock gate: the global flag,
// a zero-stock selected variant, or a zero general count.
func unavailable(product domain.Product, variant *domain.Variant) bool {
	if !product.InStock {
		return true
	}
	if variant != nil && variant.Stock == 0 {
		return true
	}
	if variant == nil && product.Stock != nil && *product.Stock == 0 {
		return true
	}
	return false
}
