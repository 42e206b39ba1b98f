package checkout

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"babyheaven-storefront/internal/domain"
)

// Order is the assembled submission handed to the message composer.
type Order struct {
	Customer    domain.CustomerDraft
	Lines       []domain.CartLine
	Subtotal    float64
	DeliveryFee float64
	Bank        *domain.Bank
}

func (o Order) Total() float64 {
	return o.Subtotal + o.DeliveryFee
}

// ComposeMessage builds the human-readable order text in fixed section
// order: customer info, itemized lines, totals, payment detail, receipt.
func ComposeMessage(o Order) string {
	var b strings.Builder
	b.WriteString("¡Hola! Me gustaría hacer un pedido:\n\n")

	b.WriteString("*INFORMACIÓN DEL CLIENTE:*\n")
	fmt.Fprintf(&b, "Nombre: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Teléfono: %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "Estado: %s\n", o.Customer.State)
	fmt.Fprintf(&b, "Ciudad: %s\n", o.Customer.City)
	fmt.Fprintf(&b, "Dirección: %s\n", o.Customer.Address)
	if o.Customer.Notes != "" {
		fmt.Fprintf(&b, "Notas: %s\n", o.Customer.Notes)
	}
	b.WriteString("\n")

	b.WriteString("*PRODUCTOS:*\n")
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "• %s\n", line.Name)
		for _, name := range sortedOptionNames(line.SelectedOptions) {
			fmt.Fprintf(&b, "  %s: %s\n", name, strings.Join(line.SelectedOptions[name], ", "))
		}
		fmt.Fprintf(&b, "  Cantidad: %d\n", line.Quantity)
		fmt.Fprintf(&b, "  Precio: L. %.2f\n", line.UnitPrice)
		fmt.Fprintf(&b, "  Subtotal: L. %.2f\n\n", line.Subtotal())
	}

	fmt.Fprintf(&b, "*Subtotal: L. %.2f*\n", o.Subtotal)
	fmt.Fprintf(&b, "*Envío: L. %.2f*\n", o.DeliveryFee)
	fmt.Fprintf(&b, "*Total: L. %.2f*\n\n", o.Total())

	b.WriteString("*MÉTODO DE PAGO:*\n")
	switch o.Customer.PaymentMethod {
	case domain.PaymentCash:
		b.WriteString("Efectivo\n")
		if o.Customer.CashChange != "" {
			fmt.Fprintf(&b, "Cambio de: %s\n", o.Customer.CashChange)
		}
	case domain.PaymentTransfer:
		b.WriteString("Transferencia Bancaria\n")
		if o.Bank != nil {
			fmt.Fprintf(&b, "Banco: %s\n", o.Bank.BankName)
			fmt.Fprintf(&b, "Cuenta: %s\n", o.Bank.AccountNumber)
			fmt.Fprintf(&b, "Titular: %s\n", o.Bank.AccountHolder)
		}
	}

	if o.Customer.ReceiptURL != "" {
		fmt.Fprintf(&b, "\n*Comprobante:* %s\n", o.Customer.ReceiptURL)
	}

	return b.String()
}

// NormalizePhone strips everything but digits and prefixes the country code
// to 8-digit local numbers. Empty input falls back to the placeholder
// support number.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	phone := digits.String()
	if phone == "" {
		return "50400000000"
	}
	if len(phone) == 8 {
		return "504" + phone
	}
	return phone
}

// WhatsAppURL builds the deep link that dispatches the order. The message
// is URL-encoded with literal %20 spaces, which wa.me requires.
func WhatsAppURL(retailerPhone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(retailerPhone), encoded)
}

func sortedOptionNames(options map[string][]string) []string {
	if len(options) == 0 {
		return nil
	}
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
