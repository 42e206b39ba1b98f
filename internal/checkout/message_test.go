package checkout

import (
	"strings"
	"testing"

	"babyheaven-storefront/internal/domain"
)

func sampleOrder() Order {
	return Order{
		Customer: domain.CustomerDraft{
			Name:          "Maria",
			Phone:         "99887766",
			State:         "Atlántida",
			City:          "La Ceiba",
			Address:       "Barrio El Centro",
			PaymentMethod: domain.PaymentCash,
		},
		Lines: []domain.CartLine{{
			ID:        "p1-",
			ProductID: "p1",
			Name:      "Body manga larga",
			UnitPrice: 150,
			Quantity:  2,
			SelectedOptions: map[string][]string{
				"Talla": {"0-3 meses"},
				"Color": {"Azul"},
			},
		}},
		Subtotal:    300,
		DeliveryFee: 105,
	}
}

func TestComposeMessageSectionOrder(t *testing.T) {
	msg := ComposeMessage(sampleOrder())

	sections := []string{
		"¡Hola! Me gustaría hacer un pedido:",
		"*INFORMACIÓN DEL CLIENTE:*",
		"Nombre: Maria",
		"*PRODUCTOS:*",
		"• Body manga larga",
		"Cantidad: 2",
		"Precio: L. 150.00",
		"Subtotal: L. 300.00",
		"*Subtotal: L. 300.00*",
		"*Envío: L. 105.00*",
		"*Total: L. 405.00*",
		"*MÉTODO DE PAGO:*",
		"Efectivo",
	}
	last := -1
	for _, want := range sections {
		idx := strings.Index(msg, want)
		if idx < 0 {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
		if idx < last {
			t.Fatalf("section %q out of order", want)
		}
		last = idx
	}
}

func TestComposeMessageOptionsDeterministic(t *testing.T) {
	a := ComposeMessage(sampleOrder())
	b := ComposeMessage(sampleOrder())
	if a != b {
		t.Fatal("message must be deterministic across runs")
	}
	// Sorted option names: Color before Talla.
	if strings.Index(a, "Color: Azul") > strings.Index(a, "Talla: 0-3 meses") {
		t.Fatal("option lines must be in sorted name order")
	}
}

func TestComposeMessageTransferDetail(t *testing.T) {
	o := sampleOrder()
	o.Customer.PaymentMethod = domain.PaymentTransfer
	o.Customer.ReceiptURL = "https://blob.example.com/receipts/r1.jpg"
	o.Bank = &domain.Bank{BankName: "Banco Atlántida", AccountNumber: "1234567890", AccountHolder: "Baby Heaven S. de R.L."}

	msg := ComposeMessage(o)
	for _, want := range []string{
		"Transferencia Bancaria",
		"Banco: Banco Atlántida",
		"Cuenta: 1234567890",
		"Titular: Baby Heaven S. de R.L.",
		"*Comprobante:* https://blob.example.com/receipts/r1.jpg",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestComposeMessageCashChange(t *testing.T) {
	o := sampleOrder()
	o.Customer.CashChange = "500"
	if !strings.Contains(ComposeMessage(o), "Cambio de: 500") {
		t.Fatal("expected change-for line")
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"9988-7766", "50499887766"},
		{"+504 9988 7766", "50499887766"},
		{"50499887766", "50499887766"},
		{"", "50400000000"},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWhatsAppURLEncoding(t *testing.T) {
	link := WhatsAppURL("99887766", "¡Hola! Pedido #1")
	if !strings.HasPrefix(link, "https://wa.me/50499887766?text=") {
		t.Fatalf("unexpected link %q", link)
	}
	if strings.Contains(link, "+") {
		t.Fatal("spaces must encode as %20, not +")
	}
	if strings.Contains(link, " ") {
		t.Fatal("link must not contain raw spaces")
	}
}
