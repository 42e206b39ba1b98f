package domain

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CustomerDraft is the in-progress checkout form state. Only Name and Phone
// survive across sessions; the rest is wiped when the cart view closes.
type CustomerDraft struct {
	Name           string        `json:"name,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	State          string        `json:"state,omitempty"`
	City           string        `json:"city,omitempty"`
	Address        string        `json:"address,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	PaymentMethod  PaymentMethod `json:"paymentMethod,omitempty"`
	CashChange     string        `json:"cashChange,omitempty"`
	SelectedBank   string        `json:"selectedBank,omitempty"`
	DeliveryCoords *Coordinates  `json:"deliveryCoords,omitempty"`
	ReceiptURL     string        `json:"receiptUrl,omitempty"`
}
