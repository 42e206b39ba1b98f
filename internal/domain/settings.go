package domain

// SiteSettings is the singleton configuration document edited in the CMS.
type SiteSettings struct {
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	LogoURL        string         `json:"logo,omitempty"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email,omitempty"`
	SocialMedia    SocialMedia    `json:"socialMedia"`
	ShippingInfo   ShippingInfo   `json:"shippingInfo"`
	PaymentMethods PaymentMethods `json:"paymentMethods"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type ShippingInfo struct {
	FreeShippingThreshold float64 `json:"freeShippingThreshold,omitempty"`
	DefaultShippingCost   float64 `json:"defaultShippingCost"`
}

type PaymentMethods struct {
	Banks []Bank `json:"banks,omitempty"`
}

// Bank holds the transfer destination shown to the customer and echoed in
// the order message.
type Bank struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	AccountID     string `json:"accountId,omitempty"`
}

// BankByName returns the bank whose display name matches, or nil.
func (s SiteSettings) BankByName(name string) *Bank {
	for i := range s.PaymentMethods.Banks {
		if s.PaymentMethods.Banks[i].BankName == name {
			return &s.PaymentMethods.Banks[i]
		}
	}
	return nil
}
