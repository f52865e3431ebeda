package dto

type CardDetails struct {
	HolderName string `json:"card_holder_name"`
	Number     string `json:"card_number"`
	Expiry     string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

type ShippingAddress struct {
	Street  string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

type PayRequest struct {
	SessionID     string          `json:"-"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Card          *CardDetails    `json:"card,omitempty"`
	Shipping      ShippingAddress `json:"shipping"`
	PromoCode     string          `json:"promo_code,omitempty"`
}
