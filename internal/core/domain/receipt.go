package domain

import "time"

type QuoteLine struct {
	ProductName string
	Brand       string
	UnitPrice   Amount
	Quantity    int
}

func (l QuoteLine) Subtotal() Amount {
	return l.UnitPrice.Multiply(l.Quantity)
}

// Quote is the order summary shown on the payment screen.
type Quote struct {
	Lines          []QuoteLine
	Subtotal       Amount
	MemberRate     DiscountRate
	MemberDiscount Amount
	PromoCode      PromoCode
	PromoDiscount  Amount
	Shipping       Amount
	Total          Amount
}

// NewQuote applies the member rate to the cart total, then the promo rate to what remains.
func NewQuote(lines []CartLine, memberRate DiscountRate, promo PromoCode) Quote {
	quoteLines := make([]QuoteLine, len(lines))
	for i, line := range lines {
		quoteLines[i] = QuoteLine{
			ProductName: line.Product.Name,
			Brand:       line.Product.Brand,
			UnitPrice:   line.Product.Price,
			Quantity:    line.Quantity,
		}
	}

	subtotal := CalculateCartTotal(lines)
	afterMember := subtotal.Discount(memberRate)
	total := afterMember
	var promoDiscount Amount
	if promo != "" {
		total = afterMember.Discount(PromoDiscountRate)
		promoDiscount = afterMember.Sub(total)
	}

	return Quote{
		Lines:          quoteLines,
		Subtotal:       subtotal,
		MemberRate:     memberRate,
		MemberDiscount: subtotal.Sub(afterMember),
		PromoCode:      promo,
		PromoDiscount:  promoDiscount,
		Total:          total,
	}
}

// PointsForAmount awards one membership point per whole dollar paid.
func PointsForAmount(a Amount) int {
	return int(a.ToValue())
}

type Receipt struct {
	ID            ID
	SessionID     ID
	Quote         Quote
	PaymentMethod PaymentMethodCode
	CardLast4     string
	Shipping      ShippingAddress
	PointsEarned  int
	CreatedAt     time.Time
}

func NewReceipt(sessionID ID, quote Quote, method PaymentMethodCode, cardLast4 string, shipping ShippingAddress) *Receipt {
	return &Receipt{
		SessionID:     sessionID,
		Quote:         quote,
		PaymentMethod: method,
		CardLast4:     cardLast4,
		Shipping:      shipping,
		PointsEarned:  PointsForAmount(quote.Total),
		CreatedAt:     time.Now(),
	}
}

type PaymentCompletedEvent struct {
	ReceiptID     ID                `json:"receipt_id"`
	SessionID     ID                `json:"session_id"`
	PaymentMethod PaymentMethodCode `json:"payment_method"`
	Total         Amount            `json:"total"`
	ItemCount     int               `json:"item_count"`
	PointsEarned  int               `json:"points_earned"`
	CompletedAt   time.Time         `json:"completed_at"`
}

func (e *PaymentCompletedEvent) GetName() string {
	return "payment.completed"
}

func (e *PaymentCompletedEvent) GetEntityName() string {
	return "payment"
}

func NewPaymentCompletedEvent(r *Receipt) *PaymentCompletedEvent {
	items := 0
	for _, line := range r.Quote.Lines {
		items += line.Quantity
	}
	return &PaymentCompletedEvent{
		ReceiptID:     r.ID,
		SessionID:     r.SessionID,
		PaymentMethod: r.PaymentMethod,
		Total:         r.Quote.Total,
		ItemCount:     items,
		PointsEarned:  r.PointsEarned,
		CompletedAt:   r.CreatedAt,
	}
}
