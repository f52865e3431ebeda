package document

import (
	"time"

	"github.com/rafaelleal24/glowin/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReceiptLineDocument struct {
	ProductName string `bson:"product_name"`
	Brand       string `bson:"brand"`
	UnitPrice   int64  `bson:"unit_price"`
	Quantity    int    `bson:"quantity"`
}

type ShippingDocument struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	ZipCode string `bson:"zip_code"`
}

type ReceiptDocument struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty"`
	SessionID      string                `bson:"session_id"`
	Lines          []ReceiptLineDocument `bson:"lines"`
	Subtotal       int64                 `bson:"subtotal"`
	MemberRate     string                `bson:"member_rate"`
	MemberDiscount int64                 `bson:"member_discount"`
	PromoCode      string                `bson:"promo_code,omitempty"`
	PromoDiscount  int64                 `bson:"promo_discount"`
	ShippingCost   int64                 `bson:"shipping_cost"`
	Total          int64                 `bson:"total"`
	PaymentMethod  string                `bson:"payment_method"`
	CardLast4      string                `bson:"card_last4,omitempty"`
	Shipping       ShippingDocument      `bson:"shipping"`
	PointsEarned   int                   `bson:"points_earned"`
	CreatedAt      time.Time             `bson:"created_at"`
}

func (doc ReceiptDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (ReceiptDocument) CollectionName() string {
	return ReceiptCollection
}

func (doc *ReceiptDocument) ToDomain() *domain.Receipt {
	lines := make([]domain.QuoteLine, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = domain.QuoteLine{
			ProductName: line.ProductName,
			Brand:       line.Brand,
			UnitPrice:   domain.Amount(line.UnitPrice),
			Quantity:    line.Quantity,
		}
	}

	// Stored rates were validated on the way in.
	rate, err := domain.NewDiscountRate(doc.MemberRate)
	if err != nil {
		rate = domain.DiscountRate{}
	}

	return &domain.Receipt{
		ID:        domain.ID(doc.ID.Hex()),
		SessionID: domain.ID(doc.SessionID),
		Quote: domain.Quote{
			Lines:          lines,
			Subtotal:       domain.Amount(doc.Subtotal),
			MemberRate:     rate,
			MemberDiscount: domain.Amount(doc.MemberDiscount),
			PromoCode:      domain.PromoCode(doc.PromoCode),
			PromoDiscount:  domain.Amount(doc.PromoDiscount),
			Shipping:       domain.Amount(doc.ShippingCost),
			Total:          domain.Amount(doc.Total),
		},
		PaymentMethod: domain.PaymentMethodCode(doc.PaymentMethod),
		CardLast4:     doc.CardLast4,
		Shipping: domain.ShippingAddress{
			Street:  doc.Shipping.Street,
			City:    doc.Shipping.City,
			ZipCode: doc.Shipping.ZipCode,
		},
		PointsEarned: doc.PointsEarned,
		CreatedAt:    doc.CreatedAt,
	}
}

func ToReceiptDocument(r *domain.Receipt) *ReceiptDocument {
	lines := make([]ReceiptLineDocument, len(r.Quote.Lines))
	for i, line := range r.Quote.Lines {
		lines[i] = ReceiptLineDocument{
			ProductName: line.ProductName,
			Brand:       line.Brand,
			UnitPrice:   int64(line.UnitPrice),
			Quantity:    line.Quantity,
		}
	}

	doc := &ReceiptDocument{
		SessionID:      string(r.SessionID),
		Lines:          lines,
		Subtotal:       int64(r.Quote.Subtotal),
		MemberRate:     r.Quote.MemberRate.String(),
		MemberDiscount: int64(r.Quote.MemberDiscount),
		PromoCode:      string(r.Quote.PromoCode),
		PromoDiscount:  int64(r.Quote.PromoDiscount),
		ShippingCost:   int64(r.Quote.Shipping),
		Total:          int64(r.Quote.Total),
		PaymentMethod:  string(r.PaymentMethod),
		CardLast4:      r.CardLast4,
		Shipping: ShippingDocument{
			Street:  r.Shipping.Street,
			City:    r.Shipping.City,
			ZipCode: r.Shipping.ZipCode,
		},
		PointsEarned: r.PointsEarned,
		CreatedAt:    r.CreatedAt,
	}

	if r.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(r.ID))
		doc.ID = objectID
	}

	return doc
}
