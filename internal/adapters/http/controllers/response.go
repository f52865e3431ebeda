package controllers

import (
	"time"

	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/service"
)

// Monetary fields are integer cents; each has a *_display twin formatted for the UI.

type IconResponse struct {
	Kind string `json:"kind" example:"resource"`
	Name string `json:"name" example:"ic_credit_card"`
}

func NewIconResponse(icon domain.Icon) IconResponse {
	return IconResponse{Kind: string(icon.Kind), Name: icon.Name}
}

type ProductResponse struct {
	Name         string `json:"name" example:"Lip Kit"`
	Brand        string `json:"brand" example:"Kylie Cosmetics"`
	Description  string `json:"description"`
	Price        int64  `json:"price" example:"2900"`
	PriceDisplay string `json:"price_display" example:"$29.00"`
	Image        string `json:"image"`
	Ingredients  string `json:"ingredients"`
	Usage        string `json:"usage"`
	Category     string `json:"category" example:"lips"`
}

func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		Name:         p.Name,
		Brand:        p.Brand,
		Description:  p.Description,
		Price:        int64(p.Price),
		PriceDisplay: p.Price.String(),
		Image:        p.Image,
		Ingredients:  p.Ingredients,
		Usage:        p.Usage,
		Category:     p.Category(),
	}
}

func NewProductResponses(products []domain.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = NewProductResponse(p)
	}
	return response
}

type CartLineResponse struct {
	Product         ProductResponse `json:"product"`
	Quantity        int             `json:"quantity" example:"2"`
	Subtotal        int64           `json:"subtotal" example:"5800"`
	SubtotalDisplay string          `json:"subtotal_display" example:"$58.00"`
}

type SessionResponse struct {
	ID                     string             `json:"id"`
	Version                uint64             `json:"version" example:"3"`
	Cart                   []CartLineResponse `json:"cart"`
	Wishlist               []ProductResponse  `json:"wishlist"`
	ItemCount              int                `json:"item_count" example:"2"`
	Total                  int64              `json:"total" example:"5800"`
	TotalDisplay           string             `json:"total_display" example:"$58.00"`
	DiscountRate           string             `json:"discount_rate" example:"15%"`
	DiscountedTotal        int64              `json:"discounted_total" example:"4930"`
	DiscountedTotalDisplay string             `json:"discounted_total_display" example:"$49.30"`
}

func NewSessionResponse(id domain.ID, snap service.Snapshot) SessionResponse {
	lines := make([]CartLineResponse, len(snap.Lines))
	for i, line := range snap.Lines {
		subtotal := line.Subtotal()
		lines[i] = CartLineResponse{
			Product:         NewProductResponse(line.Product),
			Quantity:        line.Quantity,
			Subtotal:        int64(subtotal),
			SubtotalDisplay: subtotal.String(),
		}
	}
	return SessionResponse{
		ID:                     string(id),
		Version:                snap.Version,
		Cart:                   lines,
		Wishlist:               NewProductResponses(snap.Wishlist),
		ItemCount:              snap.ItemCount,
		Total:                  int64(snap.Total),
		TotalDisplay:           snap.Total.String(),
		DiscountRate:           snap.DiscountRate.Percent(),
		DiscountedTotal:        int64(snap.DiscountedTotal),
		DiscountedTotalDisplay: snap.DiscountedTotal.String(),
	}
}

type WishlistToggleResponse struct {
	SessionResponse
	Liked bool `json:"liked"`
}

type QuoteLineResponse struct {
	Product          string `json:"product" example:"Lip Kit"`
	Brand            string `json:"brand" example:"Kylie Cosmetics"`
	UnitPrice        int64  `json:"unit_price" example:"2900"`
	UnitPriceDisplay string `json:"unit_price_display" example:"$29.00"`
	Quantity         int    `json:"quantity" example:"2"`
	Subtotal         int64  `json:"subtotal" example:"5800"`
}

type QuoteResponse struct {
	Lines                 []QuoteLineResponse `json:"lines"`
	Subtotal              int64               `json:"subtotal" example:"5800"`
	SubtotalDisplay       string              `json:"subtotal_display" example:"$58.00"`
	MemberRate            string              `json:"member_rate" example:"15%"`
	MemberDiscount        int64               `json:"member_discount" example:"870"`
	MemberDiscountDisplay string              `json:"member_discount_display" example:"$8.70"`
	PromoCode             string              `json:"promo_code,omitempty" example:"GLOW2024"`
	PromoDiscount         int64               `json:"promo_discount" example:"247"`
	PromoDiscountDisplay  string              `json:"promo_discount_display" example:"$2.47"`
	Shipping              int64               `json:"shipping" example:"0"`
	ShippingDisplay       string              `json:"shipping_display" example:"Free"`
	Total                 int64               `json:"total" example:"4683"`
	TotalDisplay          string              `json:"total_display" example:"$46.83"`
}

func NewQuoteResponse(q domain.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, len(q.Lines))
	for i, line := range q.Lines {
		lines[i] = QuoteLineResponse{
			Product:          line.ProductName,
			Brand:            line.Brand,
			UnitPrice:        int64(line.UnitPrice),
			UnitPriceDisplay: line.UnitPrice.String(),
			Quantity:         line.Quantity,
			Subtotal:         int64(line.Subtotal()),
		}
	}
	shipping := q.Shipping.String()
	if q.Shipping == 0 {
		shipping = "Free"
	}
	return QuoteResponse{
		Lines:                 lines,
		Subtotal:              int64(q.Subtotal),
		SubtotalDisplay:       q.Subtotal.String(),
		MemberRate:            q.MemberRate.Percent(),
		MemberDiscount:        int64(q.MemberDiscount),
		MemberDiscountDisplay: q.MemberDiscount.String(),
		PromoCode:             string(q.PromoCode),
		PromoDiscount:         int64(q.PromoDiscount),
		PromoDiscountDisplay:  q.PromoDiscount.String(),
		Shipping:              int64(q.Shipping),
		ShippingDisplay:       shipping,
		Total:                 int64(q.Total),
		TotalDisplay:          q.Total.String(),
	}
}

type ShippingResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

type ReceiptResponse struct {
	ID            string           `json:"id"`
	SessionID     string           `json:"session_id"`
	Quote         QuoteResponse    `json:"quote"`
	PaymentMethod string           `json:"payment_method" example:"credit_card"`
	CardLast4     string           `json:"card_last4,omitempty" example:"4242"`
	Shipping      ShippingResponse `json:"shipping"`
	PointsEarned  int              `json:"points_earned" example:"46"`
	CreatedAt     time.Time        `json:"created_at"`
}

func NewReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:            string(r.ID),
		SessionID:     string(r.SessionID),
		Quote:         NewQuoteResponse(r.Quote),
		PaymentMethod: string(r.PaymentMethod),
		CardLast4:     r.CardLast4,
		Shipping: ShippingResponse{
			Address: r.Shipping.Street,
			City:    r.Shipping.City,
			ZipCode: r.Shipping.ZipCode,
		},
		PointsEarned: r.PointsEarned,
		CreatedAt:    r.CreatedAt,
	}
}

type PayResponse struct {
	Receipt   ReceiptResponse `json:"receipt"`
	NextRoute string          `json:"next_route" example:"home"`
}

type NavigationResponse struct {
	NextRoute string `json:"next_route" example:"home"`
}

type PaymentMethodResponse struct {
	Code         string       `json:"code" example:"credit_card"`
	Title        string       `json:"title" example:"Credit Card"`
	Providers    string       `json:"providers" example:"Visa, Mastercard, AMEX"`
	Icon         IconResponse `json:"icon"`
	RequiresCard bool         `json:"requires_card"`
}

type PaymentMethodsResponse struct {
	Methods    []PaymentMethodResponse `json:"methods"`
	PromoCodes []string                `json:"promo_codes" example:"GLOW2024,BEAUTY15,NEWBIE"`
}

type ProfileResponse struct {
	Name            string `json:"name" example:"Helsa Ramadhani"`
	Tier            string `json:"tier" example:"gold"`
	Points          int    `json:"points" example:"2450"`
	MemberSince     int    `json:"member_since" example:"2024"`
	NextTier        string `json:"next_tier,omitempty" example:"diamond"`
	PointsToGo      int    `json:"points_to_go" example:"550"`
	ProgressPercent int    `json:"progress_percent" example:"82"`
	IsTopTier       bool   `json:"is_top_tier"`
	DiscountRate    string `json:"discount_rate" example:"15%"`
}

func NewProfileResponse(p *service.MemberProfile) ProfileResponse {
	return ProfileResponse{
		Name:            p.Member.Name,
		Tier:            string(p.Member.Tier),
		Points:          p.Member.Points,
		MemberSince:     p.Member.MemberSince,
		NextTier:        string(p.Progress.Next),
		PointsToGo:      p.Progress.PointsToGo,
		ProgressPercent: p.Progress.Percent,
		IsTopTier:       p.Progress.IsTopTier,
		DiscountRate:    p.Rate.Percent(),
	}
}

type RewardResponse struct {
	Title       string       `json:"title" example:"Free Lip Gloss"`
	Points      int          `json:"points" example:"500"`
	Description string       `json:"description"`
	Icon        IconResponse `json:"icon"`
	Available   bool         `json:"available"`
}

type PointsTransactionResponse struct {
	Kind        string    `json:"kind" example:"earned"`
	Points      int       `json:"points" example:"150"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
