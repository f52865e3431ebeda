package service

import (
	"context"
	"errors"
	"time"

	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/dto"
	"github.com/rafaelleal24/glowin/internal/core/logger"
	"github.com/rafaelleal24/glowin/internal/core/port"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
	"github.com/rafaelleal24/glowin/internal/core/utils"
)

const receiptHistoryLimit = 20

type CheckoutResult struct {
	Receipt   *domain.Receipt `json:"receipt"`
	NextRoute domain.Route    `json:"next_route"`
}

type CheckoutService struct {
	sessions    *SessionService
	membership  *MembershipService
	receipts    port.ReceiptPort
	outbox      port.EventOutboxPort
	idempotency *IdempotencyService[CheckoutResult]
	txManager   port.TransactionManager
	now         func() time.Time
}

func NewCheckoutService(
	sessions *SessionService,
	membership *MembershipService,
	receipts port.ReceiptPort,
	outbox port.EventOutboxPort,
	idempotency *IdempotencyService[CheckoutResult],
	txManager port.TransactionManager,
) *CheckoutService {
	return &CheckoutService{
		sessions:    sessions,
		membership:  membership,
		receipts:    receipts,
		outbox:      outbox,
		idempotency: idempotency,
		txManager:   txManager,
		now:         time.Now,
	}
}

func parsePromo(code string) (domain.PromoCode, error) {
	promo := domain.NormalizePromoCode(code)
	if promo != "" && !promo.IsKnown() {
		return "", serviceerrors.NewUnprocessableEntityError("unknown promo code")
	}
	return promo, nil
}

func (s *CheckoutService) Quote(ctx context.Context, sessionID domain.ID, promoCode string) (*domain.Quote, error) {
	promo, err := parsePromo(promoCode)
	if err != nil {
		return nil, err
	}
	snap, err := s.sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	quote := domain.NewQuote(snap.Lines, s.membership.DiscountRate(), promo)
	return &quote, nil
}

func fieldError(err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return serviceerrors.NewFieldError(vErr.Field, vErr.Reason)
	}
	return err
}

func (s *CheckoutService) validate(request *dto.PayRequest) (domain.PaymentMethodCode, *domain.CardDetails, domain.ShippingAddress, error) {
	method := domain.PaymentMethodCode(request.PaymentMethod)
	if !method.IsValid() {
		return "", nil, domain.ShippingAddress{}, serviceerrors.NewFieldError("payment_method", "unsupported payment method")
	}

	var card *domain.CardDetails
	if method.RequiresCard() {
		if request.Card == nil {
			return "", nil, domain.ShippingAddress{}, serviceerrors.NewFieldError("card", "card details are required")
		}
		card = &domain.CardDetails{
			HolderName: request.Card.HolderName,
			Number:     request.Card.Number,
			Expiry:     request.Card.Expiry,
			CVV:        request.Card.CVV,
		}
		if err := card.Validate(s.now()); err != nil {
			return "", nil, domain.ShippingAddress{}, fieldError(err)
		}
	}

	shipping := domain.ShippingAddress{
		Street:  request.Shipping.Street,
		City:    request.Shipping.City,
		ZipCode: request.Shipping.ZipCode,
	}
	if err := shipping.Validate(); err != nil {
		return "", nil, domain.ShippingAddress{}, fieldError(err)
	}
	return method, card, shipping, nil
}

func (s *CheckoutService) processPayment(ctx context.Context, request *dto.PayRequest) (*CheckoutResult, error) {
	method, card, shipping, err := s.validate(request)
	if err != nil {
		return nil, err
	}
	promo, err := parsePromo(request.PromoCode)
	if err != nil {
		return nil, err
	}

	sessionID := domain.ID(request.SessionID)
	snap, err := s.sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(snap.Lines) == 0 {
		return nil, serviceerrors.NewUnprocessableEntityError("cart is empty")
	}

	quote := domain.NewQuote(snap.Lines, s.membership.DiscountRate(), promo)
	last4, masked := "", ""
	if card != nil {
		last4 = card.Last4()
		masked = utils.MaskCardNumber(card.Number)
	}
	// the transaction callback may be retried; each attempt inserts a fresh receipt
	var receipt *domain.Receipt
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		receipt = domain.NewReceipt(sessionID, quote, method, last4, shipping)
		if err := s.receipts.Create(txCtx, receipt); err != nil {
			return err
		}
		return s.outbox.Enqueue(txCtx, domain.NewPaymentCompletedEvent(receipt))
	})
	if err != nil {
		logger.Error(ctx, "transaction: create receipt failed", err, map[string]any{
			"session_id": sessionID,
		})
		return nil, err
	}

	logger.Info(ctx, "Payment completed", map[string]any{
		"receipt_id":     receipt.ID,
		"session_id":     sessionID,
		"payment_method": method,
		"card":           masked,
		"total":          quote.Total.String(),
		"promo_code":     promo,
	})
	return &CheckoutResult{Receipt: receipt, NextRoute: domain.CheckoutSucceeded.NextRoute()}, nil
}

// Pay records a simulated payment for the session's cart. The cart itself is left untouched.
func (s *CheckoutService) Pay(ctx context.Context, idempotencyKey string, request *dto.PayRequest) (*CheckoutResult, error) {
	if idempotencyKey == "" {
		return s.processPayment(ctx, request)
	}

	// SessionID is excluded from the request's JSON form, so hash it alongside.
	payloadHash := utils.HashJSON(struct {
		SessionID string          `json:"session_id"`
		Request   *dto.PayRequest `json:"request"`
	}{request.SessionID, request})

	return s.idempotency.Do(ctx, idempotencyKey, payloadHash, func(ctx context.Context) (*CheckoutResult, error) {
		return s.processPayment(ctx, request)
	})
}

// Cancel abandons checkout. The session must exist; nothing else changes.
func (s *CheckoutService) Cancel(ctx context.Context, sessionID domain.ID) (domain.Route, error) {
	if _, err := s.sessions.Snapshot(ctx, sessionID); err != nil {
		return "", err
	}
	logger.Info(ctx, "Checkout canceled", map[string]any{"session_id": sessionID})
	return domain.CheckoutCanceled.NextRoute(), nil
}

func (s *CheckoutService) GetReceipt(ctx context.Context, id domain.ID) (*domain.Receipt, error) {
	return s.receipts.GetByID(ctx, id)
}

func (s *CheckoutService) ListReceipts(ctx context.Context, sessionID domain.ID) ([]*domain.Receipt, error) {
	if _, err := s.sessions.Snapshot(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.receipts.ListBySession(ctx, sessionID, receiptHistoryLimit)
}
