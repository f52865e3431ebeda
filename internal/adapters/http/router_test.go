package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/rafaelleal24/glowin/docs"
	"github.com/rafaelleal24/glowin/internal/adapters/config"
	httpadapter "github.com/rafaelleal24/glowin/internal/adapters/http"
	"github.com/rafaelleal24/glowin/internal/adapters/http/controllers"
	"github.com/rafaelleal24/glowin/internal/adapters/http/handlers"
	"github.com/rafaelleal24/glowin/internal/adapters/http/middleware"
	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/port/mock"
	"github.com/rafaelleal24/glowin/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allowAll struct{}

func (allowAll) Take(context.Context, string, int, time.Duration) (middleware.Quota, error) {
	return middleware.Quota{Allowed: true, Remaining: 1}, nil
}

type testServer struct {
	engine       *gin.Engine
	sessionCache *mock.MockCachePort[service.SessionRecord]
	receipts     *mock.MockReceiptPort
	outbox       *mock.MockEventOutboxPort
	txManager    *mock.MockTransactionManager
}

func setupServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	sessionCache := mock.NewMockCachePort[service.SessionRecord](ctrl)
	idemCache := mock.NewMockCachePort[service.IdempotencyEntry[service.CheckoutResult]](ctrl)
	receipts := mock.NewMockReceiptPort(ctrl)
	outbox := mock.NewMockEventOutboxPort(ctrl)
	txManager := mock.NewMockTransactionManager(ctrl)

	sessionCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	catalog := domain.DefaultCatalog()
	membership := service.NewMembershipService(service.DefaultMember(), domain.DefaultTierRates(domain.MustDiscountRate("0.15")))
	sessions := service.NewSessionService(catalog, membership, sessionCache, time.Hour)
	idempotency := service.NewIdempotencyService[service.CheckoutResult](idemCache, "checkout", time.Minute, 10*time.Millisecond, 100*time.Millisecond)
	checkout := service.NewCheckoutService(sessions, membership, receipts, outbox, idempotency, txManager)

	router := httpadapter.NewRouter(
		controllers.NewHealthController(nil, time.Second, catalog.Len()),
		controllers.NewCatalogController(service.NewProductService(catalog)),
		controllers.NewSessionController(sessions),
		controllers.NewCheckoutController(checkout),
		controllers.NewMembershipController(membership),
		allowAll{},
		config.HTTPConfig{MutationRateLimit: 100, CheckoutRateLimit: 10},
	)
	engine := gin.New()
	router.SetupRoutes(engine)

	return &testServer{
		engine:       engine,
		sessionCache: sessionCache,
		receipts:     receipts,
		outbox:       outbox,
		txManager:    txManager,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (s *testServer) createSession(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return decode[controllers.SessionResponse](t, w).ID
}

func (s *testServer) addToCart(t *testing.T, id string, products ...string) controllers.SessionResponse {
	t.Helper()
	var last controllers.SessionResponse
	for _, p := range products {
		w := s.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items", map[string]string{"product": p})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		last = decode[controllers.SessionResponse](t, w)
	}
	return last
}

func TestRouter_Catalog(t *testing.T) {
	s := setupServer(t)

	t.Run("filter by name", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/catalog?q=LIP", nil)
		require.Equal(t, http.StatusOK, w.Code)
		products := decode[[]controllers.ProductResponse](t, w)
		require.Len(t, products, 3)
		assert.Equal(t, "Lip Glow Oil", products[0].Name)
	})

	t.Run("empty query lists everything", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/catalog", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]controllers.ProductResponse](t, w), 10)
	})

	t.Run("get by name", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/catalog/Lip%20Kit", nil)
		require.Equal(t, http.StatusOK, w.Code)
		p := decode[controllers.ProductResponse](t, w)
		assert.Equal(t, int64(2900), p.Price)
		assert.Equal(t, "$29.00", p.PriceDisplay)
	})

	t.Run("unknown product", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/catalog/Glitter%20Bomb", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("payment methods", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/payment-methods", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[controllers.PaymentMethodsResponse](t, w)
		require.Len(t, resp.Methods, 4)
		assert.True(t, resp.Methods[0].RequiresCard)
		assert.Equal(t, []string{"GLOW2024", "BEAUTY15", "NEWBIE"}, resp.PromoCodes)
	})
}

func TestRouter_CartFlow(t *testing.T) {
	s := setupServer(t)
	id := s.createSession(t)

	snap := s.addToCart(t, id, "Lip Kit", "Concealer", "Lip Kit")
	assert.Equal(t, 3, snap.ItemCount)
	assert.Equal(t, int64(9000), snap.Total)
	assert.Equal(t, int64(7650), snap.DiscountedTotal)
	assert.Equal(t, "15%", snap.DiscountRate)

	w := s.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items/decrease", map[string]string{"product": "Concealer"})
	require.Equal(t, http.StatusOK, w.Code)
	snap = decode[controllers.SessionResponse](t, w)
	require.Len(t, snap.Cart, 1)
	assert.Equal(t, "Lip Kit", snap.Cart[0].Product.Name)
	assert.Equal(t, 2, snap.Cart[0].Quantity)

	// absent product: unchanged state, same version
	w = s.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items/increase", map[string]string{"product": "Concealer"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, snap.Version, decode[controllers.SessionResponse](t, w).Version)

	w = s.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5800), decode[controllers.SessionResponse](t, w).Total)
}

func TestRouter_Wishlist(t *testing.T) {
	s := setupServer(t)
	id := s.createSession(t)
	path := "/api/v1/sessions/" + id + "/wishlist/toggle"

	w := s.do(t, http.MethodPost, path, map[string]string{"product": "Lip Glow Oil"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[controllers.WishlistToggleResponse](t, w)
	assert.True(t, resp.Liked)
	require.Len(t, resp.Wishlist, 1)

	w = s.do(t, http.MethodPost, path, map[string]string{"product": "Lip Glow Oil"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[controllers.WishlistToggleResponse](t, w)
	assert.False(t, resp.Liked)
	assert.Empty(t, resp.Wishlist)
}

func TestRouter_SessionErrors(t *testing.T) {
	s := setupServer(t)
	id := s.createSession(t)
	missing := uuid.NewString()
	s.sessionCache.EXPECT().Get(gomock.Any(), "session:"+missing).Return(nil, nil).AnyTimes()

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
	}{
		{"malformed session id", http.MethodGet, "/api/v1/sessions/not-a-uuid", nil, http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/api/v1/sessions/" + missing, nil, http.StatusNotFound},
		{"missing product field", http.MethodPost, "/api/v1/sessions/" + id + "/cart/items", map[string]string{}, http.StatusBadRequest},
		{"unknown product", http.MethodPost, "/api/v1/sessions/" + id + "/cart/items", map[string]string{"product": "Glitter Bomb"}, http.StatusNotFound},
		{"unknown promo", http.MethodGet, "/api/v1/sessions/" + id + "/checkout?promo=FREESTUFF", nil, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func validPayment() map[string]any {
	return map[string]any{
		"payment_method": "credit_card",
		"card": map[string]string{
			"card_holder_name": "Helsa Ramadhani",
			"card_number":      "4242 4242 4242 4242",
			"expiry_date":      "12/99",
			"cvv":              "123",
		},
		"shipping": map[string]string{
			"address":  "Jl. Sudirman 12",
			"city":     "Jakarta",
			"zip_code": "10220",
		},
	}
}

func TestRouter_Checkout(t *testing.T) {
	t.Run("quote and pay", func(t *testing.T) {
		s := setupServer(t)
		id := s.createSession(t)
		s.addToCart(t, id, "Lip Kit", "Lip Kit", "Concealer")

		w := s.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/checkout", nil)
		require.Equal(t, http.StatusOK, w.Code)
		quote := decode[controllers.QuoteResponse](t, w)
		assert.Equal(t, int64(9000), quote.Subtotal)
		assert.Equal(t, int64(1350), quote.MemberDiscount)
		assert.Equal(t, int64(7650), quote.Total)
		assert.Equal(t, "Free", quote.ShippingDisplay)

		s.txManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		s.receipts.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.Receipt) error {
				r.ID = "65f0c1e2a9b8c7d6e5f4a3b2"
				return nil
			})
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		w = s.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/checkout", validPayment())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[controllers.PayResponse](t, w)
		assert.Equal(t, "home", resp.NextRoute)
		assert.Equal(t, "4242", resp.Receipt.CardLast4)
		assert.Equal(t, int64(7650), resp.Receipt.Quote.Total)
		assert.Equal(t, 76, resp.Receipt.PointsEarned)

		// the cart survives checkout
		w = s.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
		assert.Equal(t, 3, decode[controllers.SessionResponse](t, w).ItemCount)
	})

	t.Run("empty cart", func(t *testing.T) {
		s := setupServer(t)
		id := s.createSession(t)

		w := s.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/checkout", validPayment())
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("invalid card names the field", func(t *testing.T) {
		s := setupServer(t)
		id := s.createSession(t)
		s.addToCart(t, id, "Lip Kit")

		payment := validPayment()
		payment["card"].(map[string]string)["card_number"] = "4242 4242 4242 4241"

		w := s.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/checkout", payment)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "card_number", decode[handlers.ErrorResponse](t, w).Field)
	})

	t.Run("cancel", func(t *testing.T) {
		s := setupServer(t)
		id := s.createSession(t)

		w := s.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/checkout/cancel", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "home", decode[controllers.NavigationResponse](t, w).NextRoute)
	})
}

func TestRouter_Receipts(t *testing.T) {
	s := setupServer(t)
	id := s.createSession(t)
	receipt := &domain.Receipt{ID: "r-1", SessionID: domain.ID(id), PaymentMethod: domain.PaymentMethodBankTransfer}

	s.receipts.EXPECT().ListBySession(gomock.Any(), domain.ID(id), int64(20)).Return([]*domain.Receipt{receipt}, nil)
	s.receipts.EXPECT().GetByID(gomock.Any(), domain.ID("r-1")).Return(receipt, nil)

	w := s.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/receipts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]controllers.ReceiptResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "bank_transfer", list[0].PaymentMethod)

	w = s.do(t, http.MethodGet, "/api/v1/receipts/r-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decode[controllers.ReceiptResponse](t, w).SessionID)
}

func TestRouter_Membership(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/membership", nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[controllers.ProfileResponse](t, w)
	assert.Equal(t, "gold", profile.Tier)
	assert.Equal(t, 82, profile.ProgressPercent)
	assert.Equal(t, 550, profile.PointsToGo)

	w = s.do(t, http.MethodGet, "/api/v1/membership/rewards", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rewards := decode[[]controllers.RewardResponse](t, w)
	require.Len(t, rewards, 5)
	assert.False(t, rewards[4].Available)

	w = s.do(t, http.MethodGet, "/api/v1/membership/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]controllers.PointsTransactionResponse](t, w), 5)
}

func TestRouter_HealthAndDocs(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, decode[controllers.HealthResponse](t, w).Catalog)

	w = s.do(t, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/sessions/{id}/checkout")
}
