package integration_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	adaptconfig "github.com/rafaelleal24/glowin/internal/adapters/config"
	adaptmongo "github.com/rafaelleal24/glowin/internal/adapters/mongo"
	"github.com/rafaelleal24/glowin/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/glowin/internal/adapters/outbox"
	adaptrabbitmq "github.com/rafaelleal24/glowin/internal/adapters/rabbitmq"
	adaptredis "github.com/rafaelleal24/glowin/internal/adapters/redis"
	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/dto"
	"github.com/rafaelleal24/glowin/internal/core/service"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient  *mongo.Client
	redisClient  *adaptredis.Client
	broker       *adaptrabbitmq.RabbitMQAdapter
	amqpEndpoint string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7", mongodb.WithReplicaSet("rs0"))
	if err != nil {
		log.Fatalf("mongodb container: %v", err)
	}
	mongoEndpoint, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("mongodb connection string: %v", err)
	}
	mongoClient, err = mongo.Connect(ctx, options.Client().
		ApplyURI(mongoEndpoint).
		SetDirect(true).
		SetConnectTimeout(30*time.Second).
		SetServerSelectionTimeout(30*time.Second))
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("mongodb ping: %v", err)
	}

	// --- Redis ---
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("redis container: %v", err)
	}
	redisEndpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("redis connection string: %v", err)
	}
	redisClient, err = adaptredis.NewConnection(adaptconfig.RedisConfig{URL: redisEndpoint, Namespace: "glowin-it"})
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}

	// --- RabbitMQ ---
	rabbitContainer, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("rabbitmq container: %v", err)
	}
	amqpEndpoint, err = rabbitContainer.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("rabbitmq amqp url: %v", err)
	}
	broker, err = adaptrabbitmq.NewRabbitMQAdapter(adaptconfig.RabbitMQConfig{
		URL:            amqpEndpoint,
		AppID:          "glowin-integration",
		MaxRetries:     2,
		RetryDelay:     100 * time.Millisecond,
		ConfirmTimeout: 2 * time.Second,
		ExchangeConfigs: []adaptconfig.ExchangeConfig{
			{Name: "exchange.payment", Type: "direct", Durable: true, AutoDelete: false},
		},
	})
	if err != nil {
		log.Fatalf("rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = broker.Close()
	_ = redisClient.Close()
	_ = mongoClient.Disconnect(ctx)
	for _, c := range []testcontainers.Container{mongoContainer, redisContainer, rabbitContainer} {
		if err := testcontainers.TerminateContainer(c); err != nil {
			log.Printf("terminate container: %v", err)
		}
	}

	os.Exit(code)
}

func setupConsumer(t *testing.T, routingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(amqpEndpoint)
	if err != nil {
		t.Fatalf("consumer dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("consumer channel: %v", err)
	}
	t.Cleanup(func() { ch.Close() })

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		t.Fatalf("queue declare: %v", err)
	}
	if err := ch.QueueBind(q.Name, routingKey, "exchange.payment", false, nil); err != nil {
		t.Fatalf("queue bind: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	return msgs
}

type services struct {
	sessions *service.SessionService
	checkout *service.CheckoutService
	outbox   *outbox.Handler
}

func buildServices(t *testing.T, dbName string) services {
	t.Helper()
	db := mongoClient.Database(dbName)

	outboxRepo := repository.NewOutboxRepository(db, 5)
	receiptRepo := repository.NewReceiptRepository(db)
	txManager := adaptmongo.NewTransactionManager(mongoClient)

	catalog := domain.DefaultCatalog()
	membership := service.NewMembershipService(service.DefaultMember(), domain.DefaultTierRates(domain.MustDiscountRate("0.15")))

	sessionCache := adaptredis.NewCache[service.SessionRecord](redisClient, dbName+"-session")
	sessions := service.NewSessionService(catalog, membership, sessionCache, 5*time.Minute)

	idempotencyCache := adaptredis.NewCache[service.IdempotencyEntry[service.CheckoutResult]](redisClient, dbName+"-idemp")
	idempotencyService := service.NewIdempotencyService[service.CheckoutResult](idempotencyCache, "checkout", 5*time.Minute, 500*time.Millisecond, 10*time.Second)

	checkout := service.NewCheckoutService(sessions, membership, receiptRepo, outbox.NewEventOutbox(outboxRepo), idempotencyService, txManager)

	outboxHandler := outbox.NewHandler(outboxRepo, broker, adaptconfig.OutboxConfig{
		Interval:    100 * time.Millisecond,
		BatchSize:   50,
		MaxAttempts: 5,
	})

	return services{sessions: sessions, checkout: checkout, outbox: outboxHandler}
}

// fillCart creates a session holding two Lip Kits and one Concealer ($90.00).
func fillCart(t *testing.T, sessions *service.SessionService) domain.ID {
	t.Helper()
	ctx := context.Background()
	id, _ := sessions.Create(ctx)
	for _, name := range []string{"Lip Kit", "Concealer", "Lip Kit"} {
		if _, err := sessions.AddToCart(ctx, id, name); err != nil {
			t.Fatalf("add %q: %v", name, err)
		}
	}
	return id
}

func payRequest(id domain.ID) *dto.PayRequest {
	return &dto.PayRequest{
		SessionID:     string(id),
		PaymentMethod: string(domain.PaymentMethodCreditCard),
		Card: &dto.CardDetails{
			HolderName: "Helsa Ramadhani",
			Number:     "4242 4242 4242 4242",
			Expiry:     "12/99",
			CVV:        "123",
		},
		Shipping: dto.ShippingAddress{Street: "Jl. Sudirman 12", City: "Jakarta", ZipCode: "10220"},
	}
}

func TestIntegration_Checkout_FullCycle(t *testing.T) {
	msgs := setupConsumer(t, "payment.completed")

	svc := buildServices(t, "int_full_cycle")
	ctx := context.Background()

	handlerCtx, cancelHandler := context.WithCancel(ctx)
	defer cancelHandler()
	go svc.outbox.Start(handlerCtx)

	id := fillCart(t, svc.sessions)

	result, err := svc.checkout.Pay(ctx, "", payRequest(id))
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if result.Receipt.ID == "" {
		t.Fatal("receipt ID should not be empty")
	}
	if result.NextRoute != domain.RouteHome {
		t.Fatalf("expected next route home, got %q", result.NextRoute)
	}
	if result.Receipt.Quote.Total != 7650 {
		t.Fatalf("expected total 7650, got %d", result.Receipt.Quote.Total)
	}

	select {
	case msg := <-msgs:
		var event domain.PaymentCompletedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.ReceiptID != result.Receipt.ID {
			t.Fatalf("event receipt_id: expected %s, got %s", result.Receipt.ID, event.ReceiptID)
		}
		if event.SessionID != id {
			t.Fatalf("event session_id: expected %s, got %s", id, event.SessionID)
		}
		if event.ItemCount != 3 || event.Total != 7650 {
			t.Fatalf("unexpected event %+v", event)
		}
		if msg.Type != "payment.completed" {
			t.Fatalf("expected message type payment.completed, got %q", msg.Type)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for payment.completed event")
	}

	fetched, err := svc.checkout.GetReceipt(ctx, result.Receipt.ID)
	if err != nil {
		t.Fatalf("get receipt: %v", err)
	}
	if fetched.CardLast4 != "4242" || len(fetched.Quote.Lines) != 2 {
		t.Fatalf("unexpected stored receipt %+v", fetched)
	}
	if !fetched.Quote.MemberRate.Decimal().Equal(domain.MustDiscountRate("0.15").Decimal()) {
		t.Fatalf("expected member rate 0.15, got %s", fetched.Quote.MemberRate)
	}

	// checkout leaves the cart alone
	snap, _ := svc.sessions.Snapshot(ctx, id)
	if snap.ItemCount != 3 {
		t.Fatalf("expected cart to keep 3 items, got %d", snap.ItemCount)
	}
}

func TestIntegration_Checkout_Idempotency(t *testing.T) {
	svc := buildServices(t, "int_idempotency")
	ctx := context.Background()
	id := fillCart(t, svc.sessions)

	first, err := svc.checkout.Pay(ctx, "idemp-key-1", payRequest(id))
	if err != nil {
		t.Fatalf("first pay: %v", err)
	}
	second, err := svc.checkout.Pay(ctx, "idemp-key-1", payRequest(id))
	if err != nil {
		t.Fatalf("second pay: %v", err)
	}
	if second.Receipt.ID != first.Receipt.ID {
		t.Fatalf("expected same receipt: %s vs %s", first.Receipt.ID, second.Receipt.ID)
	}

	receipts, err := svc.checkout.ListReceipts(ctx, id)
	if err != nil {
		t.Fatalf("list receipts: %v", err)
	}
	if len(receipts) != 1 {
		t.Fatalf("expected a single receipt, got %d", len(receipts))
	}

	changed := payRequest(id)
	changed.PromoCode = "GLOW2024"
	_, err = svc.checkout.Pay(ctx, "idemp-key-1", changed)
	if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
		t.Fatalf("expected reused key with a different payload to be rejected, got %v", err)
	}
}

func TestIntegration_Checkout_EmptyCart(t *testing.T) {
	svc := buildServices(t, "int_empty_cart")
	ctx := context.Background()
	id, _ := svc.sessions.Create(ctx)

	_, err := svc.checkout.Pay(ctx, "", payRequest(id))
	if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
		t.Fatalf("expected KindUnprocessableEntity, got %v", err)
	}

	receipts, _ := svc.checkout.ListReceipts(ctx, id)
	if len(receipts) != 0 {
		t.Fatalf("expected no receipts, got %d", len(receipts))
	}
}

func TestIntegration_Checkout_PromoQuote(t *testing.T) {
	svc := buildServices(t, "int_promo")
	ctx := context.Background()
	id := fillCart(t, svc.sessions)

	quote, err := svc.checkout.Quote(ctx, id, "glow2024")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	// $90.00 less 15%, then 5% off the rest
	if quote.Total != 7268 || quote.PromoDiscount != 382 {
		t.Fatalf("unexpected quote total %d promo %d", quote.Total, quote.PromoDiscount)
	}
}

func TestIntegration_Session_ResumedByAnotherInstance(t *testing.T) {
	first := buildServices(t, "int_resume")
	second := buildServices(t, "int_resume")
	ctx := context.Background()

	id := fillCart(t, first.sessions)
	if _, _, err := first.sessions.ToggleWishlist(ctx, id, "Rare Beauty Blush"); err != nil {
		t.Fatalf("toggle wishlist: %v", err)
	}

	snap, err := second.sessions.Snapshot(ctx, id)
	if err != nil {
		t.Fatalf("snapshot on second instance: %v", err)
	}
	if snap.ItemCount != 3 || snap.Total != 9000 {
		t.Fatalf("expected restored cart of 3 items totalling 9000, got %d items totalling %d", snap.ItemCount, snap.Total)
	}
	if !snap.IsWishlisted("Rare Beauty Blush") {
		t.Fatal("expected restored wishlist")
	}
	if snap.Version != 4 {
		t.Fatalf("expected version 4, got %d", snap.Version)
	}

	// the resumed session keeps evolving from the restored version
	snap, err = second.sessions.DecreaseQuantity(ctx, id, "Concealer")
	if err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if snap.Version != 5 || len(snap.Lines) != 1 {
		t.Fatalf("unexpected snapshot after decrease %+v", snap)
	}
}
