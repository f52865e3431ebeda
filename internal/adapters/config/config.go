package config

import (
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI                    string
	Database               string
	AppName                string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	URL             string
	AppID           string
	MaxRetries      int
	RetryDelay      time.Duration
	ConfirmTimeout  time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	URL       string
	Password  string
	DB        int
	Namespace string
	PoolSize  int
	// Applies to both reads and writes.
	IOTimeout time.Duration
}

type OutboxConfig struct {
	BatchSize int
	Interval  time.Duration
	// Entries that failed to publish this many times are left in the collection and no longer fetched.
	MaxAttempts int
}

type HTTPConfig struct {
	Port          string
	BindInterface string
	// Requests per minute per client on mutating routes.
	MutationRateLimit  int
	CheckoutRateLimit  int
	HealthCheckTimeout time.Duration
}

type SessionConfig struct {
	TTL time.Duration
}

type CheckoutConfig struct {
	IdempotencyTTL          time.Duration
	IdempotencyPollInterval time.Duration
	IdempotencyPollTimeout  time.Duration
}

type MembershipConfig struct {
	GoldDiscountRate string
}

type Config struct {
	Mongo      MongoConfig
	Redis      RedisConfig
	RabbitMQ   RabbitMQConfig
	Outbox     OutboxConfig
	HTTP       HTTPConfig
	Logger     LoggerConfig
	Session    SessionConfig
	Checkout   CheckoutConfig
	Membership MembershipConfig
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "glowin"),
			AppName:                getStringEnv("MONGO_APP_NAME", "glowin"),
			Timeout:                getDurationEnv("MONGO_TIMEOUT", 10, time.Second),
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			ConnectTimeout:         getDurationEnv("MONGO_CONNECT_TIMEOUT", 10, time.Second),
			ServerSelectionTimeout: getDurationEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5, time.Second),
		},
		Redis: RedisConfig{
			URL:       getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password:  getStringEnv("REDIS_PASSWORD", ""),
			DB:        getIntEnv("REDIS_DB", 0),
			Namespace: getStringEnv("REDIS_NAMESPACE", "glowin"),
			PoolSize:  getIntEnv("REDIS_POOL_SIZE", 20),
			IOTimeout: getDurationEnv("REDIS_IO_TIMEOUT_MS", 500, time.Millisecond),
		},
		Outbox: OutboxConfig{
			BatchSize:   getIntEnv("OUTBOX_BATCH_SIZE", 100),
			Interval:    getDurationEnv("OUTBOX_INTERVAL", 500, time.Millisecond),
			MaxAttempts: getIntEnv("OUTBOX_MAX_ATTEMPTS", 10),
		},
		HTTP: HTTPConfig{
			Port:               getStringEnv("HTTP_PORT", "8080"),
			BindInterface:      getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
			MutationRateLimit:  getIntEnv("HTTP_MUTATION_RATE_LIMIT", 120),
			CheckoutRateLimit:  getIntEnv("HTTP_CHECKOUT_RATE_LIMIT", 15),
			HealthCheckTimeout: getDurationEnv("HTTP_HEALTH_TIMEOUT_MS", 2000, time.Millisecond),
		},
		RabbitMQ: RabbitMQConfig{
			URL:            getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			AppID:          getStringEnv("RABBITMQ_APP_ID", "glowin"),
			MaxRetries:     getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:     getDurationEnv("RABBITMQ_RETRY_DELAY", 1, time.Second),
			ConfirmTimeout: getDurationEnv("RABBITMQ_CONFIRM_TIMEOUT_MS", 5000, time.Millisecond),
			ExchangeConfigs: []ExchangeConfig{
				{
					Name:       getStringEnv("RABBITMQ_EXCHANGE_NAME", "exchange.payment"),
					Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "glowin"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
		Session: SessionConfig{
			TTL: getDurationEnv("SESSION_TTL_MINUTES", 60, time.Minute),
		},
		Checkout: CheckoutConfig{
			IdempotencyTTL:          getDurationEnv("IDEMPOTENCY_TTL_MINUTES", 15, time.Minute),
			IdempotencyPollInterval: getDurationEnv("IDEMPOTENCY_POLL_INTERVAL_MS", 100, time.Millisecond),
			IdempotencyPollTimeout:  getDurationEnv("IDEMPOTENCY_POLL_TIMEOUT_MS", 5000, time.Millisecond),
		},
		Membership: MembershipConfig{
			GoldDiscountRate: getStringEnv("GOLD_DISCOUNT_RATE", "0.15"),
		},
	}
}
