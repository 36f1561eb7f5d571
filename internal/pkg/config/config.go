package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Quota   QuotaConfig
	Booking BookingConfig
	Kafka   KafkaConfig
	Outbox  OutboxConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Listing limits per subscription plan. Unknown plans fall back to Free.
type QuotaConfig struct {
	FreeLimit int `envconfig:"QUOTA_FREE_LIMIT" default:"1"`
	PlusLimit int `envconfig:"QUOTA_PLUS_LIMIT" default:"5"`
	ProLimit  int `envconfig:"QUOTA_PRO_LIMIT" default:"50"`
}

type BookingConfig struct {
	CalendarSeedDays int           `envconfig:"BOOKING_CALENDAR_SEED_DAYS" default:"90"`
	ConversationWait time.Duration `envconfig:"BOOKING_CONVERSATION_TIMEOUT" default:"2s"`
}

type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS"`
	ClientID    string   `envconfig:"KAFKA_CLIENT_ID" default:"stay-booking"`
	TopicPrefix string   `envconfig:"KAFKA_TOPIC_PREFIX" default:""`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type OutboxConfig struct {
	Interval  time.Duration `envconfig:"OUTBOX_INTERVAL" default:"1s"`
	BatchSize int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	Source    string        `envconfig:"OUTBOX_SOURCE" default:"app://stay-booking"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Quota.FreeLimit <= 0 || c.Quota.PlusLimit <= 0 || c.Quota.ProLimit <= 0:
		return fmt.Errorf("quota limits must be positive: free=%d plus=%d pro=%d",
			c.Quota.FreeLimit, c.Quota.PlusLimit, c.Quota.ProLimit)
	case c.Booking.CalendarSeedDays < 1 || c.Booking.CalendarSeedDays > 366:
		return fmt.Errorf("BOOKING_CALENDAR_SEED_DAYS must be within 1..366, got %d", c.Booking.CalendarSeedDays)
	case c.Outbox.BatchSize <= 0:
		return fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.Outbox.BatchSize)
	case c.Outbox.Interval <= 0:
		return fmt.Errorf("OUTBOX_INTERVAL must be positive, got %s", c.Outbox.Interval)
	}
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		return fmt.Errorf("invalid JWT_DURATION %q: %w", c.JWT.Duration, err)
	}
	return nil
}

// LoadDBConfig reads only the DB_* variables, for tools that never serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889",
			ReadHeaderTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Quota: QuotaConfig{
			FreeLimit: 1,
			PlusLimit: 5,
			ProLimit:  50,
		},
		Booking: BookingConfig{
			CalendarSeedDays: 90,
			ConversationWait: time.Second,
		},
		Outbox: OutboxConfig{
			Interval:  100 * time.Millisecond,
			BatchSize: 10,
			Source:    "app://stay-booking-test",
		},
	}
}
