package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Способы доставки событий бронирования
const (
	NotificationsAsynq    = "asynq"
	NotificationsRabbitMQ = "rabbitmq"
	NotificationsLog      = "log"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Booking       BookingConfig       `toml:"booking"`
	Cache         CacheConfig         `toml:"cache"`
	Redis         RedisConfig         `toml:"redis"`
	Notifications NotificationsConfig `toml:"notifications"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логгера (пустой file = stdout)
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	DefaultWindowDays    int  `toml:"default_window_days" validate:"min=1,max=366"`
	EnforceNoticeWindow  bool `toml:"enforce_notice_window"`
	NotifyTimeoutSeconds int  `toml:"notify_timeout_seconds" validate:"min=1"`
}

// NotifyTimeout таймаут отправки события бронирования
func (b BookingConfig) NotifyTimeout() time.Duration {
	return time.Duration(b.NotifyTimeoutSeconds) * time.Second
}

// CacheConfig кеш публичного каталога
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLSeconds int  `toml:"ttl_seconds" validate:"min=0"`
}

// TTL время жизни записи кеша
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RedisConfig общий redis для кеша и очереди asynq
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db" validate:"min=0"`
}

// NotificationsConfig доставка событий booking.created / booking.cancelled
type NotificationsConfig struct {
	Transport string `toml:"transport" validate:"oneof=asynq rabbitmq log"`

	// asynq
	Queue    string `toml:"queue"`
	MaxRetry int    `toml:"max_retry" validate:"min=0"`

	// rabbitmq
	RabbitMQURL string `toml:"rabbitmq_url" validate:"required_if=Transport rabbitmq"`
	Exchange    string `toml:"exchange" validate:"required_if=Transport rabbitmq"`
}

// RateLimitConfig ограничение частоты изменяющих запросов с одного адреса
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute" validate:"min=0"`
	Burst             int  `toml:"burst" validate:"min=0"`
	IdleTTLSeconds    int  `toml:"idle_ttl_seconds" validate:"min=0"`
	// TrustedProxies адреса или подсети прокси, чьим X-Forwarded-For можно верить
	TrustedProxies []string `toml:"trusted_proxies" validate:"dive,ip|cidr"`
}

// IdleTTL время, после которого ограничитель неактивного адреса удаляется
func (r RateLimitConfig) IdleTTL() time.Duration {
	return time.Duration(r.IdleTTLSeconds) * time.Second
}

// Load читает TOML файл, подгружает .env (если есть) и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "studio-booking-service",
		},
		Booking: BookingConfig{
			DefaultWindowDays:    30,
			NotifyTimeoutSeconds: 10,
		},
		Cache: CacheConfig{TTLSeconds: 60},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Notifications: NotificationsConfig{
			Transport: NotificationsLog,
			Queue:     "notifications",
			MaxRetry:  5,
			Exchange:  "studio.bookings",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			Burst:             10,
			IdleTTLSeconds:    600,
		},
	}
}

// applyEnv переопределяет значения из переменных окружения
func applyEnv(cfg *Config) error {
	strVars := map[string]*string{
		"DB_HOST":                 &cfg.Database.Host,
		"DB_USER":                 &cfg.Database.User,
		"DB_PASSWORD":             &cfg.Database.Password,
		"DB_NAME":                 &cfg.Database.DBName,
		"DB_SSLMODE":              &cfg.Database.SSLMode,
		"LOG_LEVEL":               &cfg.Logs.Level,
		"LOG_FILE":                &cfg.Logs.File,
		"REDIS_ADDR":              &cfg.Redis.Addr,
		"REDIS_PASSWORD":          &cfg.Redis.Password,
		"NOTIFICATIONS_TRANSPORT": &cfg.Notifications.Transport,
		"RABBITMQ_URL":            &cfg.Notifications.RabbitMQURL,
	}
	for key, dst := range strVars {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	intVars := map[string]*int{
		"HTTP_PORT": &cfg.Server.HTTPPort,
		"DB_PORT":   &cfg.Database.Port,
		"REDIS_DB":  &cfg.Redis.DB,
	}
	for key, dst := range intVars {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, v, err)
		}
		*dst = n
	}

	boolVars := map[string]*bool{
		"METRICS_ENABLED":       &cfg.Metrics.Enabled,
		"CACHE_ENABLED":         &cfg.Cache.Enabled,
		"DB_AUTO_MIGRATE":       &cfg.Database.AutoMigrate,
		"ENFORCE_NOTICE_WINDOW": &cfg.Booking.EnforceNoticeWindow,
	}
	for key, dst := range boolVars {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, v, err)
		}
		*dst = b
	}

	return nil
}
