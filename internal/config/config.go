package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// REST API портала
	APIBaseURL   string        `envconfig:"API_BASE_URL" default:"http://127.0.0.1:8000/"`
	MediaBaseURL string        `envconfig:"MEDIA_BASE_URL"`
	APITimeout   time.Duration `envconfig:"API_TIMEOUT" default:"15s"`

	// Кеш запросов
	CacheStaleTime time.Duration `envconfig:"CACHE_STALE_TIME" default:"5m"`

	// Панель экстренных вызовов
	EmergencyPollInterval time.Duration `envconfig:"EMERGENCY_POLL_INTERVAL" default:"5s"`
	AlarmSoundPath        string        `envconfig:"ALARM_SOUND_PATH" default:"public/sound.mp3"`
	AlarmPlayer           string        `envconfig:"ALARM_PLAYER"`

	// Сессия
	StaffEmail           string        `envconfig:"STAFF_EMAIL"`
	StaffPassword        string        `envconfig:"STAFF_PASSWORD"`
	TokenRefreshSchedule string        `envconfig:"TOKEN_REFRESH_SCHEDULE" default:"@every 10m"`
	TokenRefreshLeeway   time.Duration `envconfig:"TOKEN_REFRESH_LEEWAY" default:"2m"`

	// Redis Config
	RedisAddr string `envconfig:"REDIS_ADDR"`
	RedisPass string `envconfig:"REDIS_PASSWORD"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	// Webhook Config (ретрансляция тревог)
	AlertWebhookURL        string        `envconfig:"ALERT_WEBHOOK_URL"`
	AlertWebhookSecret     string        `envconfig:"ALERT_WEBHOOK_SECRET"`
	AlertWebhookTimeout    time.Duration `envconfig:"ALERT_WEBHOOK_TIMEOUT" default:"5s"`
	AlertWebhookMaxRetries int           `envconfig:"ALERT_WEBHOOK_MAX_RETRIES" default:"3"`
	AlertWebhookBaseDelay  time.Duration `envconfig:"ALERT_WEBHOOK_BASE_DELAY" default:"1s"`

	ConnectivityCheckInterval time.Duration `envconfig:"CONNECTIVITY_CHECK_INTERVAL" default:"10s"`

	// Геолокация по умолчанию для форм
	GeoDefaultLatitude  float64 `envconfig:"GEO_DEFAULT_LATITUDE"`
	GeoDefaultLongitude float64 `envconfig:"GEO_DEFAULT_LONGITUDE"`

	BarangayLocality string `envconfig:"BARANGAY_LOCALITY" default:"SINDALAN SANFERNANDO, PAMPANGA"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env vars: %w", err)
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", cfg.APIBaseURL)
	}

	if cfg.EmergencyPollInterval <= 0 {
		return nil, fmt.Errorf("EMERGENCY_POLL_INTERVAL must be positive")
	}

	return &cfg, nil
}

// RedisEnabled сообщает, настроен ли Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// AlertRelayEnabled сообщает, нужно ли пересылать тревоги во внешний вебхук
func (c *Config) AlertRelayEnabled() bool {
	return c.RedisEnabled() && c.AlertWebhookURL != ""
}

// HasStaffCredentials сообщает, заданы ли учетные данные для автоматического входа
func (c *Config) HasStaffCredentials() bool {
	return c.StaffEmail != "" && c.StaffPassword != ""
}
