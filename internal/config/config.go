package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string
	LogLevel string

	// Пороговые значения детектора (триангуляция)
	GForceThreshold         float64
	HeartRateSpikeThreshold float64
	HeartRateDropThreshold  float64
	VoiceDecibelThreshold   float64

	// Тайминги протокола
	ConsciousnessWindow    time.Duration
	ConsciousnessPollEvery time.Duration
	TransportDuration      time.Duration
	TransportPollEvery     time.Duration
	SwarmTimeout           time.Duration
	HospitalArrivalRadiusM float64
	BlackBoxBufferSeconds  int

	// Twilio
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Контакты для уведомлений
	FamilyPhone   string
	FamilyEmail   string
	HospitalPhone string
	HospitalEmail string

	// Финансы
	DefaultPreauthAmount float64
	PreauthTokenTTL      time.Duration
	InsuranceMockMode    bool

	// Google Maps (поиск ближайшего травмоцентра)
	GoogleMapsAPIKey  string
	GoogleMapsTimeout time.Duration

	// Redis Config
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Webhook Config
	WebhookURL        string
	WebhookSecret     string
	WebhookTimeout    time.Duration
	WebhookMaxRetries int
	WebhookBaseDelay  time.Duration

	// Токены для аутентификации триггера
	TriggerTokens []string
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		GForceThreshold:         getEnvAsFloat("G_FORCE_THRESHOLD", 4.0),
		HeartRateSpikeThreshold: getEnvAsFloat("HEART_RATE_SPIKE_THRESHOLD", 140.0),
		HeartRateDropThreshold:  getEnvAsFloat("HEART_RATE_DROP_THRESHOLD", 50.0),
		VoiceDecibelThreshold:   getEnvAsFloat("VOICE_DECIBEL_THRESHOLD", 0.0),

		ConsciousnessWindow:    getEnvAsDuration("CONSCIOUSNESS_WINDOW", 5*time.Second),
		ConsciousnessPollEvery: getEnvAsDuration("CONSCIOUSNESS_POLL_EVERY", 500*time.Millisecond),
		TransportDuration:      getEnvAsDuration("TRANSPORT_DURATION", 30*time.Second),
		TransportPollEvery:     getEnvAsDuration("TRANSPORT_POLL_EVERY", time.Second),
		SwarmTimeout:           getEnvAsDuration("SWARM_TIMEOUT", 30*time.Second),
		HospitalArrivalRadiusM: getEnvAsFloat("HOSPITAL_ARRIVAL_RADIUS_METERS", 100.0),
		BlackBoxBufferSeconds:  getEnvAsInt("BLACK_BOX_BUFFER_SECONDS", 60),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),

		FamilyPhone:   os.Getenv("FAMILY_PHONE"),
		FamilyEmail:   os.Getenv("FAMILY_EMAIL"),
		HospitalPhone: os.Getenv("HOSPITAL_PHONE"),
		HospitalEmail: os.Getenv("HOSPITAL_EMAIL"),

		DefaultPreauthAmount: getEnvAsFloat("DEFAULT_PREAUTH_AMOUNT", 50000.0),
		PreauthTokenTTL:      getEnvAsDuration("PREAUTH_TOKEN_TTL", 24*time.Hour),
		InsuranceMockMode:    getEnvAsBool("INSURANCE_MOCK_MODE", false),

		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		GoogleMapsTimeout: getEnvAsDuration("GOOGLE_MAPS_TIMEOUT", 10*time.Second),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка токенов триггера
	tokensStr := os.Getenv("TRIGGER_TOKENS")
	if tokensStr != "" {
		cfg.TriggerTokens = strings.Split(tokensStr, ",")
		for i, token := range cfg.TriggerTokens {
			cfg.TriggerTokens[i] = strings.TrimSpace(token)
		}
	}

	if len(cfg.TriggerTokens) == 0 {
		return nil, fmt.Errorf("TRIGGER_TOKENS environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
