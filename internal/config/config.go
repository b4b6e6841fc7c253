package config

import (
	"os"
	"strconv"
	"strings"
)

// Config представляет конфигурацию приложения
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	Kafka     KafkaConfig     `json:"kafka"`
	Logger    LoggerConfig    `json:"logger"`
	DodoAPI   DodoAPIConfig   `json:"dodo_api"`
	Cache     CacheConfig     `json:"cache"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

// ServerConfig представляет конфигурацию HTTP сервера
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
}

// DatabaseConfig представляет конфигурацию базы данных со справочником пиццерий
type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

// RedisConfig представляет конфигурацию Redis
type RedisConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// KafkaConfig представляет конфигурацию Kafka
type KafkaConfig struct {
	Brokers []string `json:"brokers"`
	Topics  Topics   `json:"topics"`
}

// Topics представляет список топиков Kafka
type Topics struct {
	StopSales string `json:"stop_sales"`
}

// LoggerConfig представляет конфигурацию логгера
type LoggerConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
	File   string `json:"file"`
}

// DodoAPIConfig описывает адреса и таймауты внешних поверхностей Dodo IS
type DodoAPIConfig struct {
	OfficeManagerBaseURL string `json:"office_manager_base_url"`
	ShiftManagerBaseURL  string `json:"shift_manager_base_url"`
	PublicAPIBaseURL     string `json:"public_api_base_url"`
	PrivateAPIBaseURL    string `json:"private_api_base_url"`
	UserAgent            string `json:"user_agent"`
	TimeoutSeconds       int    `json:"timeout_seconds"`
	BatchConcurrency     int    `json:"batch_concurrency"`
}

// CacheConfig хранит TTL кеша по видам статистики
type CacheConfig struct {
	RestaurantOrdersTTLMinutes int `json:"restaurant_orders_ttl_minutes"`
	CertificatesTTLMinutes     int `json:"certificates_ttl_minutes"`
	StocksTTLMinutes           int `json:"stocks_ttl_minutes"`
}

// RateLimitConfig описывает настройки rate limiting
type RateLimitConfig struct {
	Enabled       bool   `json:"enabled"`
	Requests      int    `json:"requests"`
	WindowSeconds int    `json:"window_seconds"`
	KeyPrefix     string `json:"key_prefix"`
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 10),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "dodo_user"),
			Password: getEnv("DB_PASSWORD", "dodo_pass"),
			DBName:   getEnv("DB_NAME", "dodo_statistics"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topics: Topics{
				StopSales: getEnv("KAFKA_TOPIC_STOP_SALES", "stop_sales"),
			},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
		DodoAPI: DodoAPIConfig{
			OfficeManagerBaseURL: getEnv("OFFICE_MANAGER_BASE_URL", "https://officemanager.dodopizza.ru"),
			ShiftManagerBaseURL:  getEnv("SHIFT_MANAGER_BASE_URL", "https://shiftmanager.dodopizza.ru"),
			PublicAPIBaseURL:     getEnv("PUBLIC_API_BASE_URL", "https://publicapi.dodois.io"),
			PrivateAPIBaseURL:    getEnv("PRIVATE_API_BASE_URL", "https://api.dodois.io/dodopizza/ru"),
			UserAgent:            getEnv("DODO_API_USER_AGENT", "Goretsky-Band"),
			TimeoutSeconds:       getEnvAsInt("DODO_API_TIMEOUT_SECONDS", 30),
			BatchConcurrency:     getEnvAsInt("DODO_API_BATCH_CONCURRENCY", 8),
		},
		Cache: CacheConfig{
			RestaurantOrdersTTLMinutes: getEnvAsInt("CACHE_RESTAURANT_ORDERS_TTL_MINUTES", 10),
			CertificatesTTLMinutes:     getEnvAsInt("CACHE_CERTIFICATES_TTL_MINUTES", 10),
			StocksTTLMinutes:           getEnvAsInt("CACHE_STOCKS_TTL_MINUTES", 30),
		},
		RateLimit: RateLimitConfig{
			Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", false),
			Requests:      getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
			WindowSeconds: getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60),
			KeyPrefix:     getEnv("RATE_LIMIT_KEY_PREFIX", "ratelimit"),
		},
	}
}

// getEnv получает значение переменной окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt получает значение переменной окружения как int с значением по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool получает значение переменной окружения как bool с значением по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(getEnv(key, ""))
	if valueStr == "true" || valueStr == "1" || valueStr == "yes" {
		return true
	}
	if valueStr == "false" || valueStr == "0" || valueStr == "no" {
		return false
	}
	return defaultValue
}
