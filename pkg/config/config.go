package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database
	Database DatabaseConfig

	// Redis (시세 캐시)
	Redis RedisConfig

	// Market data provider
	MarketData MarketDataConfig

	// Analytics engine defaults
	Engine EngineConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// MarketDataConfig holds market data provider configuration
// 시세/종목정보 제공자 (REST 시세 + HTML 프로필 페이지)
type MarketDataConfig struct {
	BaseURL    string
	ProfileURL string
	APIKey     string

	// Rate Limit (req/sec)
	RateLimit int

	// 벤치마크 심볼 (베타 계산용)
	BenchmarkSymbol string
}

// EngineConfig holds analytics engine defaults
// 계산식 내부의 도메인 상수(가정 변동성 등)는 엔진 패키지에 고정되어 있음
type EngineConfig struct {
	RiskFreeRate    float64 // 연간 무위험 수익률 (기본 0.04)
	HistoryDays     int     // 지표 계산에 사용할 과거 일수
	DefaultHorizons []int   // 가격 예측 기본 horizon (일)
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},

		// Market data provider
		MarketData: MarketDataConfig{
			BaseURL:         getEnv("MARKETDATA_BASE_URL", "https://api.marketfeed.io/v1"),
			ProfileURL:      getEnv("MARKETDATA_PROFILE_URL", "https://marketfeed.io/profile"),
			APIKey:          getEnv("MARKETDATA_API_KEY", ""),
			RateLimit:       getEnvAsInt("MARKETDATA_RATE_LIMIT", 5),
			BenchmarkSymbol: getEnv("BENCHMARK_SYMBOL", "SPY"),
		},

		// Engine defaults
		Engine: EngineConfig{
			RiskFreeRate:    getEnvAsFloat("RISK_FREE_RATE", 0.04),
			HistoryDays:     getEnvAsInt("HISTORY_DAYS", 365),
			DefaultHorizons: []int{1, 7, 30},
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Engine.RiskFreeRate < 0 || c.Engine.RiskFreeRate > 1 {
		return fmt.Errorf("RISK_FREE_RATE must be between 0 and 1")
	}

	if c.MarketData.RateLimit <= 0 {
		return fmt.Errorf("MARKETDATA_RATE_LIMIT must be > 0")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",         // Current directory
		"backend/.env", // From project root
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
			filepath.Join(exeDir, "..", "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
