package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string
	// Database
	DBUrl      string
	DBMaxConns int
	// Tokens
	JWTSecret         string
	CandidateTokenTTL time.Duration
	EmployerTokenTTL  time.Duration
	// Uploads
	UploadDir      string
	MaxUploadBytes int64
	// CORS
	CORSOrigins []string
	// TrustProxy makes ClientIP honour X-Forwarded-For
	TrustProxy bool
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is optional; production injects the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "5000"),
		AppEnv:     getEnv("APP_ENV", "development"),
		DBUrl:      getEnv("DATABASE_URL", ""),
		DBMaxConns: getEnvInt("DB_MAX_CONNS", 10),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		CandidateTokenTTL: getEnvDuration("CANDIDATE_TOKEN_TTL", time.Hour),
		EmployerTokenTTL:  getEnvDuration("EMPLOYER_TOKEN_TTL", 7*24*time.Hour),

		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 5*1024*1024)), // 5 MB

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		TrustProxy:  getEnvBool("TRUST_PROXY", false),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	// The in-memory store is for development; production must persist.
	if cfg.IsProduction() && cfg.DBUrl == "" {
		return nil, errors.New("DATABASE_URL is required in production")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("1h", "168h") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
