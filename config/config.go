package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Auth
	JWTSecret      string
	JWTExpiryHours int
	// Cohere extraction API
	CohereAPIKey  string
	CohereAPIURL  string
	CohereModels  []string
	CohereTimeout time.Duration
	// Redis Configuration (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	// Store timeouts (reads degrade to empty, writes fail loud)
	StoreReadTimeout  time.Duration
	StoreWriteTimeout time.Duration
	// Upload limits
	MaxUploadBytes int64
	// Scoring weights and caps. Business heuristics carried over as-is;
	// tunable via env but the defaults are the contract.
	ScoreWeightGPA            float64
	ScoreWeightSkills         float64
	ScoreWeightExperience     float64
	ScoreWeightCertifications float64
	ScoreCapSkills            int
	ScoreCapExperience        int
	ScoreCapCertifications    int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Auth
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		// Cohere
		CohereAPIKey:  getEnv("COHERE_API_KEY", ""),
		CohereAPIURL:  strings.TrimRight(getEnv("COHERE_API_URL", "https://api.cohere.ai/v1/chat"), "/"),
		CohereModels:  splitList(getEnv("COHERE_MODELS", "command-r7b-12-2024,command")),
		CohereTimeout: time.Duration(getEnvInt("COHERE_TIMEOUT_SECONDS", 60)) * time.Second,
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate limiting (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		// Store timeouts
		StoreReadTimeout:  time.Duration(getEnvInt("STORE_READ_TIMEOUT_SECONDS", 3)) * time.Second,
		StoreWriteTimeout: time.Duration(getEnvInt("STORE_WRITE_TIMEOUT_SECONDS", 5)) * time.Second,
		// Uploads (10MB, same limit the upload form enforced)
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 10)) * 1024 * 1024,
		// Scoring heuristics: GPA 40%, skills 30%, experience 20%, certifications 10%
		ScoreWeightGPA:            getEnvFloat("SCORE_WEIGHT_GPA", 40),
		ScoreWeightSkills:         getEnvFloat("SCORE_WEIGHT_SKILLS", 30),
		ScoreWeightExperience:     getEnvFloat("SCORE_WEIGHT_EXPERIENCE", 20),
		ScoreWeightCertifications: getEnvFloat("SCORE_WEIGHT_CERTIFICATIONS", 10),
		ScoreCapSkills:            getEnvPositiveInt("SCORE_CAP_SKILLS", 20),
		ScoreCapExperience:        getEnvPositiveInt("SCORE_CAP_EXPERIENCE", 10),
		ScoreCapCertifications:    getEnvPositiveInt("SCORE_CAP_CERTIFICATIONS", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Authentication endpoints will reject all tokens.")
	}
	if cfg.CohereAPIKey == "" {
		log.Println("WARNING: COHERE_API_KEY not configured. CV extraction will be unavailable.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
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

// getEnvPositiveInt is getEnvInt for values used as divisors: anything below 1
// falls back, so a misconfigured cap cannot produce NaN or Inf scores
func getEnvPositiveInt(key string, fallback int) int {
	if value := getEnvInt(key, fallback); value >= 1 {
		return value
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
