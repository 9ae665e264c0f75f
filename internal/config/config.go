package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr          string
	MongoURL          string
	MongoDB           string
	JWTSecret         string
	TokenTTL          time.Duration
	ShutdownTimeout   time.Duration
	CORSOrigins       []string
	RazorpayKeyID     string
	RazorpayKeySecret string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// MONGO_PUBLIC_URL wins over MONGO_URL when both are set.
func FromEnv() Config {
	mongoURL := os.Getenv("MONGO_PUBLIC_URL")
	if mongoURL == "" {
		mongoURL = envOrDefault("MONGO_URL", "mongodb://localhost:27017")
	}
	return Config{
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		MongoURL:          mongoURL,
		MongoDB:           envOrDefault("MONGO_DB", "laptop_store"),
		JWTSecret:         envOrDefault("JWT_SECRET", "yourSecretKeyHere"),
		TokenTTL:          time.Hour,
		ShutdownTimeout:   envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:       envList("CORS_ORIGINS", []string{"http://localhost:5500"}),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
