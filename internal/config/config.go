package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RazorpayKeyID     string
	RazorpayKeySecret string
	AppPort           string
	AppEnv            string
	VerifyFallback    string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		VerifyFallback:    os.Getenv("VERIFY_FALLBACK"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	// Without gateway credentials every request would fail anyway,
	// so refuse to start instead of serving degraded traffic.
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		log.Fatal("Razorpay credentials not loaded properly")
	}

	return cfg
}

// IsProduction controls error-detail verbosity and the log encoder.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
