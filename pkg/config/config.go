package config

import (
	"os"
)

// Config holds all application configuration values
type Config struct {
	ResendAPIKey   string
	ResendBaseURL  string
	LeadFrom       string
	LeadTo         string
	SubjectPrefix  string
	ThanksURL      string
	RequireMessage bool
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		ResendBaseURL:  envOrDefault("RESEND_BASE_URL", "https://api.resend.com"),
		LeadFrom:       os.Getenv("LEAD_FROM"),
		LeadTo:         os.Getenv("LEAD_TO"),
		SubjectPrefix:  envOrDefault("LEAD_SUBJECT_PREFIX", "New Lead"),
		ThanksURL:      envOrDefault("LEAD_THANKS_URL", "/thanks/"),
		RequireMessage: envOrDefaultBool("LEAD_REQUIRE_MESSAGE", false),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes":
		return true
	case "0", "false", "FALSE", "False", "no":
		return false
	}
	return fallback
}
