package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// DefaultChatID - deep link orqali chat_id kelmasa ishlatiladigan standart admin
const DefaultChatID = "7882316826"

// Config - dastur konfiguratsiyasi
type Config struct {
	// Remote katalog API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Access gate
	AdminChatID string

	// DeepSeek AI (tarjima)
	OpenAIAPIKey string

	// Theme fayli (localStorage o'rnida)
	ThemeFile string

	// Environment
	Environment string // "development", "production"
}

// LoadConfig - konfiguratsiyani yuklash
func LoadConfig() *Config {
	cfg := &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		HTTPTimeout: getDuration("HTTP_TIMEOUT", 30*time.Second),

		AdminChatID: getEnv("ADMIN_CHAT_ID", DefaultChatID),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		ThemeFile: getEnv("THEME_FILE", ".bozorcha-theme.json"),

		Environment: getEnv("ENVIRONMENT", "development"),
	}

	// Config log (maxfiy qiymatlarni yashirish)
	log.Println("⚙️ Configuration loaded:")
	log.Printf("   API: %s (timeout: %s)", cfg.APIBaseURL, cfg.HTTPTimeout)
	log.Printf("   Admin chat_id: %s", cfg.AdminChatID)
	log.Printf("   OpenAI key: %s", maskString(cfg.OpenAIAPIKey))
	log.Printf("   Environment: %s", cfg.Environment)

	return cfg
}

// getEnv - environment variable olish (default bilan)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration - davomiylikni env dan olish (soniyalarda yoki Go formatida)
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}

// maskString - stringni yashirish (sk-abcdef... -> sk***cdef)
func maskString(s string) string {
	if len(s) < 4 {
		return "***"
	}
	if len(s) < 8 {
		return s[:2] + "***"
	}
	return s[:2] + "***" + s[len(s)-4:]
}

// IsDevelopment - development muhitmi
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction - production muhitmi
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasOpenAIConfig - AI tarjima sozlanganmi
func (c *Config) HasOpenAIConfig() bool {
	return c.OpenAIAPIKey != ""
}
