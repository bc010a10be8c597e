// Package config provides configuration management for the pantry service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	Inventory InventoryConfig `yaml:"inventory"`
	LLM       LLMConfig       `yaml:"llm"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port          string
	RateLimit     int
	RateWindow    time.Duration
	CookRateLimit int
	// HouseholdRateLimit is shared by all members of a household per RateWindow.
	HouseholdRateLimit int
	CORSOrigins        []string
	SwaggerUser        string
	SwaggerPass        string
	RequestTimeout     time.Duration
	IdempotencyTTL     time.Duration
}

// AuthConfig holds authentication configuration.
// Tokens are issued by the household identity provider; this service only validates them.
type AuthConfig struct {
	Enabled bool
	// APIKeys maps each gateway key to the household it may act for ("" for any).
	APIKeys        map[string]string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// InventoryConfig holds inventory policy.
type InventoryConfig struct {
	LeftoverFridgeDays  int    `yaml:"leftover_fridge_days"`
	LeftoverFreezerDays int    `yaml:"leftover_freezer_days"`
	LeftoverPantryDays  int    `yaml:"leftover_pantry_days"`
	MaxConflictRetries  int    `yaml:"max_conflict_retries"`
	DefaultUnitSystem   string `yaml:"default_unit_system"`
}

// LLMConfig holds the nutrition estimator settings.
type LLMConfig struct {
	Enabled bool          `yaml:"enabled"`
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			RateLimit:          getEnvInt("RATE_LIMIT", 100),
			RateWindow:         getEnvDuration("RATE_WINDOW", time.Minute),
			CookRateLimit:      getEnvInt("COOK_RATE_LIMIT", 10),
			HouseholdRateLimit: getEnvInt("HOUSEHOLD_RATE_LIMIT", 300),
			CORSOrigins:        parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:        getEnv("SWAGGER_USER", ""),
			SwaggerPass:        getEnv("SWAGGER_PASS", ""),
			RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			IdempotencyTTL:     getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},
		Auth: AuthConfig{
			Enabled:        getEnvBool("AUTH_ENABLED", false),
			APIKeys:        parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:   getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017/?replicaSet=rs0"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "pantry_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Inventory: InventoryConfig{
			LeftoverFridgeDays:  getEnvInt("LEFTOVER_FRIDGE_DAYS", 3),
			LeftoverFreezerDays: getEnvInt("LEFTOVER_FREEZER_DAYS", 60),
			LeftoverPantryDays:  getEnvInt("LEFTOVER_PANTRY_DAYS", 3),
			MaxConflictRetries:  getEnvInt("MAX_CONFLICT_RETRIES", 1),
			DefaultUnitSystem:   getEnv("DEFAULT_UNIT_SYSTEM", "metric"),
		},
		LLM: LLMConfig{
			Enabled: getEnvBool("LLM_ENABLED", false),
			APIKey:  getEnv("LLM_API_KEY", ""),
			Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
			BaseURL: getEnv("LLM_BASE_URL", ""),
			Timeout: getEnvDuration("LLM_TIMEOUT", 20*time.Second),
		},
	}
}

// fileOverlay is the part of the configuration a YAML file may override.
type fileOverlay struct {
	Inventory InventoryConfig `yaml:"inventory"`
	LLM       LLMConfig       `yaml:"llm"`
}

// LoadWithFile loads the environment configuration and overlays the inventory and
// llm sections from the YAML file at path. Keys missing from the file keep their
// environment value. An empty path skips the overlay. The result is validated either way.
func LoadWithFile(path string) (Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	ov := fileOverlay{Inventory: cfg.Inventory, LLM: cfg.LLM}
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.Inventory = ov.Inventory
	cfg.LLM = ov.LLM
	return cfg, cfg.Validate()
}

const (
	minFreezerDays = 60
	maxFreezerDays = 90
)

// Validate rejects policy values the service cannot run with.
func (c Config) Validate() error {
	inv := c.Inventory
	if inv.LeftoverFridgeDays < 1 || inv.LeftoverPantryDays < 1 {
		return errors.New("fridge and pantry leftovers must keep at least one day")
	}
	if inv.LeftoverFreezerDays < minFreezerDays || inv.LeftoverFreezerDays > maxFreezerDays {
		return fmt.Errorf("freezer leftovers must keep between %d and %d days, got %d",
			minFreezerDays, maxFreezerDays, inv.LeftoverFreezerDays)
	}
	if inv.MaxConflictRetries < 0 {
		return errors.New("max conflict retries must not be negative")
	}
	if inv.DefaultUnitSystem != "metric" && inv.DefaultUnitSystem != "us" {
		return fmt.Errorf("unknown unit system %q", inv.DefaultUnitSystem)
	}
	if c.LLM.Enabled && c.LLM.APIKey == "" {
		return errors.New("llm is enabled without an api key")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseAPIKeys reads "key[:household],..." into key -> household.
func parseAPIKeys(s string) map[string]string {
	if s == "" {
		return nil
	}
	entries := strings.Split(s, ",")
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, household, _ := strings.Cut(strings.TrimSpace(entry), ":")
		if key = strings.TrimSpace(key); key != "" {
			result[key] = strings.TrimSpace(household)
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
