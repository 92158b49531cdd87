package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ListenAddress string `yaml:"listen_address"`
	Environment   string `yaml:"environment"`

	// Upstream store
	StoreBaseURL string `yaml:"store_base_url"`

	// Cache behavior
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	EnableRefresh   bool          `yaml:"enable_refresh"`
	RefreshSchedule string        `yaml:"refresh_schedule"`

	// Mutation behavior: whether deleting an event also deletes the
	// creator's user record by default
	PurgeCreatorOnDelete bool `yaml:"purge_creator_on_delete"`

	// HTTP surface
	CORSOrigins []string `yaml:"cors_origins"`

	// Logging and features
	LogLevel      string `yaml:"log_level"`
	EnableMetrics bool   `yaml:"enable_metrics"`
}

// LoadConfig loads configuration from an optional YAML file named by
// CONFIG_FILE, then applies environment variable overrides.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ListenAddress:        ":8080",
		Environment:          "development",
		StoreBaseURL:         "http://localhost:3000",
		CacheTTL:             0,
		EnableRefresh:        false,
		RefreshSchedule:      "@every 5m",
		PurgeCreatorOnDelete: true,
		CORSOrigins:          []string{"http://localhost:5173"},
		LogLevel:             "info",
		EnableMetrics:        true,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile merges a YAML config file over the defaults
func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv applies environment variable overrides
func (c *Config) applyEnv() {
	c.ListenAddress = getEnv("LISTEN_ADDRESS", c.ListenAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.StoreBaseURL = getEnv("STORE_BASE_URL", c.StoreBaseURL)
	c.CacheTTL = getEnvDuration("CACHE_TTL", c.CacheTTL)
	c.EnableRefresh = getEnvBool("ENABLE_REFRESH", c.EnableRefresh)
	c.RefreshSchedule = getEnv("REFRESH_SCHEDULE", c.RefreshSchedule)
	c.PurgeCreatorOnDelete = getEnvBool("PURGE_CREATOR_ON_DELETE", c.PurgeCreatorOnDelete)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.StoreBaseURL == "" {
		return fmt.Errorf("STORE_BASE_URL is required")
	}
	parsed, err := url.Parse(c.StoreBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("STORE_BASE_URL %q is not a valid URL", c.StoreBaseURL)
	}
	if c.EnableRefresh && c.RefreshSchedule == "" {
		return fmt.Errorf("REFRESH_SCHEDULE is required when refresh is enabled")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
