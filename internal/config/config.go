// ABOUTME: Centralized configuration for agentmode
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the agent mode router
type Config struct {
	// OpenAI settings
	OpenAIKey   string
	ChatModel   string
	VisionModel string
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration

	// Router settings
	RulesFile string // optional YAML override of the inference rules

	// Storage settings
	DataDir string // optional override of the XDG data dir
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		ChatModel:   getEnv("AGENTMODE_OPENAI_MODEL", "gpt-4o-mini"),
		VisionModel: getEnv("AGENTMODE_VISION_MODEL", "gpt-4o-mini"),
		Timeout:     getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:  getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:  getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		RulesFile:   os.Getenv("AGENTMODE_RULES_FILE"),
		DataDir:     os.Getenv("AGENTMODE_DATA_DIR"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %v", c.Timeout)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("OPENAI_RETRY_DELAY must be non-negative, got %v", c.RetryDelay)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
