package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig holds rate limiting configuration for a specific endpoint.
// A Limit of 0 means the endpoint is unlimited.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// DefaultEndpointConfigs returns the default per-endpoint rate limits.
// Scoring and disambiguation are cheap but write results, so they get a
// moderate tier. Roadmap generation hits the LLM and gets the strict tier.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Health checks are unlimited
		{Path: "/health", Method: "GET", Limit: 0},

		// Session creation and destructive operations
		{Path: "/sessions", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/sessions/", Method: "DELETE", Limit: 30, Window: time.Minute, Burst: 10},

		// Quiz progress writes
		{Path: "/sessions/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 20},

		// Expensive: LLM-backed roadmap generation. The suffix rule
		// takes priority over the generic session POST rule.
		{Path: "/roadmap", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},

		// Reads
		{Path: "/sessions/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 40},
		{Path: "/careers", Method: "GET", Limit: 120, Window: time.Minute, Burst: 40},
	}
}

// LoadConfigFromEnv loads rate limiting configuration from environment variables.
func LoadConfigFromEnv() *Config {
	config := &Config{
		Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", true),
		DefaultLimit:    getIntEnv("RATE_LIMIT_DEFAULT_LIMIT", 100),
		DefaultWindow:   getDurationEnv("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getDurationEnv("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	return config
}

func parseIPList(value string) map[string]bool {
	result := make(map[string]bool)
	if value == "" {
		return result
	}
	for _, ip := range strings.Split(value, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
