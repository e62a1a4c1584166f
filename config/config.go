package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Andy AI specifics
	Chat    ChatConfig
	Router  RouterConfig
	Storage StorageConfig
	Session SessionConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ChatConfig tunes the chat orchestration core.
type ChatConfig struct {
	HistoryLimit   int           // Max conversation history entries per user (individual messages)
	PromptTurns    int           // Recent turns included in each prompt
	CacheMaxSize   int           // Response cache capacity
	CacheTTL       time.Duration // Response cache entry lifetime
	RateMaxReqs    int           // Orchestrator fixed-window budget
	RatePerMinute  float64       // Orchestrator fixed-window length in minutes
	RetryAttempts  int           // Provider call attempts
	RetryDelay     time.Duration // Base backoff between attempts
	RequestTimeout time.Duration // End-to-end provider deadline
}

// RouterConfig tunes the heuristic model router.
type RouterConfig struct {
	TechnicalThreshold  float64
	ComplexityThreshold float64
	TechnicalKeywords   []string
}

// StorageConfig selects the durable document store driver.
type StorageConfig struct {
	Driver        string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration // 0 keeps documents indefinitely
}

// SessionConfig tunes explicit session documents.
type SessionConfig struct {
	RetentionDays int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers      []ProviderConfig `yaml:"providers"`
	RetryAttempts  int              `yaml:"retry_attempts"`
	RequestTimeout string           `yaml:"request_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Chat core
	cfg.Chat.HistoryLimit = viper.GetInt("chat.history_limit")
	cfg.Chat.PromptTurns = viper.GetInt("chat.prompt_turns")
	cfg.Chat.CacheMaxSize = viper.GetInt("chat.cache_max_size")
	cfg.Chat.CacheTTL = viper.GetDuration("chat.cache_ttl")
	cfg.Chat.RateMaxReqs = viper.GetInt("chat.rate_max_requests")
	cfg.Chat.RatePerMinute = viper.GetFloat64("chat.rate_per_minute")
	cfg.Chat.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.Chat.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.Chat.RequestTimeout = viper.GetDuration("llm.request_timeout")

	// Router
	cfg.Router.TechnicalThreshold = viper.GetFloat64("router.technical_threshold")
	cfg.Router.ComplexityThreshold = viper.GetFloat64("router.complexity_threshold")
	cfg.Router.TechnicalKeywords = viper.GetStringSlice("router.technical_keywords")

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.RedisAddr = viper.GetString("storage.redis_addr")
	cfg.Storage.RedisPassword = viper.GetString("storage.redis_password")
	cfg.Storage.RedisDB = viper.GetInt("storage.redis_db")
	cfg.Storage.TTL = viper.GetDuration("storage.ttl")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Storage.RedisAddr = redisAddr
	}

	// Sessions
	cfg.Session.RetentionDays = viper.GetInt("session.retention_days")

	// LLM Provider Abstraction
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RequestTimeout = viper.GetString("llm.request_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:    getStringFromMap(providerMap, "name"),
						Enabled: getBoolFromMap(providerMap, "enabled"),
						APIKey:  expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL: getStringFromMap(providerMap, "base_url"),
						Model:   getStringFromMap(providerMap, "model"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if len(cfg.LLM.Providers) == 0 {
		// Environment-only deployments configure both tiers via env vars.
		cfg.LLM.Providers = providersFromEnv()
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Chat core defaults
	viper.SetDefault("chat.history_limit", 50)
	viper.SetDefault("chat.prompt_turns", 3)
	viper.SetDefault("chat.cache_max_size", 100)
	viper.SetDefault("chat.cache_ttl", "5m")
	viper.SetDefault("chat.rate_max_requests", 10)
	viper.SetDefault("chat.rate_per_minute", 1.0)

	// Router defaults
	viper.SetDefault("router.technical_threshold", 0.7)
	viper.SetDefault("router.complexity_threshold", 0.8)
	viper.SetDefault("router.technical_keywords", defaultTechnicalKeywords)

	// Storage defaults
	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("storage.redis_addr", "localhost:6379")
	viper.SetDefault("storage.redis_db", 0)
	viper.SetDefault("storage.ttl", "0")

	// Session defaults
	viper.SetDefault("session.retention_days", 30)

	// LLM defaults
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "500ms")
	viper.SetDefault("llm.request_timeout", "30s")
}

// defaultTechnicalKeywords is the routing vocabulary; matched entries over
// message word count form the technical score. Tunable via config without
// redeploy.
var defaultTechnicalKeywords = []string{
	"tax", "taxes", "deduction", "deductions", "w2", "w-2", "1099",
	"irs", "form", "forms", "calculate", "calculation", "income",
	"withholding", "refund", "credit", "credits", "depreciation",
	"amortization", "filing", "bracket", "liability", "exemption",
	"capital", "gains",
}

// providersFromEnv builds the standard two-tier provider set from
// ANTHROPIC_API_KEY / OPENAI_API_KEY when no providers are configured.
func providersFromEnv() []ProviderConfig {
	var providers []ProviderConfig
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		providers = append(providers, ProviderConfig{
			Name:    "claude",
			Enabled: true,
			APIKey:  key,
		})
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		providers = append(providers, ProviderConfig{
			Name:    "gpt4",
			Enabled: true,
			APIKey:  key,
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration. A missing API key on an
// enabled provider is a fatal startup error, not a warning.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set ANTHROPIC_API_KEY/OPENAI_API_KEY")
	}

	enabledCount := 0
	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++
		if provider.APIKey == "" {
			return fmt.Errorf("provider %s: API key is required", provider.Name)
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}
