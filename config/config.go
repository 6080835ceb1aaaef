package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Assistant pipeline
	Assistant AssistantConfig
	Database  DatabaseConfig
	Retrieval RetrievalConfig
	Voyage    VoyageConfig
	Qdrant    QdrantConfig
	Artifacts ArtifactsConfig
	Session   SessionConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Channels
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedPeers int
}

// AssistantConfig controls the routing pipeline.
type AssistantConfig struct {
	HistoryEnabled bool
	HistoryPairs   int
	DebugMode      bool // appends system turns with classification, query and retrieved context
}

type DatabaseConfig struct {
	Driver  string // "pgx" or "sqlite3"
	DSN     string
	MaxRows int
	Timeout time.Duration
}

type RetrievalConfig struct {
	Mode         string // "local" or "remote"
	CorpusURL    string
	ChunkSize    int
	ChunkOverlap int
	TopKLocal    int
	TopKRemote   int
	BatchSize    int
	Concurrency  int
}

type VoyageConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	Namespace      string
	VectorSize     int
}

type ArtifactsConfig struct {
	Mode     string // "local" or "s3"
	DataDir  string
	Bucket   string
	CacheDir string
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/soroia/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/soroia/")

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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedPeers = viper.GetInt("rate_limit.max_tracked_peers")

	// Assistant
	cfg.Assistant.HistoryEnabled = viper.GetBool("assistant.history_enabled")
	cfg.Assistant.HistoryPairs = viper.GetInt("assistant.history_pairs")
	cfg.Assistant.DebugMode = viper.GetBool("assistant.debug_mode")

	// Catalog database
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(viper.GetString("database.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	cfg.Database.MaxRows = viper.GetInt("database.max_rows")
	cfg.Database.Timeout = viper.GetDuration("database.timeout")

	// Retrieval
	cfg.Retrieval.Mode = viper.GetString("retrieval.mode")
	cfg.Retrieval.CorpusURL = viper.GetString("retrieval.corpus_url")
	cfg.Retrieval.ChunkSize = viper.GetInt("retrieval.chunk_size")
	cfg.Retrieval.ChunkOverlap = viper.GetInt("retrieval.chunk_overlap")
	cfg.Retrieval.TopKLocal = viper.GetInt("retrieval.top_k_local")
	cfg.Retrieval.TopKRemote = viper.GetInt("retrieval.top_k_remote")
	cfg.Retrieval.BatchSize = viper.GetInt("retrieval.batch_size")
	cfg.Retrieval.Concurrency = viper.GetInt("retrieval.concurrency")

	// Voyage AI
	cfg.Voyage.APIKey = expandEnvVar(viper.GetString("voyage.api_key"))
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}
	cfg.Voyage.Model = viper.GetString("voyage.model")
	cfg.Voyage.BaseURL = viper.GetString("voyage.base_url")

	// Qdrant
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}
	cfg.Qdrant.APIKey = expandEnvVar(viper.GetString("qdrant.api_key"))
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.Namespace = viper.GetString("qdrant.namespace")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")

	// Artifacts
	cfg.Artifacts.Mode = viper.GetString("artifacts.mode")
	cfg.Artifacts.DataDir = viper.GetString("artifacts.data_dir")
	cfg.Artifacts.Bucket = viper.GetString("artifacts.bucket")
	cfg.Artifacts.CacheDir = viper.GetString("artifacts.cache_dir")

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Single-provider shortcut: GROQ_API_KEY alone is enough to start.
	if len(cfg.LLM.Providers) == 0 {
		if groqKey := viper.GetString("groq_api_key"); groqKey != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "groq",
				Enabled:  true,
				Priority: 1,
				APIKey:   groqKey,
				Model:    viper.GetString("llm.default_model"),
			})
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that viper defaults cannot express.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}

	switch c.Retrieval.Mode {
	case RetrievalModeLocal, RetrievalModeRemote:
	default:
		return fmt.Errorf("retrieval.mode must be %q or %q, got %q", RetrievalModeLocal, RetrievalModeRemote, c.Retrieval.Mode)
	}
	if c.Retrieval.ChunkOverlap >= c.Retrieval.ChunkSize {
		return fmt.Errorf("retrieval.chunk_overlap (%d) must be smaller than retrieval.chunk_size (%d)",
			c.Retrieval.ChunkOverlap, c.Retrieval.ChunkSize)
	}
	if c.Retrieval.Mode == RetrievalModeRemote && c.Qdrant.URL == "" {
		return fmt.Errorf("qdrant.url is required when retrieval.mode is %q", RetrievalModeRemote)
	}

	switch c.Artifacts.Mode {
	case ArtifactModeLocal:
	case ArtifactModeS3:
		if c.Artifacts.Bucket == "" {
			return fmt.Errorf("artifacts.bucket is required when artifacts.mode is %q", ArtifactModeS3)
		}
	default:
		return fmt.Errorf("artifacts.mode must be %q or %q, got %q", ArtifactModeLocal, ArtifactModeS3, c.Artifacts.Mode)
	}

	if c.Assistant.HistoryPairs <= 0 {
		return fmt.Errorf("assistant.history_pairs must be positive")
	}
	return nil
}

const (
	RetrievalModeLocal  = "local"
	RetrievalModeRemote = "remote"
	ArtifactModeLocal   = "local"
	ArtifactModeS3      = "s3"
)

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("rate_limit.max_tracked_peers", 1000)

	viper.SetDefault("assistant.history_enabled", false)
	viper.SetDefault("assistant.history_pairs", 2)
	viper.SetDefault("assistant.debug_mode", false)

	viper.SetDefault("database.driver", "pgx")
	viper.SetDefault("database.max_rows", 200)
	viper.SetDefault("database.timeout", "15s")

	viper.SetDefault("retrieval.mode", RetrievalModeLocal)
	viper.SetDefault("retrieval.corpus_url", "./data/textos")
	viper.SetDefault("retrieval.chunk_size", 500)
	viper.SetDefault("retrieval.chunk_overlap", 60)
	viper.SetDefault("retrieval.top_k_local", 6)
	viper.SetDefault("retrieval.top_k_remote", 5)
	viper.SetDefault("retrieval.batch_size", 64)
	viper.SetDefault("retrieval.concurrency", 4)

	viper.SetDefault("voyage.model", "voyage-3")

	viper.SetDefault("qdrant.collection_name", "textos-sorolla")
	viper.SetDefault("qdrant.namespace", "documentos")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("artifacts.mode", ArtifactModeLocal)
	viper.SetDefault("artifacts.data_dir", "./data")
	viper.SetDefault("artifacts.bucket", "museosorolla")
	viper.SetDefault("artifacts.cache_dir", "./data_s3_cache")

	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 1000)

	// LLM defaults
	viper.SetDefault("llm.default_model", "llama-3.3-70b-versatile")
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
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

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set GROQ_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
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

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
