package model

import "time"

// Config is the full application configuration. Built once at startup
// from defaults, config file, env vars and flags, then passed by
// reference; nothing reads configuration through globals.
type Config struct {
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Inference   InferenceConfig   `yaml:"inference" mapstructure:"inference"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Limiter     LimiterConfig     `yaml:"limiter" mapstructure:"limiter"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Chatbot     ChatbotConfig     `yaml:"chatbot" mapstructure:"chatbot"`
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`
	Proxy       ProxyConfig       `yaml:"proxy" mapstructure:"proxy"`
	UploadDir   string            `yaml:"upload_dir" mapstructure:"upload_dir"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
}

// InferenceConfig selects and tunes the underlying engine provider
type InferenceConfig struct {
	Provider  string        `yaml:"provider" mapstructure:"provider"` // keyword, openai, ollama
	Model     string        `yaml:"model" mapstructure:"model"`
	APIKey    string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int           `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// CacheConfig controls analysis result caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// LimiterConfig rate-limits outbound inference calls per provider
type LimiterConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ConcurrencyConfig sizes the batch worker pool
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// ChatbotConfig bounds the per-user conversation log
type ChatbotConfig struct {
	HistoryLimit int `yaml:"history_limit" mapstructure:"history_limit"`
}

// LoggingConfig tunes the structured logger
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// ProxyConfig routes outbound engine HTTP through a proxy
type ProxyConfig struct {
	HTTP    string `yaml:"http" mapstructure:"http"`
	HTTPS   string `yaml:"https" mapstructure:"https"`
	NoProxy string `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// DefaultConfig returns sensible defaults. The keyword provider keeps the
// binary runnable with no credentials configured.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadBytes:  25 << 20,
		},
		Inference: InferenceConfig{
			Provider:  "keyword",
			Timeout:   30 * time.Second,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Limiter: LimiterConfig{
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Chatbot: ChatbotConfig{
			HistoryLimit: 50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UploadDir: "",
	}
}
