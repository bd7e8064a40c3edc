package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort         = 8000
	defaultEnv          = "development"
	defaultDBHost       = "127.0.0.1"
	defaultDBPort       = 3306
	defaultDBUser       = "root"
	defaultDBPassword   = "password"
	defaultDBName       = "shelfmark"
	defaultDBCharset    = "utf8mb4"
	defaultDBLoc        = "Local"
	defaultRedisURL     = "redis://localhost:6379/0"
	defaultJWTAlgorithm = "HS256"
	defaultTokenTTLMin  = 30
	defaultAIProvider   = "ollama"
	defaultAIEndpoint   = "http://localhost:11434"
	defaultAIModel      = "llama3.1"
	defaultChunkLimit   = 4000
	defaultMaxUploadMB  = 25
)

// AppConfig holds runtime startup configuration loaded from YAML. It is built
// once at startup and passed explicitly to every component that needs it;
// business logic never reads configuration from ambient globals.
type AppConfig struct {
	Port           int
	Env            string // "development" | "production"
	DSN            string
	RedisURL       string
	AllowedOrigins []string
	Auth           AuthConfig
	AI             AIConfig
	Summarize      SummarizeConfig
	MaxUploadMB    int
}

// AuthConfig configures token signing.
type AuthConfig struct {
	JWTSecret    string
	JWTAlgorithm string // HS256 | HS384 | HS512
	TokenTTLMin  int
}

// AIConfig selects and configures the text-generation provider.
type AIConfig struct {
	Provider string // "ollama" | "openai"
	Endpoint string
	APIKey   string
	Model    string
}

// SummarizeConfig bounds the summarization pipeline.
type SummarizeConfig struct {
	ChunkLimit int
}

func (c *AppConfig) IsDev() bool { return c.Env != "production" }

type rawConfig struct {
	Port           int               `yaml:"port"`
	Env            string            `yaml:"env"`
	DSN            string            `yaml:"dsn"`
	Database       rawDatabaseConfig `yaml:"database"`
	RedisURL       string            `yaml:"redis_url"`
	AllowedOrigins []string          `yaml:"allowed_origins"`
	Auth           rawAuthConfig     `yaml:"auth"`
	AI             rawAIConfig       `yaml:"ai"`
	Summarize      rawSummarizeCfg   `yaml:"summarize"`
	MaxUploadMB    int               `yaml:"max_upload_mb"`
}

type rawDatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

type rawAuthConfig struct {
	JWTSecret    string `yaml:"jwt_secret"`
	JWTAlgorithm string `yaml:"jwt_algorithm"`
	TokenTTLMin  int    `yaml:"token_ttl_minutes"`
}

type rawAIConfig struct {
	Provider string `yaml:"provider"`
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

type rawSummarizeCfg struct {
	ChunkLimit int `yaml:"chunk_limit"`
}

// Load reads and normalizes the YAML config file. A missing file is not an
// error; it yields the development defaults so a bare checkout boots.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	var raw rawConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := normalize(&raw)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalize(raw *rawConfig) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:           raw.Port,
		Env:            strings.TrimSpace(strings.ToLower(raw.Env)),
		RedisURL:       strings.TrimSpace(raw.RedisURL),
		AllowedOrigins: raw.AllowedOrigins,
		MaxUploadMB:    raw.MaxUploadMB,
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = defaultMaxUploadMB
	}

	cfg.DSN = strings.TrimSpace(raw.DSN)
	if cfg.DSN == "" {
		cfg.DSN = buildDSN(&raw.Database)
	}

	cfg.Auth = AuthConfig{
		JWTSecret:    strings.TrimSpace(raw.Auth.JWTSecret),
		JWTAlgorithm: strings.ToUpper(strings.TrimSpace(raw.Auth.JWTAlgorithm)),
		TokenTTLMin:  raw.Auth.TokenTTLMin,
	}
	if cfg.Auth.JWTAlgorithm == "" {
		cfg.Auth.JWTAlgorithm = defaultJWTAlgorithm
	}
	switch cfg.Auth.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported jwt_algorithm %q", cfg.Auth.JWTAlgorithm)
	}
	if cfg.Auth.TokenTTLMin <= 0 {
		cfg.Auth.TokenTTLMin = defaultTokenTTLMin
	}
	if cfg.Auth.JWTSecret == "" {
		if !cfg.IsDev() {
			return nil, fmt.Errorf("auth.jwt_secret is required in production")
		}
		cfg.Auth.JWTSecret = "shelfmark-dev-secret-change-me"
	}

	cfg.AI = AIConfig{
		Provider: strings.ToLower(strings.TrimSpace(raw.AI.Provider)),
		Endpoint: strings.TrimRight(strings.TrimSpace(raw.AI.Endpoint), "/"),
		APIKey:   strings.TrimSpace(raw.AI.APIKey),
		Model:    strings.TrimSpace(raw.AI.Model),
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = defaultAIProvider
	}
	switch cfg.AI.Provider {
	case "ollama", "openai":
	default:
		return nil, fmt.Errorf("unsupported ai.provider %q", cfg.AI.Provider)
	}
	if cfg.AI.Endpoint == "" && cfg.AI.Provider == "ollama" {
		cfg.AI.Endpoint = defaultAIEndpoint
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultAIModel
	}

	cfg.Summarize = SummarizeConfig{ChunkLimit: raw.Summarize.ChunkLimit}
	if cfg.Summarize.ChunkLimit <= 0 {
		cfg.Summarize.ChunkLimit = defaultChunkLimit
	}

	return cfg, nil
}
