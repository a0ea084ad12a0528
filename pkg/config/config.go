package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/events"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	VectorIndex VectorIndexConfig `mapstructure:"vector_index"`
	Embedding   EmbeddingConfig   `mapstructure:"embedding"`
	Judge       JudgeConfig       `mapstructure:"judge"`
	Moderation  ModerationConfig  `mapstructure:"moderation"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Cors        CorsConfig        `mapstructure:"cors"`
	Events      EventsConfig      `mapstructure:"events"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	SecretKey   string `mapstructure:"secret_key"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
}

type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	EnableLatency  bool `mapstructure:"enable_latency"`
	EnablePerRoute bool `mapstructure:"enable_per_route"`
}

type DatabaseConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type VectorIndexConfig struct {
	// Backend is "redis" or "memory".
	Backend   string `mapstructure:"backend"`
	IndexName string `mapstructure:"index_name"`
	ListLimit int    `mapstructure:"list_limit"`
	Recreate  bool   `mapstructure:"recreate"`
}

type EmbeddingConfig struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	ApiKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Dimension int    `mapstructure:"dimension"`
}

type JudgeConfig struct {
	Provider           string                 `mapstructure:"provider"`
	Model              string                 `mapstructure:"model"`
	MaxTokens          int                    `mapstructure:"max_tokens"`
	Temperature        *float64               `mapstructure:"temperature"`
	ApiKey             string                 `mapstructure:"api_key"`
	Azure              AzureConfig            `mapstructure:"azure"`
	Bedrock            BedrockConfig          `mapstructure:"bedrock"`
	Options            map[string]interface{} `mapstructure:"options"`
	BreakerTimeout     time.Duration          `mapstructure:"breaker_timeout"`
	BreakerMaxFailures uint32                 `mapstructure:"breaker_max_failures"`
}

type AzureConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ApiVersion  string `mapstructure:"api_version"`
	UseIdentity bool   `mapstructure:"use_identity"`
}

type BedrockConfig struct {
	Region       string `mapstructure:"region"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	SessionToken string `mapstructure:"session_token"`
	UseRole      bool   `mapstructure:"use_role"`
	RoleARN      string `mapstructure:"role_arn"`
}

type ModerationConfig struct {
	TopK         int           `mapstructure:"top_k"`
	JudgeTimeout time.Duration `mapstructure:"judge_timeout"`
}

type ApiKeyConfig struct {
	Key   string `mapstructure:"key"`
	Scope string `mapstructure:"scope"`
}

type AuthConfig struct {
	ApiKeys []ApiKeyConfig `mapstructure:"api_keys"`
}

// Scopes maps each configured API key to its scope.
func (a AuthConfig) Scopes() map[string]string {
	scopes := make(map[string]string, len(a.ApiKeys))
	for _, k := range a.ApiKeys {
		if k.Key == "" {
			continue
		}
		scopes[k.Key] = k.Scope
	}
	return scopes
}

type CorsConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
	AllowMethods []string `mapstructure:"allow_methods"`
	AllowHeaders []string `mapstructure:"allow_headers"`
}

type EventsConfig struct {
	Enabled    bool                    `mapstructure:"enabled"`
	Workers    int                     `mapstructure:"workers"`
	BufferSize int                     `mapstructure:"buffer_size"`
	Exporters  []events.ExporterConfig `mapstructure:"exporters"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	setDefaultValues(&globalConfig)
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

// bindEnv registers the keys that may come only from the environment, so
// Unmarshal sees them even when config.yaml omits the section.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"server.port", "server.metrics_port", "server.secret_key", "server.log_level",
		"redis.host", "redis.port", "redis.password", "redis.db",
		"database.enabled", "database.host", "database.port", "database.user", "database.password", "database.name",
		"embedding.provider", "embedding.api_key", "embedding.model",
		"judge.provider", "judge.model", "judge.api_key",
		"vector_index.backend",
		"metrics.enabled",
		"events.enabled",
	} {
		_ = v.BindEnv(key)
	}
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if cfg.Server.LogFile == "" {
		cfg.Server.LogFile = "ruleguard.log"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.VectorIndex.Backend == "" {
		cfg.VectorIndex.Backend = "redis"
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "openai"
	}
	if cfg.Judge.Provider == "" {
		cfg.Judge.Provider = "gemini"
	}
	if cfg.Moderation.TopK <= 0 {
		cfg.Moderation.TopK = 5
	}
	if cfg.Moderation.JudgeTimeout <= 0 {
		cfg.Moderation.JudgeTimeout = 30 * time.Second
	}
	if len(cfg.Cors.AllowOrigins) == 0 {
		cfg.Cors.AllowOrigins = []string{"*"}
	}
	if len(cfg.Cors.AllowMethods) == 0 {
		cfg.Cors.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cfg.Cors.AllowHeaders) == 0 {
		cfg.Cors.AllowHeaders = []string{"*"}
	}
	if cfg.Events.Workers <= 0 {
		cfg.Events.Workers = 2
	}
}

func GetConfig() *Config {
	return &globalConfig
}
