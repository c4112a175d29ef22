package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/BerylCAtieno/persona-writer-agent/internal/llm"
)

// Config holds all application configuration
type Config struct {
	Server Server `mapstructure:"server"`
	LLM    LLM    `mapstructure:"llm"`
	DB     DB     `mapstructure:"db"`
	Log    Log    `mapstructure:"log"`
	CORS   CORS   `mapstructure:"cors"`
}

type Server struct {
	Port string `mapstructure:"port"`
}

// LLM configures the generation endpoint shared by analysis and generation.
type LLM struct {
	Provider string `mapstructure:"provider"`
	Endpoint string `mapstructure:"endpoint"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
}

type DB struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type Log struct {
	Mode string `mapstructure:"mode"`
}

type CORS struct {
	Origins []string `mapstructure:"origins"`
}

func (l LLM) Settings() llm.Settings {
	return llm.Settings{
		Provider: l.Provider,
		Endpoint: l.Endpoint,
		Model:    l.Model,
		APIKey:   l.APIKey,
		BaseURL:  l.BaseURL,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("llm.provider", llm.ProviderOllama)
	v.SetDefault("llm.endpoint", llm.DefaultOllamaEndpoint)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "persona-writer.db")
	v.SetDefault("log.mode", "dev")
	v.SetDefault("cors.origins", []string{"http://localhost:3000", "http://localhost:5173"})
}

// Load reads .env (if present), an optional config file and the environment.
// Nested keys map to env vars with "_" (LLM_ENDPOINT); the historical names
// PORT, OLLAMA_API_URL, GEMINI_API_KEY and OPENAI_API_KEY are honored too.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("llm.endpoint", "LLM_ENDPOINT", "OLLAMA_API_URL")
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.model", "LLM_MODEL")
	_ = v.BindEnv("llm.base_url", "LLM_BASE_URL")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.LLM.Model == "" && strings.EqualFold(cfg.LLM.Provider, llm.ProviderOllama) {
		cfg.LLM.Model = llm.DefaultOllamaModel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.LLM.Provider) {
	case llm.ProviderOllama:
		if c.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required for provider %s", c.LLM.Provider)
		}
	case llm.ProviderGemini:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for provider %s", c.LLM.Provider)
		}
	case llm.ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for provider %s", c.LLM.Provider)
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("llm.model is required for provider %s", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}

	switch strings.ToLower(c.DB.Driver) {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown db driver %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("db.dsn is required")
	}
	return nil
}
