package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Data     DataConfig     `mapstructure:"data"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Database DatabaseConfig `mapstructure:"database"`
	Export   ExportConfig   `mapstructure:"export"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DataConfig selects where sensor samples come from. Source is one of
// "file", "synthetic" or "remote"; "file" falls back to the synthetic
// generator when the CSV is missing so an analysis never fails for
// lack of data.
type DataConfig struct {
	Source        string        `mapstructure:"source"`
	CSVPath       string        `mapstructure:"csv_path"`
	RemoteURL     string        `mapstructure:"remote_url"`
	RemoteTimeout time.Duration `mapstructure:"remote_timeout"`
	SyntheticSeed int64         `mapstructure:"synthetic_seed"`
}

type AnalysisConfig struct {
	DefaultWindowMinutes int           `mapstructure:"default_window_minutes"`
	MaxWindowMinutes     int           `mapstructure:"max_window_minutes"`
	GeneratorTimeout     time.Duration `mapstructure:"generator_timeout"`
}

type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ExportConfig struct {
	Path string `mapstructure:"path"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("data.source", "file")
	v.SetDefault("data.csv_path", "./data/sensor_logs.csv")
	v.SetDefault("data.remote_timeout", "10s")
	v.SetDefault("data.synthetic_seed", 1)
	v.SetDefault("analysis.default_window_minutes", 60)
	v.SetDefault("analysis.max_window_minutes", 240)
	v.SetDefault("analysis.generator_timeout", "30s")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.max_tokens", 400)
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("database.path", "./linesight.db")
	v.SetDefault("export.path", "./exports/rul_export.csv")

	// Read from environment variables
	v.AutomaticEnv()

	// Read config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Override with environment variable if set
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" && config.LLM.Provider == "openai" {
		config.LLM.APIKey = apiKey
	}
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" && config.LLM.Provider == "anthropic" {
		config.LLM.APIKey = apiKey
	}

	return &config, nil
}
