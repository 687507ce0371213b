package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for adventure-guide.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Output OutputConfig `toml:"output"`
	Server ServerConfig `toml:"server"`
	Enrich EnrichConfig `toml:"enrich"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type OutputConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type EnrichConfig struct {
	URL       string  `toml:"url"`
	Model     string  `toml:"model"`
	BatchSize int     `toml:"batch_size"`
	MaxTokens int     `toml:"max_tokens"`
	RateLimit float64 `toml:"rate_limit"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data:   DataConfig{Dir: "data"},
		Output: OutputConfig{Dir: "output"},
		Server: ServerConfig{Host: "localhost", Port: 8080},
		Enrich: EnrichConfig{
			URL:       "http://localhost:11434",
			Model:     "phi4-mini",
			BatchSize: 50,
			MaxTokens: 200,
			RateLimit: 1.0,
		},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
