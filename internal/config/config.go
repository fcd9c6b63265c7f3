package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Email   EmailConfig   `yaml:"email"`
	Prompts PromptsConfig `yaml:"prompts"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type GeminiConfig struct {
	Model           string `yaml:"model"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
}

type EmailConfig struct {
	From    string `yaml:"from"`
	Subject string `yaml:"subject"`
}

type PromptsConfig struct {
	TemplatePath string `yaml:"template_path"`
}

// Load reads a YAML config file and applies defaults via Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Email.From == "" {
		c.Email.From = "Summariser <onboarding@resend.dev>"
	}
	if c.Email.Subject == "" {
		c.Email.Subject = "Meeting Summary"
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GeminiAPIKey returns the generative-text provider key from the environment.
// An empty key is not validated here; it surfaces as a provider auth failure
// at call time.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// ResendAPIKey returns the email provider key from the environment.
func ResendAPIKey() string {
	return os.Getenv("RESEND_API_KEY")
}
