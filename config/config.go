// Package config provides configuration loading for notion-jarkup.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/foomo/notion-jarkup/converter"
	"github.com/foomo/notion-jarkup/notion"
	"github.com/foomo/notion-jarkup/scrape"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvNotionToken       = "NOTION_TOKEN"
	EnvNotionAPIURL      = "NOTION_API_URL"
	EnvEnableUnsupported = "JARKUP_ENABLE_UNSUPPORTED"
	EnvLogLevel          = "JARKUP_LOG_LEVEL"
)

type Config struct {
	Notion    NotionConfig     `yaml:"notion"`
	Fetch     FetchConfig      `yaml:"fetch"`
	Converter converter.Config `yaml:"converter"`
	Server    ServerConfig     `yaml:"server"`
	Log       LogConfig        `yaml:"log"`
}

type NotionConfig struct {
	// Token is the integration secret; prefer NOTION_TOKEN over writing it to a file.
	Token    string `yaml:"token"`
	BaseURL  string `yaml:"baseURL"`
	Version  string `yaml:"version"`
	PageSize int    `yaml:"pageSize"`
}

// FetchConfig applies to pages fetched for favicons and bookmark previews.
type FetchConfig struct {
	Timeout        time.Duration `yaml:"timeout"`
	UserAgent      string        `yaml:"userAgent"`
	MaxContentSize int64         `yaml:"maxContentSize"`
}

type ServerConfig struct {
	Addr     string `yaml:"addr"`
	Endpoint string `yaml:"endpoint"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Notion: NotionConfig{
			BaseURL:  notion.DefaultBaseURL,
			Version:  notion.DefaultVersion,
			PageSize: notion.DefaultPageSize,
		},
		Fetch: FetchConfig{
			Timeout:        10 * time.Second,
			UserAgent:      scrape.DefaultUserAgent,
			MaxContentSize: scrape.DefaultMaxContentSize,
		},
		Converter: converter.DefaultConfig(),
		Server: ServerConfig{
			Addr:     ":8080",
			Endpoint: "/mcp",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Load returns the defaults, overlaid by the file at path if path is set and
// then by the environment.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path != "" {
		var err error
		if config, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides settings from non-empty environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvNotionToken); v != "" {
		c.Notion.Token = v
	}
	if v := getenv(EnvNotionAPIURL); v != "" {
		c.Notion.BaseURL = v
	}
	if v := getenv(EnvEnableUnsupported); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvEnableUnsupported, err)
		}
		c.Converter.EnableUnsupportedBlock = enabled
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks the settings needed by every command. The Notion token is
// checked by the commands that talk to Notion.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Notion.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("notion.baseURL must be an absolute URL, got %q", c.Notion.BaseURL)
	}
	if c.Notion.PageSize < 1 || c.Notion.PageSize > 100 {
		return fmt.Errorf("notion.pageSize must be between 1 and 100")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if c.Fetch.MaxContentSize <= 0 {
		return fmt.Errorf("fetch.maxContentSize must be positive")
	}
	if c.Converter.MaxDepth < 1 {
		return fmt.Errorf("converter.maxDepth must be at least 1")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
