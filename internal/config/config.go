package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "JOBSPY_PROXY_CONFIG"

// Config contains runtime settings for the proxy
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	JobSpy JobSpyConfig `yaml:"jobspy"`
	// Per-source overrides keyed by source name ("linkedin", "indeed")
	Sources map[string]SourceConfig `yaml:"sources"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

type ServerConfig struct {
	Host            string        `yaml:"host"` // default 0.0.0.0
	Port            string        `yaml:"port"` // default 5000
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MCPEnabled      bool          `yaml:"mcp_enabled"`
}

// JobSpyConfig points at the JobSpy API deployment doing the scraping
type JobSpyConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"` // 0 disables the client timeout
}

type SourceConfig struct {
	ResultsWanted int `yaml:"results_wanted"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "5000",
			ShutdownTimeout: 10 * time.Second,
			MCPEnabled:      true,
		},
		JobSpy: JobSpyConfig{
			BaseURL: "http://localhost:8000",
		},
	}
}

// Addr joins host and port for the listener
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load builds the config from defaults, an optional YAML file and environment variables.
// An empty path falls back to JOBSPY_PROXY_CONFIG; a missing file leaves the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}

	if v := os.Getenv("JOBSPY_BASE_URL"); v != "" {
		cfg.JobSpy.BaseURL = v
	}

	if v := os.Getenv("JOBSPY_API_KEY"); v != "" {
		cfg.JobSpy.APIKey = v
	}

	if v := os.Getenv("JOBSPY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: JOBSPY_TIMEOUT: %w", err)
		}
		cfg.JobSpy.Timeout = d
	}

	return nil
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var problems []string

	if c.Server.Port == "" {
		problems = append(problems, "server.port is required")
	}

	if c.JobSpy.BaseURL == "" {
		problems = append(problems, "jobspy.base_url is required")
	}

	if c.JobSpy.Timeout < 0 {
		problems = append(problems, "jobspy.timeout must not be negative")
	}

	names := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := domain.ParseSource(name); err != nil {
			problems = append(problems, fmt.Sprintf("sources.%s: %v", name, err))
			continue
		}
		if c.Sources[name].ResultsWanted < 0 {
			problems = append(problems, fmt.Sprintf("sources.%s.results_wanted must not be negative", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, ", "))
	}

	return nil
}
