package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up under the config
// directory.
const DefaultConfigFile = "headspace.yaml"

// Load reads the configuration file at path, expands environment
// variables, layers it over the built-in defaults and validates the
// result. A missing file is not an error: the defaults apply.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Info("Config file not found, using defaults", "path", path)
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	fileCfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded", "path", path)
	return cfg, nil
}

// parse expands env references and unmarshals the YAML document.
func parse(data []byte) (*Config, error) {
	expanded := ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfigPath resolves the config file location:
// $HEADSPACE_CONFIG if set, otherwise ~/.headspace/headspace.yaml.
func DefaultConfigPath() string {
	if p := os.Getenv("HEADSPACE_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFile
	}
	return filepath.Join(home, ".headspace", DefaultConfigFile)
}

func (c *Config) validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	if c.FileWatcher.FallbackInterval <= 0 {
		problems = append(problems, "file_watcher.fallback_interval must be positive")
	}
	if c.FileWatcher.HookActiveInterval < c.FileWatcher.FallbackInterval {
		problems = append(problems, "file_watcher.hook_active_interval must not be shorter than fallback_interval")
	}
	if c.FileWatcher.InactivityTimeout <= 0 {
		problems = append(problems, "file_watcher.inactivity_timeout must be positive")
	}
	if c.Correlator.CommandsPerMinute < 1 {
		problems = append(problems, "correlator.commands_per_minute must be at least 1")
	}
	if c.SSE.CatchupLimit < 0 {
		problems = append(problems, "sse.catchup_limit must not be negative")
	}
	if c.Retention.EventTTL <= 0 {
		problems = append(problems, "retention.event_ttl must be positive")
	}
	if c.VoiceBridge.Enabled && c.VoiceBridge.AuthToken == "" {
		problems = append(problems, "voice_bridge.auth_token required when voice_bridge.enabled")
	}
	if c.RemoteAgents.Enabled && len(c.RemoteAgents.CORSOrigins) == 0 {
		problems = append(problems, "remote_agents.cors_origins required when remote_agents.enabled")
	}
	// Production guard: a _test database name means someone pointed the
	// server at a test harness database.
	if c.Database.URL != "" {
		if name := databaseName(c.Database.URL); strings.HasSuffix(name, "_test") {
			problems = append(problems, fmt.Sprintf("database.url points at test database %q", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// databaseName extracts the database path component from a postgres URL.
func databaseName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

// ListenAddr returns the host:port the API server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ExpandProjectsRoot resolves a leading ~ in the projects root.
func (c *Config) ExpandProjectsRoot() string {
	root := c.FileWatcher.ProjectsRoot
	if strings.HasPrefix(root, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(root, "~"))
		}
	}
	return root
}
