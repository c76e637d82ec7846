// Package config loads headspace.yaml, layers it over built-in
// defaults, and exposes the hot-reloadable subset.
package config

import (
	"time"
)

// Config is the umbrella configuration object returned by Load and used
// throughout the application.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	FileWatcher  FileWatcherConfig  `yaml:"file_watcher"`
	EventSystem  EventSystemConfig  `yaml:"event_system"`
	SSE          SSEConfig          `yaml:"sse"`
	TmuxBridge   TmuxBridgeConfig   `yaml:"tmux_bridge"`
	Correlator   CorrelatorConfig   `yaml:"correlator"`
	Oracle       OracleConfig       `yaml:"oracle"`
	Scoring      ScoringConfig      `yaml:"scoring"`
	Summarizer   SummarizerConfig   `yaml:"summarizer"`
	Reaper       ReaperConfig       `yaml:"reaper"`
	Cards        CardsConfig        `yaml:"cards"`
	Retention    RetentionConfig    `yaml:"retention"`
	RemoteAgents RemoteAgentsConfig `yaml:"remote_agents"`
	VoiceBridge  VoiceBridgeConfig  `yaml:"voice_bridge"`
	Exceptions   ExceptionsConfig   `yaml:"exceptions"`
}

// DatabaseConfig carries the connection URL when it is not supplied via
// DATABASE_URL. Pool tuning stays in environment variables.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// ServerConfig holds the HTTP listener settings. ApplicationURL is the
// externally reachable base URL used when minting embed links.
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Debug          bool   `yaml:"debug"`
	ApplicationURL string `yaml:"application_url"`
}

// FileWatcherConfig tunes transcript discovery and tailing.
type FileWatcherConfig struct {
	ProjectsRoot       string        `yaml:"projects_root"`
	HookActiveInterval time.Duration `yaml:"hook_active_interval"`
	FallbackInterval   time.Duration `yaml:"fallback_interval"`
	HookActiveWindow   time.Duration `yaml:"hook_active_window"`
	DebounceInterval   time.Duration `yaml:"debounce_interval"`
	InactivityTimeout  time.Duration `yaml:"inactivity_timeout"`
	PIDFile            string        `yaml:"pid_file"`
}

// EventSystemConfig tunes the durable event writer.
type EventSystemConfig struct {
	RetryAttempts int           `yaml:"retry_attempts"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
}

// SSEConfig tunes the dashboard stream.
type SSEConfig struct {
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	CatchupLimit      int           `yaml:"catchup_limit"`
}

// TmuxBridgeConfig tunes multiplexer subprocess behaviour.
type TmuxBridgeConfig struct {
	SubprocessTimeout  time.Duration `yaml:"subprocess_timeout"`
	TextEnterDelay     time.Duration `yaml:"text_enter_delay"`
	SequentialKeyDelay time.Duration `yaml:"sequential_key_delay"`
}

// CorrelatorConfig tunes dedup and rate limiting.
type CorrelatorConfig struct {
	LockTimeout       time.Duration `yaml:"lock_timeout"`
	DedupTTL          time.Duration `yaml:"dedup_ttl"`
	CommandsPerMinute int           `yaml:"commands_per_minute"`
}

// OracleConfig locates the inference service.
type OracleConfig struct {
	Address   string        `yaml:"address"`
	Model     string        `yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ScoringConfig tunes the priority scorer.
type ScoringConfig struct {
	Interval  time.Duration `yaml:"interval"`
	BatchSize int           `yaml:"batch_size"`
}

// SummarizerConfig tunes the summary worker.
type SummarizerConfig struct {
	Interval  time.Duration `yaml:"interval"`
	BatchSize int           `yaml:"batch_size"`
}

// ReaperConfig tunes stale-session and pane-health sweeps.
type ReaperConfig struct {
	Interval             time.Duration `yaml:"interval"`
	PaneFailureThreshold int           `yaml:"pane_failure_threshold"`
}

// CardsConfig tunes the dashboard card projection.
type CardsConfig struct {
	StaleProcessing time.Duration `yaml:"stale_processing"`
}

// RetentionConfig bounds durable event log growth.
type RetentionConfig struct {
	EventTTL        time.Duration `yaml:"event_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// RemoteAgentsConfig controls the phone-facing surface.
type RemoteAgentsConfig struct {
	Enabled         bool          `yaml:"enabled"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	CreationTimeout time.Duration `yaml:"creation_timeout"`
	EmbedDefaults   EmbedDefaults `yaml:"embed_defaults"`
}

// EmbedDefaults are the feature flags applied when a remote creation
// request does not supply its own.
type EmbedDefaults struct {
	FileUpload   bool `yaml:"file_upload"`
	ContextUsage bool `yaml:"context_usage"`
	VoiceMic     bool `yaml:"voice_mic"`
}

// VoiceBridgeConfig controls the voice surface. AuthToken is
// hot-reloadable.
type VoiceBridgeConfig struct {
	Enabled   bool   `yaml:"enabled"`
	AuthToken string `yaml:"auth_token"`
}

// ExceptionsConfig controls the crash-report webhook.
type ExceptionsConfig struct {
	WebhookURL     string        `yaml:"webhook_url"`
	MinInterval    time.Duration `yaml:"min_interval"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// defaults returns the built-in configuration every deployment starts
// from; headspace.yaml overrides field by field.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           8700,
			ApplicationURL: "http://127.0.0.1:8700",
		},
		FileWatcher: FileWatcherConfig{
			ProjectsRoot:       "~/.claude/projects",
			HookActiveInterval: 60 * time.Second,
			FallbackInterval:   2 * time.Second,
			HookActiveWindow:   120 * time.Second,
			DebounceInterval:   300 * time.Millisecond,
			InactivityTimeout:  30 * time.Minute,
			PIDFile:            "/tmp/headspace-watcher.pid",
		},
		EventSystem: EventSystemConfig{
			RetryAttempts: 3,
			RetryDelay:    100 * time.Millisecond,
		},
		SSE: SSEConfig{
			HeartbeatInterval: 25 * time.Second,
			CatchupLimit:      500,
		},
		TmuxBridge: TmuxBridgeConfig{
			SubprocessTimeout:  5 * time.Second,
			TextEnterDelay:     150 * time.Millisecond,
			SequentialKeyDelay: 50 * time.Millisecond,
		},
		Correlator: CorrelatorConfig{
			LockTimeout:       10 * time.Second,
			DedupTTL:          30 * time.Second,
			CommandsPerMinute: 20,
		},
		Oracle: OracleConfig{
			Address:   "127.0.0.1:50061",
			Model:     "fast",
			MaxTokens: 1024,
			Timeout:   30 * time.Second,
		},
		Scoring: ScoringConfig{
			Interval:  2 * time.Minute,
			BatchSize: 25,
		},
		Summarizer: SummarizerConfig{
			Interval:  30 * time.Second,
			BatchSize: 10,
		},
		Reaper: ReaperConfig{
			Interval:             60 * time.Second,
			PaneFailureThreshold: 3,
		},
		Cards: CardsConfig{
			StaleProcessing: 3 * time.Minute,
		},
		Retention: RetentionConfig{
			EventTTL:        14 * 24 * time.Hour,
			CleanupInterval: time.Hour,
		},
		RemoteAgents: RemoteAgentsConfig{
			Enabled:         false,
			CreationTimeout: 30 * time.Second,
			EmbedDefaults: EmbedDefaults{
				ContextUsage: true,
			},
		},
		VoiceBridge: VoiceBridgeConfig{
			Enabled: false,
		},
		Exceptions: ExceptionsConfig{
			MinInterval:    5 * time.Minute,
			RequestTimeout: 10 * time.Second,
		},
	}
}
