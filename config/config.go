package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultSummaryPrompt is the prompt template used when no custom
// prompt is configured. The transcript is injected between the ###
// sentinels; the requested output structure lives entirely in the
// prompt, not in code.
const DefaultSummaryPrompt = `Summarize the text delimited by ###.
The text is the transcript of a meeting.
The summary must cover the main topics discussed, as plain running prose.
After the summary, list every agreement made during the meeting as bullet points.

Use exactly this format:

Meeting summary:
- write the summary here.

Meeting agreements:
- agreement 1
- agreement 2
- agreement n

text: ###%s###`

// DefaultFlushInterval is the wall-clock cadence, in seconds, between
// partial transcription flushes while recording.
const DefaultFlushInterval = 10

type Config struct {
	NotesDir      string
	MistralAPIKey string
	AnthropicKey  string
	SummaryPrompt string // prompt template for summary generation, one %s for the transcript
	Language      string // language hint passed to transcription
	FlushInterval time.Duration
	CaptureDevice string // ffmpeg input device, empty = platform default
}

type fileConfig struct {
	NotesDir             string `toml:"notes_dir"`
	MistralAPIKey        string `toml:"mistral_api_key"`
	AnthropicKey         string `toml:"anthropic_api_key"`
	SummaryPrompt        string `toml:"summary_prompt"`
	Language             string `toml:"language"`
	FlushIntervalSeconds int    `toml:"flush_interval_seconds"`
	CaptureDevice        string `toml:"capture_device"`
}

func Load() (*Config, error) {
	cfg := &Config{
		NotesDir:      defaultNotesDir(),
		SummaryPrompt: DefaultSummaryPrompt,
		Language:      "en",
		FlushInterval: DefaultFlushInterval * time.Second,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.NotesDir != "" {
				cfg.NotesDir = expandTilde(fc.NotesDir)
			}
			cfg.MistralAPIKey = fc.MistralAPIKey
			cfg.AnthropicKey = fc.AnthropicKey
			if fc.SummaryPrompt != "" {
				cfg.SummaryPrompt = fc.SummaryPrompt
			}
			if fc.Language != "" {
				cfg.Language = fc.Language
			}
			if fc.FlushIntervalSeconds > 0 {
				cfg.FlushInterval = time.Duration(fc.FlushIntervalSeconds) * time.Second
			}
			cfg.CaptureDevice = fc.CaptureDevice
		}
	}

	applyEnvOverrides(cfg)

	// Ensure directories exist
	if err := os.MkdirAll(cfg.NotesDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MEETNOTES_MISTRAL_API_KEY"); v != "" {
		cfg.MistralAPIKey = v
	}
	if v := os.Getenv("MEETNOTES_ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicKey = v
	}
	if v := os.Getenv("MEETNOTES_NOTES_DIR"); v != "" {
		cfg.NotesDir = expandTilde(v)
	}
	if v := os.Getenv("MEETNOTES_LANGUAGE"); v != "" {
		cfg.Language = v
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "meetnotes")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "meetnotes")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultNotesDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "meetnotes")
	}
	return filepath.Join(".", "meetnotes")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
