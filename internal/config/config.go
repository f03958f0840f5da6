package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is populated from environment variables at startup.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string `env:"LOG_LEVEL" envDefault:"info"`

	// ContentDir points at a content pack directory; empty means the
	// embedded default pack.
	ContentDir string `env:"CONTENT_DIR"`

	// Storage selects the save backend: "file" or "redis".
	Storage   string `env:"STORAGE" envDefault:"file"`
	StatePath string `env:"STATE_PATH" envDefault:"state/save.json"`
	RedisURL  string `env:"REDIS_URL" envDefault:"localhost:6379"`
	RedisKey  string `env:"REDIS_KEY" envDefault:"blindkeep:save"`

	// NLU selects the intent/narration backend: "ollama", "gemini" or
	// "keyword" (offline rule matching, no model).
	NLU          string `env:"NLU" envDefault:"ollama"`
	OllamaURL    string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel  string `env:"OLLAMA_MODEL" envDefault:"llama3.1"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// TTS is the OpenAI-compatible speech endpoint; empty disables
	// synthesis (narration stays text-only).
	TTSURL    string `env:"TTS_URL"`
	TTSAPIKey string `env:"TTS_API_KEY"`
	TTSVoice  string `env:"TTS_VOICE" envDefault:"onyx"`

	// BossAudioDir holds pre-generated skill stingers as
	// <dir>/<boss_id>/<skill_id>.wav. Missing files degrade gracefully.
	BossAudioDir string `env:"BOSS_AUDIO_DIR" envDefault:"audio/bosses"`

	BagCapacity int `env:"BAG_CAPACITY" envDefault:"8"`

	// RNGSeed fixes combat randomness when non-zero, for replays.
	RNGSeed int64 `env:"RNG_SEED"`

	LogLevel slog.Level `env:"-"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
