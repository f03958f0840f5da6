package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ewhitmore/blindkeep/internal/bridge"
	"github.com/ewhitmore/blindkeep/internal/config"
	"github.com/ewhitmore/blindkeep/internal/engine"
	"github.com/ewhitmore/blindkeep/internal/logger"
	"github.com/ewhitmore/blindkeep/internal/services"
	"github.com/ewhitmore/blindkeep/internal/storage"
	"github.com/ewhitmore/blindkeep/internal/tui"
	"github.com/ewhitmore/blindkeep/pkg/content"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start or resume a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay()
		},
	}
}

func runPlay() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.Setup(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pack, err := loadPack(cfg)
	if err != nil {
		return err
	}
	graph, items, bosses, err := pack.Build()
	if err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}

	store, err := newStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	parser, narrator, cleanup, err := newCollaborators(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	e := engine.New(
		graph, items, bosses,
		store, parser, narrator,
		&services.ScriptedTranscriber{},
		services.NewLogPlayer(log),
		bridge.New(log),
		engine.Options{
			BagCapacity:  cfg.BagCapacity,
			BossAudioDir: cfg.BossAudioDir,
			Seed:         cfg.RNGSeed,
		},
		log,
	)

	runErr := make(chan error, 1)
	engineCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { runErr <- e.Run(engineCtx) }()

	program := tea.NewProgram(tui.New(e), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	cancel()

	if err := <-runErr; err != nil && err != context.Canceled {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func loadPack(cfg *config.Config) (*content.Pack, error) {
	if cfg.ContentDir != "" {
		pack, err := content.Load(cfg.ContentDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load content from %s: %w", cfg.ContentDir, err)
		}
		return pack, nil
	}
	pack, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in content: %w", err)
	}
	return pack, nil
}

func newStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	switch cfg.Storage {
	case "redis":
		store := storage.NewRedisStorage(cfg.RedisURL, cfg.RedisKey, log)
		if err := store.WaitForConnection(ctx); err != nil {
			return nil, fmt.Errorf("redis unavailable: %w", err)
		}
		return store, nil
	case "file":
		return storage.NewFileStorage(cfg.StatePath, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// newCollaborators wires the intent parser and narrator for the
// configured NLU backend. The returned cleanup closes any client that
// holds a connection.
func newCollaborators(ctx context.Context, cfg *config.Config, log *slog.Logger) (services.IntentParser, services.Narrator, func(), error) {
	noop := func() {}

	var synth services.Synthesizer
	if cfg.TTSURL != "" {
		synth = services.NewSpeechClient(cfg.TTSURL, cfg.TTSAPIKey, cfg.TTSVoice, log)
	}

	switch cfg.NLU {
	case "ollama":
		client := services.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, log)
		if err := client.WaitForReady(ctx); err != nil {
			return nil, nil, noop, err
		}
		return services.NewLLMIntentParser(client, log),
			services.NewLLMNarrator(client, synth, log), noop, nil

	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, nil, noop, fmt.Errorf("GEMINI_API_KEY is required for the gemini backend")
		}
		client, err := services.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
		if err != nil {
			return nil, nil, noop, err
		}
		cleanup := func() { _ = client.Close() }
		return services.NewLLMIntentParser(client, log),
			services.NewLLMNarrator(client, synth, log), cleanup, nil

	case "keyword":
		return services.NewKeywordParser(), services.NewTemplateNarrator(), noop, nil

	default:
		return nil, nil, noop, fmt.Errorf("unknown NLU backend %q", cfg.NLU)
	}
}
