package services

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// AudioPlayer plays narration audio and boss skill stingers. Playback
// is fire-and-forget from the game's perspective; the engine calls
// Stop before each new cue so stale audio never talks over it.
type AudioPlayer interface {
	// Play starts playback of the file at path. An empty path is a no-op.
	Play(ctx context.Context, path string) error
	// Stop interrupts any playback in progress.
	Stop()
}

// LogPlayer is the headless player: it verifies the file exists and
// logs instead of producing sound. Missing files degrade to a warning
// so a half-populated audio directory never blocks play.
type LogPlayer struct {
	logger *slog.Logger
}

var _ AudioPlayer = (*LogPlayer)(nil)

func NewLogPlayer(logger *slog.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

func (p *LogPlayer) Play(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		p.logger.Warn("Audio file missing, skipping playback", "path", path)
		return nil
	}
	p.logger.Info("Playing audio", "path", path)
	return nil
}

func (p *LogPlayer) Stop() {}

// MockPlayer records every Play call for assertions.
type MockPlayer struct {
	mu        sync.Mutex
	Played    []string
	StopCalls int
}

var _ AudioPlayer = (*MockPlayer)(nil)

func (p *MockPlayer) Play(ctx context.Context, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Played = append(p.Played, path)
	return nil
}

func (p *MockPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.StopCalls++
}

// PlayedPaths returns a copy of every path passed to Play.
func (p *MockPlayer) PlayedPaths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.Played...)
}

// Stops returns how many times Stop has been called.
func (p *MockPlayer) Stops() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.StopCalls
}
