package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ewhitmore/blindkeep/pkg/state"
)

// FileStorage writes the save document as JSON to a single file.
// Writes are atomic: the document is written to a temp file in the
// same directory and renamed over the target, so a crash mid-write
// never corrupts the last committed save.
type FileStorage struct {
	path   string
	logger *slog.Logger
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a file-backed store at path, creating the
// parent directory as needed.
func NewFileStorage(path string, logger *slog.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStorage{path: path, logger: logger}, nil
}

func (f *FileStorage) Ping(ctx context.Context) error {
	// Writability of the state directory is the only health that matters.
	dir := filepath.Dir(f.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("state directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("state path parent %q is not a directory", dir)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

func (f *FileStorage) SaveState(ctx context.Context, gs *state.GameState) error {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp save: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace save: %w", err)
	}

	f.logger.Debug("Save written", "path", f.path, "bytes", len(data))
	return nil
}

func (f *FileStorage) LoadState(ctx context.Context) (*state.GameState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	var gs state.GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse save: %w", err)
	}
	return &gs, nil
}

func (f *FileStorage) DeleteState(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}
