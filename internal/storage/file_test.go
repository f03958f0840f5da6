package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewhitmore/blindkeep/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save", "game.json")
	fs, err := NewFileStorage(path, testLogger())
	require.NoError(t, err)
	defer func() { _ = fs.Close() }()

	ctx := context.Background()
	require.NoError(t, fs.Ping(ctx))

	gs := state.New("hall", "fists")
	gs.MovePlayer("lair")
	gs.SetBossHP("warden", 12)
	require.NoError(t, fs.SaveState(ctx, gs))

	loaded, err := fs.LoadState(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "lair", loaded.Player.CurrentRoom)
	assert.Equal(t, 12, loaded.World.BossHP["warden"])

	// The temp file never survives a completed save.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_LoadMissingIsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	fs, err := NewFileStorage(path, testLogger())
	require.NoError(t, err)

	gs, err := fs.LoadState(context.Background())
	require.NoError(t, err)
	assert.Nil(t, gs, "a missing save means a fresh game, not an error")
}

func TestFileStorage_LoadCorruptIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	fs, err := NewFileStorage(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err = fs.LoadState(context.Background())
	require.Error(t, err)
}

func TestFileStorage_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	fs, err := NewFileStorage(path, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	first := state.New("hall", "fists")
	require.NoError(t, fs.SaveState(ctx, first))

	second := state.New("hall", "fists")
	second.MovePlayer("gallery")
	require.NoError(t, fs.SaveState(ctx, second))

	loaded, err := fs.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gallery", loaded.Player.CurrentRoom)
}

func TestFileStorage_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	fs, err := NewFileStorage(path, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.SaveState(ctx, state.New("hall", "fists")))
	require.NoError(t, fs.DeleteState(ctx))

	gs, err := fs.LoadState(ctx)
	require.NoError(t, err)
	assert.Nil(t, gs)

	// Deleting an absent save is not an error.
	require.NoError(t, fs.DeleteState(ctx))
}
