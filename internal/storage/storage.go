// Package storage persists the save document. The engine writes
// through this interface after every state mutation; the write must be
// durable before the next mutation is allowed to start.
package storage

import (
	"context"

	"github.com/ewhitmore/blindkeep/pkg/state"
)

// Storage defines the save-document persistence contract.
type Storage interface {
	// Ping verifies the backend is usable.
	Ping(ctx context.Context) error
	Close() error

	// SaveState durably writes the save document.
	SaveState(ctx context.Context, gs *state.GameState) error

	// LoadState returns the saved document, or (nil, nil) when no save
	// exists yet.
	LoadState(ctx context.Context) (*state.GameState, error)

	// DeleteState removes the save document.
	DeleteState(ctx context.Context) error
}
