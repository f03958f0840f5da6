// Package bridge runs the game's slow collaborators (speech capture,
// narration) off the control loop while keeping their results ordered
// on a single completions channel. At most one capture and one
// narration may be in flight; a second start of the same kind is
// rejected, never queued.
package bridge

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ewhitmore/blindkeep/internal/services"
)

// ErrBusy is returned when a task of the requested kind is already in
// flight.
var ErrBusy = errors.New("task already in flight")

// Kind discriminates completions on the shared channel.
type Kind string

const (
	// KindCaptureDelta is a non-terminal partial transcript update.
	KindCaptureDelta Kind = "capture_delta"
	// KindTranscript is the terminal result of a capture.
	KindTranscript Kind = "transcript"
	// KindNarration is the terminal result of a narration task.
	KindNarration Kind = "narration"
)

// Completion is one message from a background task. Terminal
// completions carry either a result or Err, never both.
type Completion struct {
	Kind   Kind
	TaskID uuid.UUID

	Delta      string              // KindCaptureDelta
	Transcript string              // KindTranscript
	Narration  *services.Narration // KindNarration
	Tag        string              // caller's routing tag, KindNarration only
	Err        error
}

// Bridge owns the two single-flight task slots and the completions
// channel the control loop consumes.
type Bridge struct {
	completions chan Completion
	logger      *slog.Logger

	mu        sync.Mutex
	capture   *services.Capture
	narrating bool
}

// New creates an idle bridge.
func New(logger *slog.Logger) *Bridge {
	return &Bridge{
		completions: make(chan Completion, 16),
		logger:      logger,
	}
}

// Completions is the single ordered stream of task results. Consume it
// from one goroutine.
func (b *Bridge) Completions() <-chan Completion {
	return b.completions
}

// CaptureInFlight reports whether a capture slot is occupied.
func (b *Bridge) CaptureInFlight() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capture != nil
}

// NarrationInFlight reports whether a narration slot is occupied.
func (b *Bridge) NarrationInFlight() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.narrating
}

// StartCapture begins a push-to-talk recording. Deltas stream as
// KindCaptureDelta; one KindTranscript completion follows after
// StopCapture (or an upstream error). Returns ErrBusy if a capture is
// already running.
func (b *Bridge) StartCapture(ctx context.Context, t services.Transcriber) (uuid.UUID, error) {
	b.mu.Lock()
	if b.capture != nil {
		b.mu.Unlock()
		return uuid.Nil, ErrBusy
	}

	capture, err := t.Start(ctx)
	if err != nil {
		b.mu.Unlock()
		return uuid.Nil, err
	}

	id := uuid.New()
	b.capture = capture
	b.mu.Unlock()

	b.logger.Debug("Capture started", "task_id", id)

	go func() {
		for ev := range capture.Events {
			if !ev.Final {
				b.completions <- Completion{Kind: KindCaptureDelta, TaskID: id, Delta: ev.Delta}
				continue
			}
			// Free the slot before delivering the terminal completion,
			// so the receiver can immediately start a new capture.
			b.mu.Lock()
			b.capture = nil
			b.mu.Unlock()
			b.completions <- Completion{
				Kind:       KindTranscript,
				TaskID:     id,
				Transcript: ev.Text,
				Err:        ev.Err,
			}
			return
		}
		// Event stream closed without a terminal event.
		b.mu.Lock()
		b.capture = nil
		b.mu.Unlock()
		b.completions <- Completion{
			Kind:   KindTranscript,
			TaskID: id,
			Err:    errors.New("capture ended without a final transcript"),
		}
	}()

	return id, nil
}

// StopCapture requests finalization of the in-flight capture. The
// KindTranscript completion still arrives on the channel afterward.
// No-op when nothing is recording.
func (b *Bridge) StopCapture() {
	b.mu.Lock()
	capture := b.capture
	b.mu.Unlock()
	if capture != nil {
		capture.Stop()
	}
}

// StartNarration narrates a scene in the background. tag is returned
// verbatim on the completion so the caller can route it. Returns
// ErrBusy if a narration is already running.
func (b *Bridge) StartNarration(ctx context.Context, n services.Narrator, scene services.Scene, tag string) (uuid.UUID, error) {
	b.mu.Lock()
	if b.narrating {
		b.mu.Unlock()
		return uuid.Nil, ErrBusy
	}
	id := uuid.New()
	b.narrating = true
	b.mu.Unlock()

	b.logger.Debug("Narration started", "task_id", id, "scene", scene.Kind, "tag", tag)

	go func() {
		narration, err := n.Narrate(ctx, scene)

		b.mu.Lock()
		b.narrating = false
		b.mu.Unlock()

		b.completions <- Completion{
			Kind:      KindNarration,
			TaskID:    id,
			Narration: narration,
			Tag:       tag,
			Err:       err,
		}
	}()

	return id, nil
}
