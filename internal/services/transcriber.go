package services

import (
	"context"
	"strings"
	"sync"
	"time"
)

// TranscriptEvent is one update from an in-flight capture. Deltas
// stream partial text for display; exactly one terminal event follows,
// carrying either the final text or an error.
type TranscriptEvent struct {
	Delta string // incremental text, display only
	Text  string // full transcript, set on the final event
	Final bool
	Err   error
}

// Capture is a single push-to-talk recording session. Stop requests
// finalization; the terminal event still arrives on Events afterward.
// Stop is safe to call more than once.
type Capture struct {
	Events <-chan TranscriptEvent

	stopOnce sync.Once
	stop     func()
}

// NewCapture wraps an event stream and a stop signal for implementers.
func NewCapture(events <-chan TranscriptEvent, stop func()) *Capture {
	return &Capture{Events: events, stop: stop}
}

func (c *Capture) Stop() {
	c.stopOnce.Do(c.stop)
}

// Transcriber starts microphone captures. Implementations stream
// partial transcripts and deliver a final one when stopped.
type Transcriber interface {
	Start(ctx context.Context) (*Capture, error)
}

// ScriptedTranscriber is a Transcriber for tests and keyboard-only
// play: each Start replays the next line of Script as word deltas,
// then finalizes on Stop.
type ScriptedTranscriber struct {
	Script []string
	Delay  time.Duration // pause between word deltas, 0 for tests

	mu   sync.Mutex
	next int
}

var _ Transcriber = (*ScriptedTranscriber)(nil)

func (t *ScriptedTranscriber) Start(ctx context.Context) (*Capture, error) {
	t.mu.Lock()
	line := ""
	if t.next < len(t.Script) {
		line = t.Script[t.next]
		t.next++
	}
	t.mu.Unlock()

	events := make(chan TranscriptEvent, 16)
	stopCh := make(chan struct{})

	go func() {
		defer close(events)
		for _, word := range strings.Fields(line) {
			select {
			case <-ctx.Done():
				events <- TranscriptEvent{Final: true, Err: ctx.Err()}
				return
			case <-stopCh:
				events <- TranscriptEvent{Text: line, Final: true}
				return
			case <-time.After(t.Delay):
			}
			events <- TranscriptEvent{Delta: word + " "}
		}
		select {
		case <-ctx.Done():
			events <- TranscriptEvent{Final: true, Err: ctx.Err()}
		case <-stopCh:
			events <- TranscriptEvent{Text: line, Final: true}
		}
	}()

	return NewCapture(events, func() { close(stopCh) }), nil
}
