package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainCapture(t *testing.T, c *Capture) (deltas []string, final TranscriptEvent) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-c.Events:
			if !ok {
				t.Fatal("event stream closed without a final event")
			}
			if ev.Final {
				return deltas, ev
			}
			deltas = append(deltas, ev.Delta)
		case <-deadline:
			t.Fatal("timed out draining capture")
		}
	}
}

func TestScriptedTranscriber_ReplaysScriptLines(t *testing.T) {
	tr := &ScriptedTranscriber{Script: []string{"go north", "attack"}}

	c, err := tr.Start(context.Background())
	require.NoError(t, err)
	c.Stop()
	_, final := drainCapture(t, c)
	assert.Equal(t, "go north", final.Text)
	require.NoError(t, final.Err)

	c, err = tr.Start(context.Background())
	require.NoError(t, err)
	c.Stop()
	_, final = drainCapture(t, c)
	assert.Equal(t, "attack", final.Text)
}

func TestScriptedTranscriber_DeltasSpellOutTheLine(t *testing.T) {
	tr := &ScriptedTranscriber{Script: []string{"take the helm"}}

	c, err := tr.Start(context.Background())
	require.NoError(t, err)

	// Deltas stream before Stop; give them a moment, then finalize.
	time.Sleep(20 * time.Millisecond)
	c.Stop()
	deltas, final := drainCapture(t, c)
	assert.Equal(t, []string{"take ", "the ", "helm "}, deltas)
	assert.Equal(t, "take the helm", final.Text)
}

func TestScriptedTranscriber_StopIsIdempotent(t *testing.T) {
	tr := &ScriptedTranscriber{Script: []string{"north"}}

	c, err := tr.Start(context.Background())
	require.NoError(t, err)
	c.Stop()
	c.Stop()
	_, final := drainCapture(t, c)
	assert.Equal(t, "north", final.Text)
}

func TestScriptedTranscriber_ContextCancel(t *testing.T) {
	tr := &ScriptedTranscriber{Script: []string{"north"}}
	ctx, cancel := context.WithCancel(context.Background())

	c, err := tr.Start(ctx)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	cancel()

	_, final := drainCapture(t, c)
	assert.Error(t, final.Err)
}

func TestScriptedTranscriber_ExhaustedScriptIsEmpty(t *testing.T) {
	tr := &ScriptedTranscriber{}

	c, err := tr.Start(context.Background())
	require.NoError(t, err)
	c.Stop()
	deltas, final := drainCapture(t, c)
	assert.Empty(t, deltas)
	assert.Empty(t, final.Text)
}
