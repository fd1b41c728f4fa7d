package logreader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseLine(t *testing.T) {
	line, ok := ParseLine("Power", "D 21:35:08.4425287 GameState.DebugPrintPower() -     TAG_CHANGE Entity=1 tag=ZONE value=PLAY")
	require.True(t, ok)
	assert.Equal(t, "Power", line.Channel)
	assert.Equal(t, "GameState.DebugPrintPower() -     TAG_CHANGE Entity=1 tag=ZONE value=PLAY", line.Text)
	assert.Equal(t, 21, line.Time.Hour())
	assert.Equal(t, 35, line.Time.Minute())

	_, ok = ParseLine("Power", "no prefix here")
	assert.False(t, ok)
	_, ok = ParseLine("Power", "D notatimestamp rest")
	assert.False(t, ok)
	_, ok = ParseLine("Power", "")
	assert.False(t, ok)
}

func TestWatcherTailsAppends(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, PowerLogFile)

	w := NewPowerWatcher(dir, 5*time.Millisecond, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines, err := w.Watch(ctx)
	require.NoError(t, err)

	// The file appears after watching started.
	require.NoError(t, os.WriteFile(logFile,
		[]byte("D 10:00:00.0000000 first line\nD 10:00:01.0000000 second line\n"), 0o644))

	got := collect(t, lines, 2)
	assert.Equal(t, "first line", got[0].Text)
	assert.Equal(t, "second line", got[1].Text)

	// Appends are picked up from the stored offset.
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("D 10:00:02.0000000 third line\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got = collect(t, lines, 1)
	assert.Equal(t, "third line", got[0].Text)
}

func TestWatcherHandlesTruncation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, PowerLogFile)
	require.NoError(t, os.WriteFile(logFile,
		[]byte("D 10:00:00.0000000 old game\n"), 0o644))

	w := NewPowerWatcher(dir, 5*time.Millisecond, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines, err := w.Watch(ctx)
	require.NoError(t, err)
	collect(t, lines, 1)

	// The client truncates the file on restart. The replacement content is
	// shorter than the stored offset so shrinkage is observable.
	require.NoError(t, os.WriteFile(logFile,
		[]byte("D 11:00:00.0000000 new\n"), 0o644))

	got := collect(t, lines, 1)
	assert.Equal(t, "new", got[0].Text)
}

func TestWatcherStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	w := NewPowerWatcher(dir, 5*time.Millisecond, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	lines, err := w.Watch(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, open := <-lines:
		assert.False(t, open, "line channel must close after cancellation")
	case <-time.After(time.Second):
		t.Fatal("line channel did not close after cancellation")
	}
}

func collect(t *testing.T, lines <-chan Line, n int) []Line {
	t.Helper()
	out := make([]Line, 0, n)
	deadline := time.After(2 * time.Second)
	for len(out) < n {
		select {
		case l, open := <-lines:
			if !open {
				t.Fatalf("line channel closed after %d of %d lines", len(out), n)
			}
			out = append(out, l)
		case <-deadline:
			t.Fatalf("timed out waiting for %d lines, got %d", n, len(out))
		}
	}
	return out
}
