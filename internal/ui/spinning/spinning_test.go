package spinning

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func setup(t *testing.T) *syncBuffer {
	out := &syncBuffer{}
	previousOutput, previousTheme := Output, Theme
	Output, Theme = out, ThemeAscii
	t.Cleanup(func() { Output, Theme = previousOutput, previousTheme })
	return out
}

func TestThink(t *testing.T) {
	out := setup(t)
	result, err := Think(context.Background(), 10*time.Millisecond, func() int { return 42 })
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Contains(t, out.String(), "|")
}

func TestThinkCancelledDuringDelay(t *testing.T) {
	setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	_, err := Think(ctx, time.Hour, func() int { called = true; return 1 })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestThinkDiscardsResult(t *testing.T) {
	setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	defer close(release)
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := Think(ctx, 0, func() int {
		<-release
		return 1
	})
	assert.ErrorIs(t, err, context.Canceled)
}
