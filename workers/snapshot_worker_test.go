package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingFlusher struct {
	calls atomic.Int32
}

func (f *countingFlusher) Flush() error {
	f.calls.Add(1)
	return nil
}

func TestPollSnapshots_FlushesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a := &countingFlusher{}
	b := &countingFlusher{}

	done := make(chan struct{})
	go func() {
		PollSnapshots(ctx, 10*time.Millisecond, a, b)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return a.calls.Load() >= 2 && b.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}
