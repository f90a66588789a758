package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

// syncBuffer lets the spinner goroutine and the test share a buffer.
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

func TestSpinnerDrawsAndUpdates(t *testing.T) {
	defer goleak.VerifyNone(t)

	var out syncBuffer
	s := newSpinnerTo(context.Background(), &out, "Solving 2021/16/2")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Update("checked %d/%d", 3, 10)
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	got := out.String()
	if !strings.Contains(got, "Solving 2021/16/2") || !strings.Contains(got, "checked 3/10") {
		t.Errorf("spinner output = %q", got)
	}
	if s.Cancelled() != true {
		t.Error("Stop should end the spinner context")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	s := newSpinnerTo(ctx, &out, "waiting")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	var out syncBuffer
	s := newSpinnerTo(context.Background(), &out, "stop me")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}
