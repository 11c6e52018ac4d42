package host_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/on-the-ground/fossen_go/host"
	"github.com/on-the-ground/fossen_go/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoop(t *testing.T) *host.Loop {
	t.Helper()
	ctx, endOfLogHandler := log.WithTestLogHandler(context.Background())
	loop := host.NewLoop(ctx)
	t.Cleanup(func() {
		loop.Close()
		<-loop.Done()
		endOfLogHandler()
	})
	return loop
}

func TestLoop_RunsPostedCallbacksInOrder(t *testing.T) {
	loop := newTestLoop(t)

	var got []int
	done := make(chan struct{})
	for i := 0; i < 100; i++ {
		n := i
		require.NoError(t, loop.Post(func() { got = append(got, n) }))
	}
	require.NoError(t, loop.Post(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for loop")
	}
	for i, v := range got {
		assert.Equal(t, i, v)
	}
	assert.Len(t, got, 100)
}

func TestLoop_PostFromInsideCallback(t *testing.T) {
	loop := newTestLoop(t)

	done := make(chan string, 1)
	require.NoError(t, loop.Post(func() {
		_ = loop.Post(func() { done <- "nested" })
	}))

	select {
	case v := <-done:
		assert.Equal(t, "nested", v)
	case <-time.After(time.Second):
		t.Fatal("nested post never ran")
	}
}

func TestLoop_SetTimeoutRunsAfterDelay(t *testing.T) {
	loop := newTestLoop(t)

	start := time.Now()
	fired := make(chan time.Duration, 1)
	id := loop.SetTimeout(func() { fired <- time.Since(start) }, 30*time.Millisecond)
	assert.NotZero(t, id)

	select {
	case elapsed := <-fired:
		assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}

func TestLoop_ClearTimeout(t *testing.T) {
	loop := newTestLoop(t)

	var mu sync.Mutex
	fired := false
	id := loop.SetTimeout(func() {
		mu.Lock()
		fired = true
		mu.Unlock()
	}, 20*time.Millisecond)
	loop.ClearTimeout(id)
	loop.ClearTimeout(id)

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired)
}

func TestLoop_PanicDoesNotStopLoop(t *testing.T) {
	loop := newTestLoop(t)

	done := make(chan struct{})
	require.NoError(t, loop.Post(func() { panic("boom") }))
	require.NoError(t, loop.Post(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop died after panic")
	}
}

func TestLoop_Close(t *testing.T) {
	loop := host.NewLoop(context.Background())
	loop.Close()
	loop.Close()

	select {
	case <-loop.Done():
	case <-time.After(time.Second):
		t.Fatal("loop goroutine did not exit")
	}
	assert.ErrorIs(t, loop.Post(func() {}), host.ErrLoopClosed)
	assert.Zero(t, loop.SetTimeout(func() {}, time.Millisecond))
	assert.Error(t, loop.Context().Err())
}

func TestLoop_ParentCancelClosesLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := host.NewLoop(ctx)
	cancel()

	select {
	case <-loop.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not stop on parent cancel")
	}
	assert.ErrorIs(t, loop.Post(func() {}), host.ErrLoopClosed)
}
