package timing_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/fossen_go/timing"
	"github.com/stretchr/testify/assert"
)

func TestDebounce_DeliversLatestAfterQuietPeriod(t *testing.T) {
	_, loop := newTestHost(t)

	got := make(chan string, 4)
	debounced := timing.Debounce(loop, 40*time.Millisecond, func(s string) { got <- s })

	debounced("a")
	time.Sleep(10 * time.Millisecond)
	debounced("b")
	time.Sleep(10 * time.Millisecond)
	debounced("c")

	select {
	case v := <-got:
		assert.Equal(t, "c", v)
	case <-time.After(time.Second):
		t.Fatal("debounced function never ran")
	}
	select {
	case v := <-got:
		t.Fatalf("superseded call ran: %s", v)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestDebounce_SeparateBursts(t *testing.T) {
	_, loop := newTestHost(t)

	got := make(chan int, 4)
	debounced := timing.Debounce(loop, 10*time.Millisecond, func(n int) { got <- n })

	debounced(1)
	assert.Equal(t, 1, <-got)
	debounced(2)
	assert.Equal(t, 2, <-got)
}

func TestDebounce_ClosedLoopReportsDrop(t *testing.T) {
	_, loop := newTestHost(t)

	got := make(chan int, 1)
	debounced := timing.Debounce(loop, time.Millisecond, func(n int) { got <- n })
	assert.True(t, debounced(1))
	assert.Equal(t, 1, <-got)

	loop.Close()
	assert.False(t, debounced(2))
	select {
	case v := <-got:
		t.Fatalf("call on a closed loop ran: %d", v)
	case <-time.After(20 * time.Millisecond):
	}
}
