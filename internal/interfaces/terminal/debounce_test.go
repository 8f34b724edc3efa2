package terminal

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncer_RunsLastCall(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	got := make(chan string, 3)
	for _, query := range []string{"p", "pe", "petr"} {
		d.Trigger(func() {
			calls.Add(1)
			got <- query
		})
	}

	select {
	case query := <-got:
		require.Equal(t, "petr", query)
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	require.True(t, d.Cancel())
	require.False(t, d.Cancel())

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestDebouncer_Flush(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	require.True(t, d.Flush())
	require.Equal(t, int32(1), calls.Load())
	require.False(t, d.Flush())
	require.Equal(t, int32(1), calls.Load())
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	require.Equal(t, DefaultDelay, NewDebouncer(0).delay)
	require.Equal(t, 300*time.Millisecond, NewDebouncer(-time.Second).delay)
}

func TestDebouncer_FlushWaitsForRunningCall(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	d.Trigger(func() {
		close(started)
		<-release
		finished.Store(true)
	})

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("debounced call never started")
	}

	flushed := make(chan bool)
	go func() { flushed <- d.Flush() }()

	select {
	case <-flushed:
		t.Fatal("Flush returned while the call was still running")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)
	select {
	case ran := <-flushed:
		require.False(t, ran)
		require.True(t, finished.Load())
	case <-time.After(time.Second):
		t.Fatal("Flush never returned")
	}
}

func TestDebouncer_CancelWaitsForRunningCall(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	started := make(chan struct{})
	var finished atomic.Bool
	d.Trigger(func() {
		close(started)
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	require.False(t, d.Cancel())
	require.True(t, finished.Load())
}
