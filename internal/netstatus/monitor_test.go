package netstatus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorStartsOnline(t *testing.T) {
	m := New()
	assert.True(t, m.Online())
	assert.True(t, m.LastChecked().IsZero())
}

func TestSetOnlineRecordsCheckTime(t *testing.T) {
	m := New()
	m.SetOnline(false)

	assert.False(t, m.Online())
	assert.False(t, m.LastChecked().IsZero())
}

func TestAwaitOnline_ImmediateWhenOnline(t *testing.T) {
	m := New()
	require.NoError(t, m.AwaitOnline(context.Background()))
}

func TestAwaitOnline_ReleasedOnTransition(t *testing.T) {
	m := New()
	m.SetOnline(false)

	done := make(chan error, 1)
	go func() {
		done <- m.AwaitOnline(context.Background())
	}()

	// Give the waiter time to register before flipping.
	time.Sleep(20 * time.Millisecond)
	m.SetOnline(true)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter was not released")
	}
}

func TestAwaitOnline_ContextCancelled(t *testing.T) {
	m := New()
	m.SetOnline(false)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := m.AwaitOnline(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSetOnline_RepeatedOnlineDoesNotPanic(t *testing.T) {
	m := New()
	m.SetOnline(true)
	m.SetOnline(false)
	m.SetOnline(true)
	m.SetOnline(true)
	assert.True(t, m.Online())
}
