// Package netstatus tracks process-wide network availability. The resilience
// layer consults it before dispatching requests and before each retry.
package netstatus

import (
	"context"
	"sync"
	"time"
)

// Monitor holds the current connectivity state. The zero value is not usable;
// use New. A Monitor starts online: the first failed probe or an explicit
// SetOnline(false) flips it.
type Monitor struct {
	mu          sync.RWMutex
	online      bool
	lastChecked time.Time
	waiters     []chan struct{}
}

// New creates a monitor in the online state.
func New() *Monitor {
	return &Monitor{online: true}
}

// Online reports the last known connectivity state.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// LastChecked returns when the state was last updated.
func (m *Monitor) LastChecked() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastChecked
}

// SetOnline records a connectivity transition. An offline→online transition
// releases every goroutine blocked in AwaitOnline, which re-drains requests
// that opted to wait for the network.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wasOnline := m.online
	m.online = online
	m.lastChecked = time.Now()

	if online && !wasOnline {
		for _, w := range m.waiters {
			close(w)
		}
		m.waiters = nil
	}
}

// AwaitOnline blocks until the monitor reports online or the context ends.
// Best-effort: a flap back to offline after release is the caller's problem.
func (m *Monitor) AwaitOnline(ctx context.Context) error {
	m.mu.Lock()
	if m.online {
		m.mu.Unlock()
		return nil
	}
	w := make(chan struct{})
	m.waiters = append(m.waiters, w)
	m.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w:
		return nil
	}
}
