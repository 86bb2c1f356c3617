package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type TeardownFunc func()

// Manager owns the service lifetime. Long running components take its context and wait group, and
// teardown functions run once they have all stopped.
type Manager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        *sync.WaitGroup
	mu        sync.Mutex
	teardowns []TeardownFunc
}

var (
	manager *Manager
	once    sync.Once
)

func GetTeardownManager() *Manager {
	once.Do(func() {
		manager = NewTeardownManager()
	})
	return manager
}

func NewTeardownManager() *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		ctx:    ctx,
		cancel: cancel,
		wg:     &sync.WaitGroup{},
	}
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) WaitGroup() *sync.WaitGroup {
	return m.wg
}

func (m *Manager) TeardownFunc(f TeardownFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardowns = append(m.teardowns, f)
}

// Shutdown stops the service without waiting for a signal.
func (m *Manager) Shutdown() {
	m.cancel()
}

// Wait blocks until an interrupt or Shutdown, then cancels the context, waits for every component to
// finish and runs teardown functions in registration order.
func (m *Manager) Wait() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-sig:
	case <-m.ctx.Done():
	}
	m.cancel()
	m.wg.Wait()

	m.mu.Lock()
	teardowns := m.teardowns
	m.mu.Unlock()
	for _, f := range teardowns {
		f()
	}
}
