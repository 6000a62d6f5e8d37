package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"font-previewer/internal/logger"
)

const componentTimeout = 10 * time.Second

// Shutdownable is anything that releases resources on application exit.
type Shutdownable interface {
	Shutdown()
}

type component struct {
	name   string
	target Shutdownable
}

// Manager runs registered components' shutdown hooks in reverse registration
// order, each bounded by a timeout so one stuck component cannot hang exit.
type Manager struct {
	components []component
	logger     logger.Logger
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger: log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a named component to the shutdown sequence.
func (m *Manager) Register(name string, target Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component{name: name, target: target})
}

// RegisterFunc adds a bare function to the shutdown sequence.
func (m *Manager) RegisterFunc(name string, fn func()) {
	m.Register(name, shutdownFunc(fn))
}

type shutdownFunc func()

func (f shutdownFunc) Shutdown() { f() }

// Listen installs SIGINT/SIGTERM handling that triggers the shutdown
// sequence followed by the given exit callback.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
		if onSignal != nil {
			onSignal()
		}
	}()
}

// Shutdown executes the shutdown sequence once; later calls return
// immediately.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
		close(m.done)
	}
	components := make([]component, len(m.components))
	copy(components, m.components)
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	m.cancel()

	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.target.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component shut down", map[string]interface{}{
				"component": c.name,
			})
		case <-time.After(componentTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": c.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

// Context is cancelled when shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done is closed when shutdown begins.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
