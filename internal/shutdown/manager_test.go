package shutdown

import (
	"testing"

	"font-previewer/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsComponentsInReverseOrder(t *testing.T) {
	manager := NewManager(logger.NewNop())

	var order []string
	manager.RegisterFunc("first", func() { order = append(order, "first") })
	manager.RegisterFunc("second", func() { order = append(order, "second") })
	manager.RegisterFunc("third", func() { order = append(order, "third") })

	manager.Shutdown()

	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestShutdownRunsOnlyOnce(t *testing.T) {
	manager := NewManager(logger.NewNop())

	calls := 0
	manager.RegisterFunc("counter", func() { calls++ })

	manager.Shutdown()
	manager.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdownCancelsContext(t *testing.T) {
	manager := NewManager(logger.NewNop())

	select {
	case <-manager.Context().Done():
		t.Fatal("context cancelled before shutdown")
	default:
	}

	manager.Shutdown()

	select {
	case <-manager.Context().Done():
	default:
		t.Fatal("context not cancelled after shutdown")
	}

	select {
	case <-manager.Done():
	default:
		t.Fatal("done channel not closed after shutdown")
	}
}
