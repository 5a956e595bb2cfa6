package video

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gpucontext"
)

// DeviceHandle provides GPU device access from the host application.
// GPU painter backends receive the shared device through PainterConfig
// instead of creating their own; CPU backends ignore it.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider so host
// applications built on the gpucontext ecosystem can pass their device
// provider directly.
type DeviceHandle = gpucontext.DeviceProvider

// PainterConfig carries the parameters a painter factory needs.
type PainterConfig struct {
	// Width and Height are the target dimensions in pixels.
	Width  int
	Height int

	// Device is the host GPU device for GPU painters. Nil for CPU
	// painters.
	Device DeviceHandle
}

// PainterFactory is a function that creates a new painter instance.
// Factories are registered via Register() and called by NewPainter().
type PainterFactory func(cfg PainterConfig) (Painter, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	painters   = make(map[string]PainterFactory)
)

// Register registers a painter factory with the given name. This is
// typically called from init() in painter packages, following the
// database/sql driver pattern:
//
//	func init() {
//	    video.Register("software", func(cfg video.PainterConfig) (video.Painter, error) {
//	        return New(cfg.Width, cfg.Height), nil
//	    })
//	}
//
// Register panics if factory is nil or the name is already taken, so
// duplicate registrations are caught during program initialization.
func Register(name string, factory PainterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("video: Register factory is nil")
	}
	if _, dup := painters[name]; dup {
		panic("video: Register called twice for " + name)
	}
	painters[name] = factory
}

// Unregister removes a painter from the registry.
// This is primarily useful for testing to clean up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(painters, name)
}

// NewPainter creates a new painter instance by name.
// Returns an error if the painter is not registered.
func NewPainter(name string, cfg PainterConfig) (Painter, error) {
	registryMu.RLock()
	factory, ok := painters[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("video: unknown painter %q (forgotten import?)", name)
	}

	p, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("video: painter %q: %w", name, err)
	}
	Logger().Debug("painter created", "name", name, "width", cfg.Width, "height", cfg.Height)
	return p, nil
}

// MustPainter creates a new painter instance by name, panicking on error.
// This is useful when painter availability is guaranteed.
func MustPainter(name string, cfg PainterConfig) Painter {
	p, err := NewPainter(name, cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// Painters returns a sorted list of registered painter names.
func Painters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(painters))
	for name := range painters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a painter with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := painters[name]
	return ok
}
