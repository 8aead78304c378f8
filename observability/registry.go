package observability

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// factories build observers by name. "slog" reads slog.Default at lookup, so
// a logger installed with slog.SetDefault after start-up is still honoured.
var (
	factories = map[string]func() Observer{
		"noop": func() Observer { return NoOpObserver{} },
		"slog": func() Observer { return NewSlogObserver(slog.Default()) },
	}
	mutex sync.RWMutex
)

// GetObserver returns the observer registered under name.
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	build, ok := factories[name]
	mutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown observer: %s (registered: %v)", name, Names())
	}
	return build(), nil
}

// RegisterObserver adds or replaces a named observer. Every lookup of name
// returns the same observer.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	factories[name] = func() Observer { return observer }
}

// Names returns the registered observer names in sorted order.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
