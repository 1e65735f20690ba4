package reference

// Note: Factory is not mockable with mockgen because Register() uses the
// unexported coreMultiplier type. Use DefaultFactory or manual mocks instead.

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates and caches Multiplier instances by name.
type Factory interface {
	// Get returns the cached Multiplier registered under name.
	Get(name string) (Multiplier, error)
	// List returns the sorted registered names.
	List() []string
	// Register adds or replaces a multiplier.
	Register(name string, creator func() coreMultiplier) error
	// GetAll returns every registered multiplier by name.
	GetAll() map[string]Multiplier
}

// DefaultFactory is the default Factory. It is safe for concurrent use.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreMultiplier
	multipliers map[string]Multiplier
}

// NewDefaultFactory creates a factory with the standard multipliers
// registered:
//   - "karatsuba": words.Multiplier
//   - "schoolbook": words.MulSchoolbook
//   - "mathbig": math/big
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreMultiplier),
		multipliers: make(map[string]Multiplier),
	}
	_ = f.Register("karatsuba", func() coreMultiplier { return Karatsuba{} })
	_ = f.Register("schoolbook", func() coreMultiplier { return Schoolbook{} })
	_ = f.Register("mathbig", func() coreMultiplier { return MathBig{} })
	return f
}

// Register adds a multiplier. The creator is called lazily on first use;
// registering an existing name replaces it.
func (f *DefaultFactory) Register(name string, creator func() coreMultiplier) error {
	if creator == nil {
		return fmt.Errorf("reference: nil creator for %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.multipliers, name)
	return nil
}

// Get returns a Multiplier by name. Instances are cached.
func (f *DefaultFactory) Get(name string) (Multiplier, error) {
	f.mu.RLock()
	if m, exists := f.multipliers[name]; exists {
		f.mu.RUnlock()
		return m, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if m, exists := f.multipliers[name]; exists {
		return m, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown multiplier: %s", name)
	}
	m := NewMultiplier(creator())
	f.multipliers[name] = m
	return m, nil
}

// List returns a sorted list of all registered names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a map of all registered multipliers.
func (f *DefaultFactory) GetAll() map[string]Multiplier {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.multipliers[name]; !exists {
			f.multipliers[name] = NewMultiplier(creator())
		}
	}
	result := make(map[string]Multiplier, len(f.multipliers))
	for name, m := range f.multipliers {
		result[name] = m
	}
	return result
}

// Has reports whether name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide factory.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// registerMultiplier registers a multiplier in the global factory.
func registerMultiplier(name string, creator func() coreMultiplier) error {
	return globalFactory.Register(name, creator)
}
