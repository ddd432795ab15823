package dotenv

import "os"

// Provider is the external environment contract of spec.md §4.1: a pure
// read during one evaluation, plus an idempotent write. The evaluator only
// ever calls Get; Set is called exclusively by the Loader facade's Load, so
// Evaluate never mutates external state.
type Provider interface {
	// Get returns the current value bound to name, and whether it is bound
	// at all (absent and empty are distinct).
	Get(name string) (value string, ok bool)
	// Set idempotently overwrites the binding for name.
	Set(name, value string)
}

// OSProvider adapts the process environment to the Provider contract.
type OSProvider struct{}

// NewOSProvider returns a Provider backed by os.LookupEnv/os.Setenv.
func NewOSProvider() OSProvider {
	return OSProvider{}
}

func (OSProvider) Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (OSProvider) Set(name, value string) {
	// os.Setenv only fails if name contains '=' or a NUL byte, neither of
	// which a valid identifier (spec.md §3) can contain.
	_ = os.Setenv(name, value)
}

// MapProvider is an in-memory Provider, used for tests and for embedding
// dotenv evaluation without touching the real process environment.
type MapProvider struct {
	values map[string]string
}

// NewMapProvider returns a MapProvider seeded with initial (may be nil).
func NewMapProvider(initial map[string]string) *MapProvider {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}

	return &MapProvider{values: values}
}

func (m *MapProvider) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *MapProvider) Set(name, value string) {
	m.values[name] = value
}
