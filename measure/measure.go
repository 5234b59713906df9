package measure

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/katalvlaran/hmatrix/strval"
)

// Sentinel errors for the measure package.
var (
	// ErrUnknownMeasure indicates Lookup was asked for a name with no
	// registered factory — a configuration error callers should warn
	// on and recover from by falling back to a default measure.
	ErrUnknownMeasure = errors.New("measure: unknown measure name")

	// ErrDuplicateMeasure indicates Register was called twice for the
	// same name.
	ErrDuplicateMeasure = errors.New("measure: duplicate registration")
)

// Config is the flat name->value map a measure's Configure reads
// during setup.
type Config map[string]string

// String returns cfg[key], or def if key is absent.
func (cfg Config) String(key, def string) string {
	if v, ok := cfg[key]; ok {
		return v
	}
	return def
}

// Int returns cfg[key] parsed as an int, or def if absent/unparsable.
func (cfg Config) Int(key string, def int) int {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Float returns cfg[key] parsed as a float64, or def if absent/unparsable.
func (cfg Config) Float(key string, def float64) float64 {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Measure is the pair of operations every catalog entry exposes.
// Configure runs once, after configuration loading and before any
// Compare call; Compare must be pure and thread-safe.
type Measure interface {
	// Configure binds algorithm parameters from cfg. It is invoked at
	// most once, before the first Compare.
	Configure(cfg Config) error

	// Compare returns a single score for a and b. Pure and thread-safe.
	Compare(a, b *strval.Value) float32
}

// Factory constructs a fresh, unconfigured Measure instance.
type Factory func() Measure

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a named factory to the static dispatch table, trading
// a function-pointer switch for a name-keyed registry. Register panics
// on a duplicate name — that is always a programmer
// error (two catalog files claiming the same name), never a runtime
// condition callers need to recover from.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("measure: Register(%q): %v", name, ErrDuplicateMeasure))
	}
	registry[name] = f
}

// Lookup resolves name to a freshly constructed, unconfigured Measure.
// An unknown name is a non-fatal configuration error; Lookup reports
// that via ok=false so callers can warn and fall back to a default
// measure rather than abort.
func Lookup(name string) (m Measure, ok bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, exists := registry[name]
	if !exists {
		return nil, false
	}

	return f(), true
}

// Names returns every registered measure name, order unspecified, for
// diagnostics (e.g. a CLI's --help listing of available --measure
// values).
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	return names
}
