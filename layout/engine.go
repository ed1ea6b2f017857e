package layout

import (
	"image"
	"sort"
	"sync"

	"github.com/tsawler/scantab/model"
)

// Region is one labeled region in the engine's raw output.
type Region struct {
	// Type is the engine's free-text label for the region ("table",
	// "text", "figure", ...). Matching is case-insensitive downstream.
	Type string

	// BBox is the detected bounding box in pixel space. It may extend
	// beyond the image; consumers clamp before cropping.
	BBox model.BBox

	// Confidence is the engine's detection score in [0, 1], or 0 if the
	// engine does not report one.
	Confidence float64
}

// Engine is the interface for layout-analysis engines.
//
// Implementations are typically expensive to construct and should be
// created once and reused. An Engine is not required to be re-entrant;
// callers serialize Analyze calls when sharing an instance.
type Engine interface {
	// Analyze runs layout analysis on a decoded image and returns the
	// detected regions in the engine's raw output order.
	Analyze(img image.Image) ([]Region, error)

	// Name returns the engine name.
	Name() string

	// Close releases the engine's resources.
	Close() error
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Engine)
)

// Register adds an engine to the global registry under its name,
// replacing any previous registration with the same name.
func Register(name string, engine Engine) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = engine
}

// Get retrieves a registered engine by name.
func Get(name string) (Engine, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	engine, ok := registry[name]
	return engine, ok
}

// List returns the names of all registered engines in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Serialized wraps engine so that Analyze calls queue on a single
// mutex. Use it when one engine instance is shared between several
// detectors or goroutines; engines are not required to be re-entrant.
// Wrapping an already serialized engine returns it unchanged.
func Serialized(engine Engine) Engine {
	if engine == nil {
		return nil
	}
	if _, ok := engine.(*serialEngine); ok {
		return engine
	}
	return &serialEngine{engine: engine}
}

type serialEngine struct {
	engine Engine

	mu sync.Mutex // serializes Analyze
}

func (e *serialEngine) Analyze(img image.Image) ([]Region, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engine.Analyze(img)
}

func (e *serialEngine) Name() string {
	return e.engine.Name()
}

func (e *serialEngine) Close() error {
	return e.engine.Close()
}

// StaticEngine is an Engine that returns a fixed set of regions. It is
// used in tests and for wiring pipelines without a live model.
type StaticEngine struct {
	// Regions is returned from every Analyze call.
	Regions []Region

	// Err, if set, is returned from Analyze instead of Regions.
	Err error
}

// NewStaticEngine creates a StaticEngine returning the given regions.
func NewStaticEngine(regions ...Region) *StaticEngine {
	return &StaticEngine{Regions: regions}
}

// Analyze returns the configured regions or error.
func (e *StaticEngine) Analyze(img image.Image) ([]Region, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Regions, nil
}

// Name returns "static".
func (e *StaticEngine) Name() string {
	return "static"
}

// Close is a no-op.
func (e *StaticEngine) Close() error {
	return nil
}
