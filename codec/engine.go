package codec

import (
	"fmt"
	"sort"
)

// EngineFunc creates an Encoder
type EngineFunc func() (Encoder, error)

type engine struct {
	name string
	farm EngineFunc
}

var engines = make(map[string]engine)

// RegisterEngine Register a Engine
func RegisterEngine(name string, farm EngineFunc) {
	if farm == nil {
		panic("codec: Register engine is nil")
	}
	if _, dup := engines[name]; dup {
		panic("codec: Register called twice for engine " + name)
	}
	engines[name] = engine{name, farm}
}

// Engine get a instance of Encoder by engine name
func Engine(name string) (Encoder, error) {
	if e, ok := engines[name]; ok {
		return e.farm()
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Engines returns the registered engine names, sorted
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
