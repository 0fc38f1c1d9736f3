package recording

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
type BackendFactory func() Backend

type registration struct {
	factory BackendFactory
	exts    []string
}

var (
	registryMu sync.RWMutex
	backends   = make(map[string]registration)
	byExt      = make(map[string]string)
)

// Register makes a backend available by name and, optionally, by the
// file extensions it writes. Backend packages call it from init:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewBackend()
//	    }, ".svg")
//	}
//
// Register panics if factory is nil or if the name or one of the
// extensions is already taken.
func Register(name string, factory BackendFactory, exts ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	reg := registration{factory: factory}
	for _, ext := range exts {
		ext = normalizeExt(ext)
		if owner, dup := byExt[ext]; dup {
			panic(fmt.Sprintf("recording: extension %s of %s already written by %s", ext, name, owner))
		}
		byExt[ext] = name
		reg.exts = append(reg.exts, ext)
	}
	backends[name] = reg
}

// Unregister removes a backend and its extensions from the registry.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, ext := range backends[name].exts {
		delete(byExt, ext)
	}
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
// The error wraps ErrUnknownBackend and hints at a forgotten import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	reg, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return reg.factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// BackendFor returns the name of the backend that writes files like
// path, chosen by extension.
func BackendFor(path string) (string, error) {
	ext := normalizeExt(filepath.Ext(path))
	registryMu.RLock()
	name, ok := byExt[ext]
	registryMu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w for %q files", ErrUnknownBackend, ext)
	}
	return name, nil
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Extensions returns the sorted file extensions a backend writes.
func Extensions(name string) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(slices.Values(backends[name].exts))
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
