package config

import (
	"path/filepath"
	"strings"
	"sync"
)

// Registry maps file extensions to codecs. Extensions are matched without
// regard to case. The zero value is an empty registry. A Registry is safe
// for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// DefaultRegistry returns a registry with .json, .yml and .yaml.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".json", JSON)
	r.Register(".yml", YAML)
	r.Register(".yaml", YAML)
	return r
}

// Register binds ext to codec, replacing any previous binding. The leading
// dot is optional.
func (r *Registry) Register(ext string, codec Codec) {
	ext = normalizeExt(ext)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.codecs == nil {
		r.codecs = make(map[string]Codec)
	}
	if _, exists := r.codecs[ext]; !exists {
		r.order = append(r.order, ext)
	}
	r.codecs[ext] = codec
}

// Extensions returns the registered extensions in registration order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Detect returns the codec for path's extension, or an
// *UnsupportedFormatError when none is registered.
func (r *Registry) Detect(path string) (Codec, error) {
	ext := filepath.Ext(path)

	r.mu.RLock()
	codec, ok := r.codecs[normalizeExt(ext)]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnsupportedFormatError{
			Extension: ext,
			Supported: r.Extensions(),
		}
	}
	return codec, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
