package config

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Key is the composite key of a GenerationConfig. Configs with equal keys
// target the same generated repository regardless of their other fields.
type Key struct {
	TypeAssembly  string
	SchemaName    string
	FromNamespace string
	ToNamespace   string
}

// Key returns the composite key of c.
func (c *GenerationConfig) Key() Key {
	return Key{
		TypeAssembly:  c.TypeAssembly,
		SchemaName:    c.SchemaName,
		FromNamespace: c.FromNamespace,
		ToNamespace:   c.ToNamespace,
	}
}

// Equal reports whether c and other have the same composite key. Two nil
// configs are equal; a nil and a non-nil config are not.
func (c *GenerationConfig) Equal(other *GenerationConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Key() == other.Key()
}

// Hash returns a hash of c's composite key. Equal configs hash equal, and
// the value is the same across processes.
func (c *GenerationConfig) Hash() uint64 {
	return c.Key().Hash()
}

// Hash returns the MurmurHash3 of the key fields in declaration order.
// Each field is length-prefixed so ("ab", "c") and ("a", "bc") differ.
func (k Key) Hash() uint64 {
	h := murmur3.New64()
	var size [8]byte
	for _, field := range [...]string{k.TypeAssembly, k.SchemaName, k.FromNamespace, k.ToNamespace} {
		binary.BigEndian.PutUint64(size[:], uint64(len(field)))
		h.Write(size[:])
		h.Write([]byte(field))
	}
	return h.Sum64()
}

// KeySet collects configs, keeping the first one seen for each Key.
// Iteration follows insertion order. The zero value is ready to use.
type KeySet struct {
	index   map[Key]int
	configs []*GenerationConfig
}

// Add inserts cfg unless a config with the same key is already present.
// It returns the config stored under cfg's key and whether cfg was added.
func (s *KeySet) Add(cfg *GenerationConfig) (*GenerationConfig, bool) {
	if s.index == nil {
		s.index = make(map[Key]int)
	}

	key := cfg.Key()
	if i, ok := s.index[key]; ok {
		return s.configs[i], false
	}

	s.index[key] = len(s.configs)
	s.configs = append(s.configs, cfg)
	return cfg, true
}

// Contains reports whether a config with cfg's key is present.
func (s *KeySet) Contains(cfg *GenerationConfig) bool {
	_, ok := s.index[cfg.Key()]
	return ok
}

// Len returns the number of distinct keys.
func (s *KeySet) Len() int {
	return len(s.configs)
}

// Configs returns the stored configs in insertion order.
func (s *KeySet) Configs() []*GenerationConfig {
	out := make([]*GenerationConfig, len(s.configs))
	copy(out, s.configs)
	return out
}
