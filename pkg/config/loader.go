package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simonhull/firebird-suite/daogen/pkg/host"
	"github.com/simonhull/firebird-suite/daogen/pkg/logger"
)

// FileRef is a config file location resolved to an absolute path.
type FileRef struct {
	// Path is absolute when resolution succeeded, otherwise the path as given.
	Path string
}

// NewFileRef resolves path against the working directory.
func NewFileRef(path string) FileRef {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return FileRef{Path: path}
}

// Ext returns the file extension as written, including the dot.
func (f FileRef) Ext() string {
	return filepath.Ext(f.Path)
}

// Exists reports whether f names an existing regular file (or a symlink
// to one). A directory does not count.
func (f FileRef) Exists() (bool, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// Loader reads generation configs from files. The zero value uses
// DefaultRegistry, the running process as host and logger.Default.
type Loader struct {
	registry *Registry
	host     host.Context
	log      logger.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithRegistry sets the extension→codec registry.
func WithRegistry(r *Registry) Option {
	return func(l *Loader) {
		l.registry = r
	}
}

// WithHost sets the host whose defaults a loaded config starts from.
func WithHost(h host.Context) Option {
	return func(l *Loader) {
		l.host = h
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// NewLoader returns a loader using DefaultRegistry and host.Process unless
// overridden. Without WithLogger the loader logs to whatever logger.Default
// returns at load time.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.registry == nil {
		l.registry = DefaultRegistry()
	}
	if l.host == nil {
		l.host = host.Process()
	}
	return l
}

func (l *Loader) currentLogger() logger.Logger {
	if l.log != nil {
		return l.log
	}
	return logger.Default()
}

// Registry returns the loader's registry. A zero Loader reports a fresh
// DefaultRegistry on each call.
func (l *Loader) Registry() *Registry {
	if l.registry == nil {
		return DefaultRegistry()
	}
	return l.registry
}

func (l *Loader) currentHost() host.Context {
	if l.host == nil {
		return host.Process()
	}
	return l.host
}

// LoadDefault loads DefaultFile.
func (l *Loader) LoadDefault() (*GenerationConfig, error) {
	return l.LoadFrom(DefaultFile)
}

// LoadFrom loads the config at path.
func (l *Loader) LoadFrom(path string) (*GenerationConfig, error) {
	return l.LoadFile(NewFileRef(path))
}

// LoadFile loads the config ref points to. Decoding starts from the host's
// construction defaults, so every key present in the file wins and absent
// keys keep their default. On error the config is nil.
func (l *Loader) LoadFile(ref FileRef) (*GenerationConfig, error) {
	log := l.currentLogger().WithFields(logger.F("path", ref.Path))

	exists, err := ref.Exists()
	if err != nil {
		return nil, fmt.Errorf("checking config file %s: %w", ref.Path, err)
	}
	if !exists {
		log.Debug("config file not found")
		return nil, &FileNotFoundError{Path: ref.Path}
	}

	codec, err := l.Registry().Detect(ref.Path)
	if err != nil {
		log.Debug("unsupported config format", logger.F("ext", ref.Ext()))
		return nil, err
	}

	data, err := os.ReadFile(ref.Path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", ref.Path, err)
	}

	cfg := NewWithHost(l.currentHost())
	if err := codec.Decode(data, cfg); err != nil {
		log.Debug("config decode failed", logger.F("format", codec.Name()), logger.Err(err))
		return nil, err
	}

	log.Debug("config loaded", logger.F("format", codec.Name()), logger.F("bytes", len(data)))
	return cfg, nil
}

// Marshal encodes cfg in the format registered for path's extension.
func (l *Loader) Marshal(path string, cfg *GenerationConfig) ([]byte, error) {
	codec, err := l.Registry().Detect(path)
	if err != nil {
		return nil, err
	}

	data, err := codec.Encode(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding %s config: %w", codec.Name(), err)
	}
	return data, nil
}

var defaultLoader = NewLoader()

// LoadDefault loads DefaultFile with the default registry.
func LoadDefault() (*GenerationConfig, error) {
	return defaultLoader.LoadDefault()
}

// LoadFrom loads the config at path with the default registry.
func LoadFrom(path string) (*GenerationConfig, error) {
	return defaultLoader.LoadFrom(path)
}

// LoadFile loads the config ref points to with the default registry.
func LoadFile(ref FileRef) (*GenerationConfig, error) {
	return defaultLoader.LoadFile(ref)
}

// Marshal encodes cfg in the format chosen by path's extension, using the
// default registry.
func Marshal(path string, cfg *GenerationConfig) ([]byte, error) {
	return defaultLoader.Marshal(path, cfg)
}
