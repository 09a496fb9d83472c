package config

import (
	"path/filepath"

	"github.com/simonhull/firebird-suite/daogen/pkg/host"
)

const (
	// DefaultFile is the config read by LoadDefault, relative to the
	// working directory.
	DefaultFile = "./dao-repo-gen.yaml"

	// DefaultWriteSourceTo is the output directory for generated source.
	DefaultWriteSourceTo = "Generated_Dao"

	// TemplatesDir is the templates directory name under the data root.
	TemplatesDir = "Templates"

	// RepositoryBase and InheritanceRepositoryBase name the base types a
	// generated repository derives from.
	RepositoryBase            = "DaoRepository"
	InheritanceRepositoryBase = "DaoInheritanceRepository"
)

// GenerationConfig configures generation of a DAO repository.
type GenerationConfig struct {
	// TemplatePath is the directory containing code generation templates.
	TemplatePath string `json:"TemplatePath" yaml:"TemplatePath"`

	// TypeAssembly identifies the compiled unit holding the source types.
	TypeAssembly string `json:"TypeAssembly" yaml:"TypeAssembly"`

	// SchemaName groups the generated types under a logical schema.
	SchemaName string `json:"SchemaName" yaml:"SchemaName"`

	// FromNamespace is the namespace scanned for types to generate DAOs for.
	FromNamespace string `json:"FromNamespace" yaml:"FromNamespace"`

	// ToNamespace is the namespace generated DAO types are written to.
	ToNamespace string `json:"ToNamespace" yaml:"ToNamespace"`

	// WriteSourceTo is the directory generated source is written to.
	WriteSourceTo string `json:"WriteSourceTo" yaml:"WriteSourceTo"`

	// CheckForIds requires scanned types to expose an Id property.
	CheckForIds bool `json:"CheckForIds" yaml:"CheckForIds"`

	// UseInheritanceSchema generates a repository deriving from the
	// inheritance-aware base instead of the plain one.
	UseInheritanceSchema bool `json:"UseInheritanceSchema" yaml:"UseInheritanceSchema"`
}

// New returns a config with defaults derived from the running process.
func New() *GenerationConfig {
	return NewWithHost(host.Process())
}

// NewWithHost returns a config with defaults derived from h. A nil h is
// treated as a host that knows nothing.
func NewWithHost(h host.Context) *GenerationConfig {
	if h == nil {
		h = host.Static{}
	}

	cfg := &GenerationConfig{
		CheckForIds:   true,
		TemplatePath:  filepath.Join(h.DataRoot(), TemplatesDir),
		WriteSourceTo: DefaultWriteSourceTo,
	}

	if exe, ok := h.Executable(); ok {
		cfg.TypeAssembly = exe
	}

	return cfg
}

// BaseRepository returns the base type the generated repository derives
// from, selected by UseInheritanceSchema.
func (c *GenerationConfig) BaseRepository() string {
	if c.UseInheritanceSchema {
		return InheritanceRepositoryBase
	}
	return RepositoryBase
}

// Clone returns an independent copy of c.
func (c *GenerationConfig) Clone() *GenerationConfig {
	out := *c
	return &out
}
