// Package config describes a DAO repository generation config and loads it
// from disk.
//
// # Construction
//
// New returns a config populated with defaults derived from the hosting
// process (template directory under the data root, executable path as the
// type assembly). NewWithHost does the same against an explicit host.Context.
//
// # Loading
//
// Files are decoded by extension through a Registry:
//
//	.json        JSON
//	.yml .yaml   YAML
//
//	cfg, err := config.LoadFrom("dao-repo-gen.yaml")
//	cfg, err := config.LoadDefault() // ./dao-repo-gen.yaml
//
// Loading starts from the construction defaults of the loader's host
// (WithHost, host.Process otherwise) and decodes the file over them. Keys
// present in the file always win. Absent keys, and keys set to null, keep
// their default. Unknown keys are ignored.
//
// JSON keys match field names without regard to case, as encoding/json
// does, so "schemaname" sets SchemaName. YAML keys must match exactly.
// Files meant to be interchangeable across formats should use the
// PascalCase names written by Marshal.
//
// Failures surface as *FileNotFoundError, *UnsupportedFormatError, or the
// decoder's own error returned unchanged.
//
// # Identity
//
// Two configs describe the same generation target when their Key
// (TypeAssembly, SchemaName, FromNamespace, ToNamespace) is equal. Equal and
// Hash only look at those four fields.
package config
