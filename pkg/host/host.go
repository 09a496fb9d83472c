// Package host describes the environment a generation config is created in.
//
// Defaulting code asks a Context for the application data root and the
// location of the running executable instead of probing the process
// directly, so callers and tests can pin both values.
package host

import (
	"os"
	"path/filepath"
)

// DataRootEnv overrides the data root used by Process.
const DataRootEnv = "DAOGEN_DATA_ROOT"

// Context provides best-effort facts about the hosting process.
type Context interface {
	// DataRoot returns the application data directory. It never fails;
	// implementations fall back to a relative directory.
	DataRoot() string

	// Executable returns the path of the program's main executable and
	// whether it could be resolved.
	Executable() (string, bool)
}

// Process returns a Context backed by the running process.
func Process() Context {
	return processContext{}
}

type processContext struct{}

func (processContext) DataRoot() string {
	if root := os.Getenv(DataRootEnv); root != "" {
		return root
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "data"
	}

	return filepath.Join(home, ".daogen", "data")
}

func (processContext) Executable() (string, bool) {
	exe, err := os.Executable()
	if err != nil || exe == "" {
		return "", false
	}

	// Symlinked installs should report the real binary
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return exe, true
}

// Static is a fixed Context. An empty Exe means the executable is unknown.
type Static struct {
	Root string
	Exe  string
}

// DataRoot returns s.Root.
func (s Static) DataRoot() string {
	return s.Root
}

// Executable returns s.Exe and whether it is set.
func (s Static) Executable() (string, bool) {
	return s.Exe, s.Exe != ""
}

// WithDataRoot wraps ctx so that DataRoot reports root. An empty root
// returns ctx unchanged.
func WithDataRoot(ctx Context, root string) Context {
	if root == "" {
		return ctx
	}
	return dataRootOverride{Context: ctx, root: root}
}

type dataRootOverride struct {
	Context
	root string
}

func (d dataRootOverride) DataRoot() string {
	return d.root
}
