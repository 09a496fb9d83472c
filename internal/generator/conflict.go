package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/daogen/internal/input"
)

// Resolution says what to do with a target path.
type Resolution int

const (
	// Write means the path is free.
	Write Resolution = iota
	// Overwrite replaces an existing file.
	Overwrite
	// Skip leaves an existing file alone.
	Skip
)

func (r Resolution) String() string {
	switch r {
	case Write:
		return "write"
	case Overwrite:
		return "overwrite"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
}

// ConflictStrategy decides the fate of a path that already exists.
type ConflictStrategy interface {
	Resolve(path string) Resolution
}

// ForceStrategy always overwrites.
type ForceStrategy struct{}

func (ForceStrategy) Resolve(string) Resolution { return Overwrite }

// SkipStrategy never overwrites.
type SkipStrategy struct{}

func (SkipStrategy) Resolve(string) Resolution { return Skip }

// InteractiveStrategy asks the user, defaulting to no.
type InteractiveStrategy struct {
	Prompter *input.Prompter
}

func (s InteractiveStrategy) Resolve(path string) Resolution {
	if s.Prompter.Confirm(fmt.Sprintf("%s exists. Overwrite?", path), false) {
		return Overwrite
	}
	return Skip
}

// Resolver applies a ConflictStrategy to paths that exist.
type Resolver struct {
	strategy ConflictStrategy
}

// NewResolver picks a strategy from the --force and --skip flags. With
// neither set the user is asked through p, unless interactive is false, in
// which case existing files are skipped.
func NewResolver(force, skip, interactive bool, p *input.Prompter) (*Resolver, error) {
	if force && skip {
		return nil, errors.New("--force cannot be combined with --skip")
	}

	var s ConflictStrategy
	switch {
	case force:
		s = ForceStrategy{}
	case skip, !interactive, p == nil:
		s = SkipStrategy{}
	default:
		s = InteractiveStrategy{Prompter: p}
	}
	return &Resolver{strategy: s}, nil
}

// Strategy returns the selected strategy.
func (r *Resolver) Strategy() ConflictStrategy {
	return r.strategy
}

// Resolve returns Write for a free path and defers to the strategy when
// the path exists.
func (r *Resolver) Resolve(path string) (Resolution, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Write, nil
		}
		return Skip, fmt.Errorf("checking %s: %w", path, err)
	}
	return r.strategy.Resolve(path), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
