// Package generator writes files produced by daogen commands.
//
// Work is expressed as Operations that are validated first and executed
// second, so a failing check leaves the disk untouched:
//
//	ops := []generator.Operation{&generator.WriteFileOp{Path: p, Content: b, Mode: 0644}}
//	sum, err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: dryRun})
//
// A Resolver decides what to do when a target already exists; a SkipOp
// carries that decision through Execute into its Summary.
package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation is a file system change that can be checked before it runs.
//
// Validate only inspects the disk. force skips the "already exists"
// check. Description is a one-line summary for output.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp writes Content to Path, creating parent directories.
type WriteFileOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode

	// Overwrite allows replacing an existing file without force.
	Overwrite bool
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	info, err := os.Stat(op.Path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%s is a directory", op.Path)
	case err == nil && !force && !op.Overwrite:
		return fmt.Errorf("file already exists: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}
	return os.WriteFile(op.Path, op.Content, op.mode())
}

func (op *WriteFileOp) Description() string {
	verb := "Create"
	if op.Overwrite {
		verb = "Overwrite"
	}
	return fmt.Sprintf("%s %s (%d bytes)", verb, op.Path, len(op.Content))
}

func (op *WriteFileOp) mode() fs.FileMode {
	if op.Mode == 0 {
		return 0644
	}
	return op.Mode
}

// SkipOp records a target that was deliberately left alone. It never
// touches the disk.
type SkipOp struct {
	Path   string
	Reason string
}

func (op *SkipOp) Validate(ctx context.Context, force bool) error {
	return ctx.Err()
}

func (op *SkipOp) Execute(ctx context.Context) error {
	return ctx.Err()
}

func (op *SkipOp) Description() string {
	if op.Reason == "" {
		return op.Path
	}
	return fmt.Sprintf("%s (%s)", op.Path, op.Reason)
}
