package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Writer io.Writer // dry run lines; defaults to os.Stdout
}

// Summary lists what Execute did, in operation order. Under DryRun,
// Applied holds the operations that would have run.
type Summary struct {
	Applied []Operation
	Skipped []*SkipOp
}

// Execute validates every operation, then runs them in order. With DryRun
// set nothing is executed and each pending operation is only reported.
// SkipOps are collected into the summary and never reported as work.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) (Summary, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return Summary{}, fmt.Errorf("validation failed: %w", err)
		}
	}

	var sum Summary
	for _, op := range ops {
		if skip, ok := op.(*SkipOp); ok {
			sum.Skipped = append(sum.Skipped, skip)
			continue
		}
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "[dry run] %s\n", op.Description())
			sum.Applied = append(sum.Applied, op)
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return sum, fmt.Errorf("execution failed: %s: %w", op.Description(), err)
		}
		sum.Applied = append(sum.Applied, op)
	}

	return sum, nil
}
