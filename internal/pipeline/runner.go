package pipeline

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Command is one external tool invocation: a resolved binary, its ordered
// argument list, and an optional full environment override. Tools
// communicate through well-known file names in the working directory, never
// through captured stdout.
type Command struct {
	Path string
	Args []string
	// Env, when non-nil, completely replaces the child's environment.
	Env []string
}

// Step is one pipeline stage.
type Step struct {
	Name    string
	Command Command
}

// Runner executes a single pipeline command synchronously. The concrete
// implementation spawns processes; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, step Step) error
}

// ExecRunner runs pipeline commands as child processes.
type ExecRunner struct {
	// Dir is the working directory the tools run in; artifacts are found
	// and produced there.
	Dir string
	// Verbose passes the tools' stdout through instead of discarding it.
	Verbose bool
}

// Run executes the step's command and waits for it to finish. A nonzero
// exit status surfaces as the error from exec.
func (r *ExecRunner) Run(ctx context.Context, step Step) error {
	cmd := exec.CommandContext(ctx, step.Command.Path, step.Command.Args...)
	cmd.Dir = r.Dir
	if step.Command.Env != nil {
		cmd.Env = step.Command.Env
	}
	cmd.Stdout = io.Discard
	if r.Verbose {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
