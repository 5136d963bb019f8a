package compiler

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/drydock-build/drydock/internal/logger"
)

// DefaultRunner is the build tool used when neither the request nor the
// configuration names one.
const DefaultRunner = "cargo"

// Request describes one native build invocation.
type Request struct {
	// Runner is the build-tool executable.
	Runner string
	// Target is an optional cross-compilation target triple.
	Target string
	// Debug selects the debug profile instead of release.
	Debug bool
}

// Invoker runs the native build for a request.
type Invoker interface {
	// Invoke blocks until the toolchain exits and reports only its outcome.
	Invoke(ctx context.Context, req *Request) error
}

// CommandInvoker invokes the toolchain as a child process, streaming its
// output to the terminal.
type CommandInvoker struct {
	// Dir is the working directory of the invocation; empty means inherit.
	Dir string
}

// Invoke implements Invoker.
func (c *CommandInvoker) Invoke(ctx context.Context, req *Request) error {
	args := []string{"build"}
	if !req.Debug {
		args = append(args, "--release")
	}

	if req.Target != "" {
		args = append(args, "--target", req.Target)
	}

	logger.InfoKV(ctx, "Compiling project", "runner", req.Runner, "args", args)

	cmd := exec.CommandContext(ctx, req.Runner, args...)
	cmd.Dir = c.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s build: %w", req.Runner, err)
	}

	return nil
}
