package hook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/drydock-build/drydock/internal/logger"
	"github.com/drydock-build/drydock/internal/platform"
)

// Run executes command through the platform shell with dir as the working
// directory. An empty command is a no-op. Output is streamed live and also
// captured so a failure can surface what the hook printed.
func Run(ctx context.Context, command, dir string, policy platform.Policy) error {
	if command == "" {
		return nil
	}

	logger.Infof(ctx, "Running `%s`", command)

	name, args := policy.ShellCommand(command)

	var captured bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = io.MultiWriter(os.Stdout, &captured)
	cmd.Stderr = io.MultiWriter(os.Stderr, &captured)

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(captured.String())
		if output != "" {
			return fmt.Errorf("run `%s %s`: %w\n%s", name, strings.Join(args, " "), err, output)
		}

		return fmt.Errorf("run `%s %s`: %w", name, strings.Join(args, " "), err)
	}

	return nil
}
