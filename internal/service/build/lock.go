package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/drydock-build/drydock/internal/logger"
)

// lockFilename marks a build in progress in the project root.
const lockFilename = ".drydock.lock"

// lockFileMode restricts the marker to the invoking user.
const lockFileMode os.FileMode = 0o600

// errBuildInProgress is returned when another live build holds the lock.
var errBuildInProgress = errors.New("another build is already running in this project")

// acquireLock writes the pid marker in root, reclaiming markers whose owning
// process is gone. It returns a release function on success.
func acquireLock(ctx context.Context, root string) (func(), error) {
	path := filepath.Join(root, lockFilename)

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		pid, parseErr := strconv.Atoi(strings.TrimSpace(string(contents)))
		if parseErr == nil && processAlive(pid) {
			return nil, fmt.Errorf("%w (pid %d)", errBuildInProgress, pid)
		}

		logger.InfoKV(ctx, "Reclaiming stale build lock", "path", path)

		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("remove stale build lock: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read build lock: %w", err)
	}

	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(pid), lockFileMode); err != nil {
		return nil, fmt.Errorf("write build lock: %w", err)
	}

	return func() {
		if err := os.Remove(path); err != nil {
			logger.Warnf(ctx, "Unable to remove build lock %s: %v", path, err)
		}
	}, nil
}

// processAlive reports whether a process with the given pid exists. When the
// process table cannot be inspected the lock is treated as live, which errs
// on the side of refusing a concurrent build.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	process, err := ps.FindProcess(pid)
	if err != nil {
		return true
	}

	return process != nil
}
