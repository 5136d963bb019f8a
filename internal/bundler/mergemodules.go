package bundler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/drydock-build/drydock/internal/platform"
)

// ResourcesDirEnv overrides the directory merge modules are staged from.
const ResourcesDirEnv = "DRYDOCK_RESOURCES"

// resourcesSubdir is the resource directory installed next to the executable.
const resourcesSubdir = "resources"

// mergeModuleFileMode is used for staged merge-module files.
const mergeModuleFileMode os.FileMode = 0o644

// stageMergeModules copies the VC-runtime merge module matching the target
// architecture into outDir so the engine can embed it, removing the other
// architecture's file first so both are never shipped. It is a no-op on
// platforms without merge modules.
func stageMergeModules(outDir string, policy platform.Policy) error {
	fresh, stale, ok := policy.MergeModule()
	if !ok {
		return nil
	}

	// Stale file may legitimately be absent.
	_ = os.Remove(filepath.Join(outDir, stale))

	src, err := resourcesDir()
	if err != nil {
		return err
	}

	contents, err := os.ReadFile(filepath.Join(src, fresh))
	if err != nil {
		return fmt.Errorf("read merge module %s: %w", fresh, err)
	}

	if err := renameio.WriteFile(filepath.Join(outDir, fresh), contents, mergeModuleFileMode); err != nil {
		return fmt.Errorf("stage merge module %s: %w", fresh, err)
	}

	return nil
}

// resourcesDir locates the tool resource directory: the environment override
// when set, otherwise the resources directory next to the executable.
func resourcesDir() (string, error) {
	if dir := os.Getenv(ResourcesDirEnv); dir != "" {
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate resources: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), resourcesSubdir), nil
}
