package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Filename is the native toolchain manifest located in the project root.
const Filename = "Cargo.toml"

// RuntimeDependency is the runtime crate whose feature list is kept in sync
// with the drydock configuration.
const RuntimeDependency = "drydock"

// Manifest is the typed view of the fields the pipeline consumes.
type Manifest struct {
	// Package is the [package] table.
	Package Package `toml:"package"`
	// Binaries are the [[bin]] entries, if any.
	Binaries []Binary `toml:"bin"`
}

// Package mirrors the manifest [package] table.
type Package struct {
	// Name is the crate name; it is also the default binary name.
	Name string `toml:"name"`
	// Version is the crate version, expected to be valid semver.
	Version string `toml:"version"`
	// Description is the optional crate description.
	Description string `toml:"description"`
	// Authors is the optional author list.
	Authors []string `toml:"authors"`
	// DefaultRun names the binary to run when several are declared.
	DefaultRun string `toml:"default-run"`
}

// Binary mirrors a [[bin]] entry.
type Binary struct {
	// Name of the produced binary.
	Name string `toml:"name"`
	// Path of the binary's main source file.
	Path string `toml:"path"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var mf Manifest
	if err := toml.Unmarshal(contents, &mf); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &mf, nil
}

// BinaryName returns the name of the main binary: the default-run target when
// set, otherwise the crate name.
func (m *Manifest) BinaryName() string {
	if m.Package.DefaultRun != "" {
		return m.Package.DefaultRun
	}

	return m.Package.Name
}
