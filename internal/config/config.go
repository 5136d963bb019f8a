package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the build settings read from drydock.yaml.
type Config struct {
	// Build configures the native compilation step.
	Build BuildConfig `yaml:"build"`
	// Package holds product-level metadata overrides.
	Package PackageConfig `yaml:"package"`
	// Bundle configures packaging and updater signing.
	Bundle BundleConfig `yaml:"bundle"`
}

// BuildConfig is the `build` section.
type BuildConfig struct {
	// DistDir is the web-asset distribution directory, relative to the
	// project root unless absolute. It must exist before compilation.
	DistDir string `yaml:"distDir"`
	// Runner overrides the build-tool executable used for compilation.
	Runner string `yaml:"runner"`
	// BeforeBuildCommand is an optional shell command run before compilation.
	BeforeBuildCommand string `yaml:"beforeBuildCommand"`
	// Target is an optional cross-compilation target triple.
	Target string `yaml:"target"`
	// AppDir is the application directory hooks run in, relative to the
	// project root. Empty means the project root itself.
	AppDir string `yaml:"appDir"`
}

// PackageConfig is the `package` section.
type PackageConfig struct {
	// ProductName renames the compiled binary when it differs from the
	// manifest binary name.
	ProductName string `yaml:"productName"`
}

// BundleConfig is the `bundle` section.
type BundleConfig struct {
	// Active enables packaging after a successful compile.
	Active bool `yaml:"active"`
	// Identifier is the reverse-domain bundle identifier.
	Identifier string `yaml:"identifier"`
	// Category is the application category used by desktop bundle formats.
	Category string `yaml:"category"`
	// Updater configures updater-artifact production and signing.
	Updater UpdaterConfig `yaml:"updater"`
}

// UpdaterConfig is the `bundle.updater` section.
type UpdaterConfig struct {
	// Active enables updater artifacts.
	Active bool `yaml:"active"`
	// Pubkey is the public key distributed with the application. Signing
	// only happens when it is set.
	Pubkey string `yaml:"pubkey"`
}

// DefaultFilename is the configuration filename discovered in the project root.
const DefaultFilename = "drydock.yaml"

var (
	// errDistDirRequired is returned when build.distDir is missing.
	errDistDirRequired = errors.New("build.distDir must be provided")
	// ErrConfigNotFound is returned when no drydock.yaml is discoverable.
	ErrConfigNotFound = errors.New("drydock.yaml not found in this directory or any parent")
)

// Load reads configuration from path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields.
func Validate(cfg *Config) error {
	if cfg.Build.DistDir == "" {
		return errDistDirRequired
	}

	return nil
}

// Find walks upward from startDir looking for drydock.yaml and returns its
// full path. It returns ErrConfigNotFound when the filesystem root is reached
// without a hit.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, DefaultFilename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}
