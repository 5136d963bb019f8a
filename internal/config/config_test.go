package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks the required-field rules.
func TestValidate(t *testing.T) {
	t.Parallel()

	err := Validate(new(Config))
	require.Error(t, err)

	cfg := &Config{}
	cfg.Build.DistDir = "../dist"
	require.NoError(t, Validate(cfg))
}

// TestLoad parses a full document and rejects a missing distDir.
func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFilename)
	doc := `
build:
  distDir: ../dist
  runner: xargo
  beforeBuildCommand: npm run build
  target: x86_64-pc-windows-msvc
package:
  productName: Doghouse
bundle:
  active: true
  identifier: com.example.doghouse
  updater:
    active: true
    pubkey: untrusted-key
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "../dist", cfg.Build.DistDir)
	require.Equal(t, "xargo", cfg.Build.Runner)
	require.Equal(t, "npm run build", cfg.Build.BeforeBuildCommand)
	require.Equal(t, "Doghouse", cfg.Package.ProductName)
	require.True(t, cfg.Bundle.Active)
	require.True(t, cfg.Bundle.Updater.Active)
	require.Equal(t, "untrusted-key", cfg.Bundle.Updater.Pubkey)

	// Missing distDir.
	require.NoError(t, os.WriteFile(path, []byte("package:\n  productName: X\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)

	// Missing file.
	_, err = Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

// TestFind walks up to the directory holding drydock.yaml.
func TestFind(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	want := filepath.Join(root, DefaultFilename)
	require.NoError(t, os.WriteFile(want, []byte("build:\n  distDir: dist\n"), 0o600))

	got, err := Find(nested)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = Find(filepath.Join(os.TempDir(), "definitely-empty-dir-for-find"))
	require.Error(t, err)
}

// TestSnapshotViewUpdate verifies reads observe writes through the guard.
func TestSnapshotViewUpdate(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.Build.DistDir = "dist"
	snap := NewSnapshot(cfg)

	snap.Update(func(c *Config) {
		c.Build.Target = "aarch64-apple-darwin"
	})

	var target string

	snap.View(func(c *Config) {
		target = c.Build.Target
	})
	require.Equal(t, "aarch64-apple-darwin", target)
}
