package compiler

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/drydock-build/drydock/internal/bundler"
	"github.com/drydock-build/drydock/internal/config"
	"github.com/drydock-build/drydock/internal/manifest"
)

var (
	errPackageNameMissing    = errors.New("manifest package name is missing")
	errPackageVersionMissing = errors.New("manifest package version is missing")
)

// AppSettings is the resolved view of package metadata and output layout for
// one build run.
type AppSettings struct {
	pkg         manifest.Package
	binaries    []manifest.Binary
	binaryName  string
	productName string
	identifier  string
	category    string
	updater     bool
}

// ResolveAppSettings validates manifest metadata against the configuration
// and returns the derived settings.
func ResolveAppSettings(cfg *config.Config, mf *manifest.Manifest) (*AppSettings, error) {
	if mf.Package.Name == "" {
		return nil, errPackageNameMissing
	}

	if mf.Package.Version == "" {
		return nil, errPackageVersionMissing
	}

	if _, err := semver.NewVersion(mf.Package.Version); err != nil {
		return nil, fmt.Errorf("manifest package version %q: %w", mf.Package.Version, err)
	}

	return &AppSettings{
		pkg:         mf.Package,
		binaries:    mf.Binaries,
		binaryName:  mf.BinaryName(),
		productName: cfg.Package.ProductName,
		identifier:  cfg.Bundle.Identifier,
		category:    cfg.Bundle.Category,
		updater:     cfg.Bundle.Updater.Active,
	}, nil
}

// BinaryName is the name the toolchain gives the compiled binary, without
// platform suffix.
func (s *AppSettings) BinaryName() string {
	return s.binaryName
}

// ProductName is the user-facing name: the configured product name when set,
// the binary name otherwise.
func (s *AppSettings) ProductName() string {
	if s.productName != "" {
		return s.productName
	}

	return s.binaryName
}

// OutDir derives the toolchain output directory under root for the given
// cross-compilation target and profile.
func (s *AppSettings) OutDir(root, target string, debug bool) string {
	profile := "release"
	if debug {
		profile = "debug"
	}

	if target != "" {
		return filepath.Join(root, "target", target, profile)
	}

	return filepath.Join(root, "target", profile)
}

// PackageSettings is the product metadata handed to the bundler.
func (s *AppSettings) PackageSettings() bundler.PackageSettings {
	return bundler.PackageSettings{
		Name:        s.ProductName(),
		Version:     s.pkg.Version,
		Description: s.pkg.Description,
		Authors:     s.pkg.Authors,
	}
}

// BundleSettings is the packaging metadata handed to the bundler.
func (s *AppSettings) BundleSettings() bundler.BundleSettings {
	return bundler.BundleSettings{
		Identifier:    s.identifier,
		Category:      s.category,
		UpdaterActive: s.updater,
	}
}

// Binaries lists the compiled binaries the bundler should package. The main
// binary carries the product name when a rename happened.
func (s *AppSettings) Binaries() []bundler.Binary {
	if len(s.binaries) == 0 {
		return []bundler.Binary{{Name: s.ProductName(), Main: true}}
	}

	result := make([]bundler.Binary, 0, len(s.binaries))

	for _, bin := range s.binaries {
		name := bin.Name
		main := bin.Name == s.binaryName

		if main {
			name = s.ProductName()
		}

		result = append(result, bundler.Binary{Name: name, Main: main})
	}

	return result
}
