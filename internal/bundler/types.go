package bundler

// PackageType tags a bundle with its target format.
type PackageType string

// The closed set of supported package formats.
const (
	TypeDeb      PackageType = "deb"
	TypeAppImage PackageType = "appimage"
	TypeMsi      PackageType = "msi"
	TypeApp      PackageType = "app"
	TypeDmg      PackageType = "dmg"
	TypeUpdater  PackageType = "updater"
)

// DisableSentinel in a requested-format list turns bundling off entirely.
const DisableSentinel = "none"

// FromShortName maps a requested format short name to its package type.
func FromShortName(name string) (PackageType, bool) {
	switch PackageType(name) {
	case TypeDeb, TypeAppImage, TypeMsi, TypeApp, TypeDmg, TypeUpdater:
		return PackageType(name), true
	default:
		return "", false
	}
}

// Bundle describes one produced bundle and the artifact files it consists of.
type Bundle struct {
	// Type is the package format of this bundle.
	Type PackageType `yaml:"type"`
	// Paths are the artifact files the engine produced.
	Paths []string `yaml:"paths"`
}

// PackageSettings is the product metadata handed to the engine.
type PackageSettings struct {
	// Name of the product.
	Name string `yaml:"name"`
	// Version of the product, semver.
	Version string `yaml:"version"`
	// Description shown by installer frontends.
	Description string `yaml:"description,omitempty"`
	// Authors of the product.
	Authors []string `yaml:"authors,omitempty"`
}

// BundleSettings is the packaging metadata derived from the configuration.
type BundleSettings struct {
	// Identifier is the reverse-domain bundle identifier.
	Identifier string `yaml:"identifier,omitempty"`
	// Category is the application category for desktop formats.
	Category string `yaml:"category,omitempty"`
	// UpdaterActive tells the engine to also emit updater artifacts.
	UpdaterActive bool `yaml:"updaterActive"`
}

// Binary names one compiled binary included in the bundles.
type Binary struct {
	// Name of the binary file, without platform suffix.
	Name string `yaml:"name"`
	// Main marks the binary launched by the installed application.
	Main bool `yaml:"main"`
}

// Settings is the full input of one engine invocation.
type Settings struct {
	// Package is the product metadata.
	Package PackageSettings `yaml:"package"`
	// Bundle is the packaging metadata.
	Bundle BundleSettings `yaml:"bundle"`
	// Binaries lists the compiled binaries to package.
	Binaries []Binary `yaml:"binaries"`
	// OutDir is the directory holding the compiled binaries; bundles are
	// written beneath it.
	OutDir string `yaml:"outDir"`
	// Types restricts the formats to produce. Empty means the engine's
	// platform defaults.
	Types []PackageType `yaml:"types,omitempty"`
	// Verbose enables verbose engine output.
	Verbose bool `yaml:"verbose"`
}
