package build

import "fmt"

// ConfigLoadError reports a missing or unparsable configuration file.
type ConfigLoadError struct {
	// Path is the configuration path that was attempted, empty for default
	// discovery.
	Path string
	// Err is the loader failure.
	Err error
}

func (e *ConfigLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load configuration: %v", e.Err)
	}

	return fmt.Sprintf("load configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error { return e.Err }

// WorkingDirectoryError reports an inaccessible project root.
type WorkingDirectoryError struct {
	// Dir is the directory the pipeline tried to enter.
	Dir string
	// Err is the underlying failure.
	Err error
}

func (e *WorkingDirectoryError) Error() string {
	return fmt.Sprintf("change working directory to %s: %v", e.Dir, e.Err)
}

func (e *WorkingDirectoryError) Unwrap() error { return e.Err }

// ManifestRewriteError reports a failed manifest normalization.
type ManifestRewriteError struct {
	// Err is the underlying failure.
	Err error
}

func (e *ManifestRewriteError) Error() string {
	return fmt.Sprintf("rewrite manifest: %v", e.Err)
}

func (e *ManifestRewriteError) Unwrap() error { return e.Err }

// PreBuildHookError reports a before-build command that exited non-zero.
type PreBuildHookError struct {
	// Command is the configured command text.
	Command string
	// Err is the underlying failure.
	Err error
}

func (e *PreBuildHookError) Error() string {
	return fmt.Sprintf("before-build command `%s` failed: %v", e.Command, e.Err)
}

func (e *PreBuildHookError) Unwrap() error { return e.Err }

// MissingWebAssetsError reports an absent web-asset distribution directory.
// This is a user-configuration error, not a retryable condition.
type MissingWebAssetsError struct {
	// Path is the configured distDir.
	Path string
}

func (e *MissingWebAssetsError) Error() string {
	return fmt.Sprintf(
		"unable to find your web assets, did you forget to build your web app? Your distDir is set to %q",
		e.Path)
}

// CompileError reports a failed native build.
type CompileError struct {
	// Err is the toolchain's reported cause.
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to build app: %v", e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// AppSettingsError reports missing or malformed package metadata.
type AppSettingsError struct {
	// Err is the resolver failure.
	Err error
}

func (e *AppSettingsError) Error() string {
	return fmt.Sprintf("resolve app settings: %v", e.Err)
}

func (e *AppSettingsError) Unwrap() error { return e.Err }

// RenameError reports a failed rename of the compiled binary.
type RenameError struct {
	// From is the compiled binary path.
	From string
	// To is the product-name destination path.
	To string
	// Err is the underlying failure.
	Err error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s to %s: %v", e.From, e.To, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

// UnsupportedBundleFormatError reports an unrecognized requested format name.
// It is raised before any bundling side effect occurs.
type UnsupportedBundleFormatError struct {
	// Name is the offending short name.
	Name string
}

func (e *UnsupportedBundleFormatError) Error() string {
	return fmt.Sprintf("unsupported bundle format: %s", e.Name)
}

// BundleError reports a packaging engine failure.
type BundleError struct {
	// Err is the underlying failure.
	Err error
}

func (e *BundleError) Error() string {
	return fmt.Sprintf("failed to bundle project: %v", e.Err)
}

func (e *BundleError) Unwrap() error { return e.Err }

// SigningError reports a failed updater-artifact signature. The first
// signing failure aborts the remaining signing loop.
type SigningError struct {
	// Path is the artifact that failed to sign.
	Path string
	// Err is the signer failure.
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("sign %s: %v", e.Path, e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }
