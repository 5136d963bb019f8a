package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/drydock-build/drydock/internal/bundler"
	"github.com/drydock-build/drydock/internal/compiler"
	"github.com/drydock-build/drydock/internal/config"
	"github.com/drydock-build/drydock/internal/hook"
	"github.com/drydock-build/drydock/internal/logger"
	"github.com/drydock-build/drydock/internal/manifest"
	"github.com/drydock-build/drydock/internal/platform"
	"github.com/drydock-build/drydock/internal/signer"
)

// Options are the caller-configured inputs of one pipeline run. They are
// built once by the CLI and consumed exactly once by Run.
type Options struct {
	// Runner overrides the build tool; it wins over the configured runner.
	Runner string
	// Target is an optional cross-compilation target triple.
	Target string
	// Bundles restricts the produced package formats by short name. The
	// sentinel "none" disables bundling entirely.
	Bundles []string
	// ConfigPath is an optional alternate configuration file; empty means
	// upward discovery of drydock.yaml.
	ConfigPath string
	// Debug selects the debug profile.
	Debug bool
	// Verbose enables verbose engine output.
	Verbose bool
}

// Pipeline sequences the build stages and owns overall success or failure.
type Pipeline struct {
	opts    *Options
	policy  platform.Policy
	invoker compiler.Invoker
	engine  bundler.Engine
	signer  signer.Signer
	stdout  io.Writer
}

// Run executes the pipeline with the production collaborators.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "drydock:build")

	p := &Pipeline{
		opts:    opts,
		policy:  platform.Host(),
		invoker: &compiler.CommandInvoker{},
		engine:  &bundler.CommandEngine{},
		signer:  signer.EnvSigner{},
		stdout:  os.Stdout,
	}

	return p.run(ctx)
}

// run walks the stages in order. Every failure is wrapped in its
// stage-identifying error type and aborts the run immediately.
func (p *Pipeline) run(ctx context.Context) error {
	// Stage 1: load configuration from the override path or by discovery.
	configPath := p.opts.ConfigPath
	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return &ConfigLoadError{Err: err}
		}

		configPath, err = config.Find(cwd)
		if err != nil {
			return &ConfigLoadError{Err: err}
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return &ConfigLoadError{Path: configPath, Err: err}
	}

	snap := config.NewSnapshot(cfg)

	// Stage 2: switch the process to the project root.
	root, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return &WorkingDirectoryError{Dir: filepath.Dir(configPath), Err: err}
	}

	if err := os.Chdir(root); err != nil {
		return &WorkingDirectoryError{Dir: root, Err: err}
	}

	release, err := acquireLock(ctx, root)
	if err != nil {
		return err
	}
	defer release()

	// Stage 3: normalize the manifest against the configuration.
	mf, err := manifest.Rewrite(filepath.Join(root, manifest.Filename), snap)
	if err != nil {
		return &ManifestRewriteError{Err: err}
	}

	// Stages 4-5: extract hook inputs under a short read lock, release it,
	// then spawn. The guard must never be held across a child process.
	var (
		beforeBuild string
		appDir      string
		distDir     string
		cfgRunner   string
		cfgTarget   string
	)

	snap.View(func(c *config.Config) {
		beforeBuild = c.Build.BeforeBuildCommand
		appDir = c.Build.AppDir
		distDir = c.Build.DistDir
		cfgRunner = c.Build.Runner
		cfgTarget = c.Build.Target
	})

	if beforeBuild != "" {
		if err := hook.Run(ctx, beforeBuild, resolvePath(root, appDir), p.policy); err != nil {
			return &PreBuildHookError{Command: beforeBuild, Err: err}
		}
	}

	// Stage 6: the web assets must exist before any compilation starts.
	if _, err := os.Stat(resolvePath(root, distDir)); err != nil {
		return &MissingWebAssetsError{Path: distDir}
	}

	// Stage 7: runner precedence is request override, configuration, default.
	runner := p.opts.Runner
	if runner == "" {
		runner = cfgRunner
	}

	if runner == "" {
		runner = compiler.DefaultRunner
	}

	target := p.opts.Target
	if target == "" {
		target = cfgTarget
	}

	// Later stages read the target from the snapshot, so stamp the resolved
	// value back as the single source of truth.
	snap.Update(func(c *config.Config) {
		c.Build.Target = target
	})

	// Stage 8: compile.
	req := &compiler.Request{Runner: runner, Target: target, Debug: p.opts.Debug}
	if err := p.invoker.Invoke(ctx, req); err != nil {
		return &CompileError{Err: err}
	}

	// Stage 9: resolve package metadata and the output directory.
	var (
		settings   *compiler.AppSettings
		resolveErr error
	)

	snap.View(func(c *config.Config) {
		settings, resolveErr = compiler.ResolveAppSettings(c, mf)
	})

	if resolveErr != nil {
		return &AppSettingsError{Err: resolveErr}
	}

	outDir := settings.OutDir(root, target, p.opts.Debug)

	// Stage 10: rename the binary to the product name.
	if err := p.renameArtifact(ctx, outDir, settings); err != nil {
		return err
	}

	// Stages 11-12: bundle and sign when packaging is active.
	var (
		bundleActive  bool
		updaterActive bool
		pubkey        string
	)

	snap.View(func(c *config.Config) {
		bundleActive = c.Bundle.Active
		updaterActive = c.Bundle.Updater.Active
		pubkey = c.Bundle.Updater.Pubkey
	})

	if !bundleActive {
		logger.Info(ctx, "Bundling is not active, build finished")
		return nil
	}

	types, disabled, err := resolvePackageTypes(p.opts.Bundles)
	if err != nil {
		return err
	}

	if disabled {
		logger.Info(ctx, "Bundling disabled by request, build finished")
		return nil
	}

	bundles, err := p.bundle(ctx, settings, outDir, types)
	if err != nil {
		return err
	}

	if !updaterActive || pubkey == "" {
		return nil
	}

	return p.signUpdaterBundles(ctx, bundles)
}

// renameArtifact renames the compiled binary to the configured product name
// using the platform naming convention. A product name equal to the binary
// name is a no-op.
func (p *Pipeline) renameArtifact(ctx context.Context, outDir string, settings *compiler.AppSettings) error {
	if settings.ProductName() == settings.BinaryName() {
		return nil
	}

	from := filepath.Join(outDir, p.policy.ExecutableName(settings.BinaryName()))
	to := filepath.Join(outDir, p.policy.ExecutableName(settings.ProductName()))

	if err := os.Rename(from, to); err != nil {
		return &RenameError{From: from, To: to, Err: err}
	}

	logger.InfoKV(ctx, "Renamed binary to product name", "path", to)

	return nil
}

// bundle assembles the engine settings and invokes the bundler adapter.
func (p *Pipeline) bundle(
	ctx context.Context,
	settings *compiler.AppSettings,
	outDir string,
	types []bundler.PackageType,
) ([]bundler.Bundle, error) {
	engineSettings := &bundler.Settings{
		Package:  settings.PackageSettings(),
		Bundle:   settings.BundleSettings(),
		Binaries: settings.Binaries(),
		OutDir:   outDir,
		Types:    types,
		Verbose:  p.opts.Verbose,
	}

	bundles, err := bundler.NewAdapter(p.engine, p.policy).Bundle(ctx, engineSettings)
	if err != nil {
		return nil, &BundleError{Err: err}
	}

	return bundles, nil
}

// signUpdaterBundles signs every artifact of every updater-type bundle. The
// first failure aborts the remaining loop; partial signatures already on
// disk are left in place but the run fails.
func (p *Pipeline) signUpdaterBundles(ctx context.Context, bundles []bundler.Bundle) error {
	var signedPaths []string

	for _, b := range bundles {
		if b.Type != bundler.TypeUpdater {
			continue
		}

		for _, artifact := range b.Paths {
			signed, err := p.signer.Sign(ctx, artifact)
			if err != nil {
				return &SigningError{Path: artifact, Err: err}
			}

			signedPaths = append(signedPaths, signed.SignaturePath)
		}
	}

	if len(signedPaths) > 0 {
		p.reportSignedPaths(ctx, signedPaths)
	}

	return nil
}

// reportSignedPaths prints the signature paths, one per line, after a
// pluralized count line.
func (p *Pipeline) reportSignedPaths(ctx context.Context, paths []string) {
	noun := "updater archive"
	if len(paths) != 1 {
		noun = "updater archives"
	}

	logger.Infof(ctx, "%d %s at:", len(paths), noun)

	for _, path := range paths {
		_, _ = fmt.Fprintf(p.stdout, "        %s\n", path)
	}
}

// resolvePackageTypes maps requested short names to package types. The
// sentinel "none" disables bundling and stops the scan; any unknown name
// fails before a single bundling side effect happens.
func resolvePackageTypes(names []string) ([]bundler.PackageType, bool, error) {
	var types []bundler.PackageType

	for _, name := range names {
		if name == bundler.DisableSentinel {
			return nil, true, nil
		}

		packageType, ok := bundler.FromShortName(name)
		if !ok {
			return nil, false, &UnsupportedBundleFormatError{Name: name}
		}

		types = append(types, packageType)
	}

	return types, false, nil
}

// resolvePath joins path with root unless it is already absolute. An empty
// path resolves to root itself.
func resolvePath(root, path string) string {
	if path == "" {
		return root
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(root, path)
}
