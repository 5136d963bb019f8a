package bundler

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"gopkg.in/yaml.v3"

	"github.com/drydock-build/drydock/internal/logger"
	"github.com/drydock-build/drydock/internal/platform"
)

// Engine is the external packaging engine turning compiled binaries plus
// metadata into installer bundles.
type Engine interface {
	// Bundle produces bundles according to the settings and returns what it
	// built. Artifacts are written under settings.OutDir.
	Bundle(ctx context.Context, settings *Settings) ([]Bundle, error)
}

// Adapter prepares the output directory and drives the engine.
type Adapter struct {
	engine Engine
	policy platform.Policy
}

// NewAdapter wires an engine with the platform policy of this run.
func NewAdapter(engine Engine, policy platform.Policy) *Adapter {
	return &Adapter{engine: engine, policy: policy}
}

// Bundle stages platform resources and invokes the engine once.
func (a *Adapter) Bundle(ctx context.Context, settings *Settings) ([]Bundle, error) {
	if err := stageMergeModules(settings.OutDir, a.policy); err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Bundling project", "out_dir", settings.OutDir)

	bundles, err := a.engine.Bundle(ctx, settings)
	if err != nil {
		return nil, err
	}

	return bundles, nil
}

// DefaultEngineExecutable is the external engine the production CLI invokes.
const DefaultEngineExecutable = "drydock-bundler"

// CommandEngine reaches the packaging engine as a subprocess: settings go in
// as YAML on stdin, the produced bundle list comes back as YAML on stdout.
type CommandEngine struct {
	// Executable is the engine binary, DefaultEngineExecutable when empty.
	Executable string
}

// Bundle implements Engine.
func (e *CommandEngine) Bundle(ctx context.Context, settings *Settings) ([]Bundle, error) {
	executable := e.Executable
	if executable == "" {
		executable = DefaultEngineExecutable
	}

	input, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("marshal bundler settings: %w", err)
	}

	var stdout bytes.Buffer

	cmd := exec.CommandContext(ctx, executable)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w", executable, err)
	}

	var bundles []Bundle
	if err := yaml.Unmarshal(stdout.Bytes(), &bundles); err != nil {
		return nil, fmt.Errorf("unmarshal %s output: %w", executable, err)
	}

	return bundles, nil
}
