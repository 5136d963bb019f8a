package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/renameio/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/drydock-build/drydock/internal/config"
)

var errRuntimeDependencyMissing = errors.New("runtime dependency not declared in manifest")

// manifestFileMode is used when the rewrite replaces the manifest.
const manifestFileMode os.FileMode = 0o644

// Rewrite normalizes the manifest at path against the configuration snapshot
// and returns its parsed form. The runtime dependency's feature list is
// brought in line with the configuration (an active updater requires the
// "updater" feature). The file is only replaced when something changed, and
// the replacement is atomic.
func Rewrite(path string, snap *config.Snapshot) (*Manifest, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var mf Manifest
	if err := toml.Unmarshal(contents, &mf); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	// Raw document round-trip keeps tables the typed view does not model.
	var doc map[string]any
	if err := toml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	var features []string

	snap.View(func(cfg *config.Config) {
		features = requiredFeatures(cfg)
	})

	changed, err := syncRuntimeFeatures(doc, features)
	if err != nil {
		return nil, err
	}

	if !changed {
		return &mf, nil
	}

	rewritten, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}

	if err := renameio.WriteFile(path, rewritten, manifestFileMode); err != nil {
		return nil, fmt.Errorf("replace manifest: %w", err)
	}

	return &mf, nil
}

// requiredFeatures derives the runtime feature set from the configuration.
func requiredFeatures(cfg *config.Config) []string {
	var features []string

	if cfg.Bundle.Updater.Active {
		features = append(features, "updater")
	}

	return features
}

// syncRuntimeFeatures makes sure the runtime dependency declares every
// required feature, reporting whether the document was mutated.
func syncRuntimeFeatures(doc map[string]any, features []string) (bool, error) {
	deps, ok := doc["dependencies"].(map[string]any)
	if !ok {
		return false, errRuntimeDependencyMissing
	}

	entry, ok := deps[RuntimeDependency]
	if !ok {
		return false, errRuntimeDependencyMissing
	}

	switch dep := entry.(type) {
	case string:
		// Plain version string; expand to a table only when features are needed.
		if len(features) == 0 {
			return false, nil
		}

		deps[RuntimeDependency] = map[string]any{
			"version":  dep,
			"features": toAnySlice(features),
		}

		return true, nil
	case map[string]any:
		existing, _ := dep["features"].([]any)
		changed := false

		for _, feature := range features {
			if !slices.Contains(existing, any(feature)) {
				existing = append(existing, feature)
				changed = true
			}
		}

		if changed {
			dep["features"] = existing
		}

		return changed, nil
	default:
		return false, fmt.Errorf("%w: unsupported dependency form %T", errRuntimeDependencyMissing, entry)
	}
}

func toAnySlice(values []string) []any {
	result := make([]any, 0, len(values))
	for _, v := range values {
		result = append(result, v)
	}

	return result
}
