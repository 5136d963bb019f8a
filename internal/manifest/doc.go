// Package manifest reads the native toolchain manifest (Cargo.toml) and
// normalizes it against the drydock configuration before a build: feature
// flags of the runtime dependency are derived from the configuration so the
// compiled shell matches what the bundler and updater expect.
package manifest
