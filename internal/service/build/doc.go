// Package build is the release-build pipeline: load configuration, rewrite
// the manifest, run the before-build hook, compile, rename the binary to the
// product name, bundle, and sign updater artifacts.
//
// Stages run strictly in sequence; each failure is wrapped in a
// stage-identifying error type and aborts the run. Artifacts already written
// stay on disk — a failed run is reported as failed, never as partial
// success.
package build
