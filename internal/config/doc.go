// Package config loads and validates drydock.yaml and exposes a
// lock-guarded snapshot of it to the build pipeline.
//
// The snapshot is read-mostly: stages take a short read lock to extract the
// fields they need and release it before spawning any external process.
package config
