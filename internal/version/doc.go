// Package version exposes build metadata injected at link time and a cobra
// subcommand printing it.
package version
