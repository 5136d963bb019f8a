// Package compiler invokes the native build toolchain and resolves the
// application settings — package metadata, output directory, binaries — that
// later stages derive from the manifest and configuration. Invocation only
// reports success or failure; locating the compiled binary is the resolver's
// job, because output placement depends on toolchain and profile conventions.
package compiler
