// Package signer signs updater artifacts. Credentials come from process
// environment variables; the signature file is written next to the artifact.
// The signature scheme itself is owned by the updater toolchain — this
// package is only the adapter the pipeline invokes per artifact.
package signer
