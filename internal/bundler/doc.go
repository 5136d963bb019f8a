// Package bundler adapts the build pipeline to the external packaging
// engine. It owns the closed package-type enumeration, the settings object
// handed to the engine, and the Windows merge-module staging performed right
// before the engine runs. The engine itself — the code that turns a binary
// plus metadata into an installer — is an external collaborator reached
// through the Engine interface.
package bundler
