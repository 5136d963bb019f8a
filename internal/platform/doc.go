// Package platform isolates the Windows/Unix differences the build pipeline
// cares about: executable naming, shell invocation and VC-runtime merge
// modules. The pipeline receives a Policy once at startup instead of
// branching on the operating system at every call site.
package platform
