// Package hook runs the user-supplied before-build command through the
// platform shell, streaming its output live.
package hook
