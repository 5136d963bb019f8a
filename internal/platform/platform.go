package platform

import "runtime"

// Policy captures the platform-dependent decisions of a build run.
type Policy interface {
	// ExecutableName appends the platform binary suffix to a base name.
	ExecutableName(base string) string
	// ShellCommand returns the shell executable and arguments that run the
	// given command string.
	ShellCommand(command string) (name string, args []string)
	// MergeModule reports the VC-runtime merge-module filename matching the
	// target architecture and the stale filename of the other architecture.
	// ok is false on platforms without merge modules.
	MergeModule() (fresh, stale string, ok bool)
}

// Merge-module filenames shipped for the two supported Windows architectures.
const (
	mergeModuleX86 = "Microsoft_VC142_CRT_x86.msm"
	mergeModuleX64 = "Microsoft_VC142_CRT_x64.msm"
)

// Host returns the policy for the machine the build runs on.
func Host() Policy {
	if runtime.GOOS == "windows" {
		return NewWindows(runtime.GOARCH)
	}

	return NewUnix()
}

// NewWindows returns the Windows policy for the given GOARCH value.
func NewWindows(arch string) Policy {
	return &windowsPolicy{arch: arch}
}

// NewUnix returns the policy shared by all non-Windows platforms.
func NewUnix() Policy {
	return unixPolicy{}
}

type windowsPolicy struct {
	arch string
}

func (windowsPolicy) ExecutableName(base string) string {
	return base + ".exe"
}

func (windowsPolicy) ShellCommand(command string) (string, []string) {
	return "cmd", []string{"/C", command}
}

func (p *windowsPolicy) MergeModule() (string, string, bool) {
	if p.arch == "386" {
		return mergeModuleX86, mergeModuleX64, true
	}

	return mergeModuleX64, mergeModuleX86, true
}

type unixPolicy struct{}

func (unixPolicy) ExecutableName(base string) string {
	return base
}

func (unixPolicy) ShellCommand(command string) (string, []string) {
	return "sh", []string{"-c", command}
}

func (unixPolicy) MergeModule() (string, string, bool) {
	return "", "", false
}
