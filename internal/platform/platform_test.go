package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExecutableName checks the binary suffix convention per platform.
func TestExecutableName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "app.exe", NewWindows("amd64").ExecutableName("app"))
	require.Equal(t, "app", NewUnix().ExecutableName("app"))
}

// TestShellCommand checks the shell wrapping per platform.
func TestShellCommand(t *testing.T) {
	t.Parallel()

	name, args := NewWindows("amd64").ShellCommand("npm run build")
	require.Equal(t, "cmd", name)
	require.Equal(t, []string{"/C", "npm run build"}, args)

	name, args = NewUnix().ShellCommand("npm run build")
	require.Equal(t, "sh", name)
	require.Equal(t, []string{"-c", "npm run build"}, args)
}

// TestMergeModule checks architecture-keyed merge-module selection.
func TestMergeModule(t *testing.T) {
	t.Parallel()

	fresh, stale, ok := NewWindows("386").MergeModule()
	require.True(t, ok)
	require.Equal(t, "Microsoft_VC142_CRT_x86.msm", fresh)
	require.Equal(t, "Microsoft_VC142_CRT_x64.msm", stale)

	fresh, stale, ok = NewWindows("amd64").MergeModule()
	require.True(t, ok)
	require.Equal(t, "Microsoft_VC142_CRT_x64.msm", fresh)
	require.Equal(t, "Microsoft_VC142_CRT_x86.msm", stale)

	_, _, ok = NewUnix().MergeModule()
	require.False(t, ok)
}
