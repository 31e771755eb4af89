package provision

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provision.sh")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	require.NoError(t, err)
	return path
}

func TestScriptProvisionerSuccess(t *testing.T) {
	p := &ScriptProvisioner{Path: writeScript(t, `echo "created $1"`)}

	result, err := p.Provision(context.Background(), "alice", "Secret1")
	require.NoError(t, err)
	require.True(t, result.Success())
	require.Equal(t, "created alice\n", string(result.Output))
}

func TestScriptProvisionerNonZeroExit(t *testing.T) {
	p := &ScriptProvisioner{Path: writeScript(t, `echo "no such user" >&2; exit 3`)}

	result, err := p.Provision(context.Background(), "alice", "Secret1")
	require.NoError(t, err)
	require.False(t, result.Success())
	require.Equal(t, 3, result.ExitCode)
	require.Contains(t, string(result.Output), "no such user")
}

func TestScriptProvisionerSpawnFailure(t *testing.T) {
	p := &ScriptProvisioner{Path: filepath.Join(t.TempDir(), "does-not-exist")}

	result, err := p.Provision(context.Background(), "alice", "Secret1")
	require.Error(t, err)
	require.False(t, result.Success())
	require.Equal(t, -1, result.ExitCode)
}

func TestScriptProvisionerTimeout(t *testing.T) {
	p := &ScriptProvisioner{
		Path:    writeScript(t, "exec sleep 60"),
		Timeout: 100 * time.Millisecond,
	}

	start := time.Now()
	result, err := p.Provision(context.Background(), "alice", "Secret1")
	require.Error(t, err)
	require.False(t, result.Success())
	require.Less(t, time.Since(start), 10*time.Second)
}
