package lock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireWritesPID(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hanpick.sock.lock")
	l, err := Acquire(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Release() })

	pid, err := Owner(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
	assert.True(t, Held(path))
}

func TestSecondAcquireFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hanpick.sock.lock")
	l1, err := Acquire(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l1.Release() })

	l2, err := Acquire(path)
	require.Error(t, err)
	assert.Nil(t, l2)
	assert.ErrorIs(t, err, ErrHeld)
	assert.Contains(t, err.Error(), "pid")
}

func TestReleaseAllowsReacquire(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "hanpick.sock.lock")
	l1, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, l1.Release())
	require.NoError(t, l1.Release())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.False(t, Held(path))

	l2, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, l2.Release())
}

func TestStaleLockFileIsTakenOver(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hanpick.sock.lock")
	require.NoError(t, os.WriteFile(path, []byte("999999\n"), 0o644))
	assert.False(t, Held(path))

	l, err := Acquire(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Release() })

	pid, err := Owner(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
}

func TestAcquireEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := Acquire("")
	assert.Error(t, err)
}

func TestOwnerWithoutPID(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "garbage.lock")
	require.NoError(t, os.WriteFile(path, []byte("not a pid"), 0o644))
	_, err := Owner(path)
	assert.Error(t, err)
}
