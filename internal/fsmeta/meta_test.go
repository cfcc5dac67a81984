package fsmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLstat(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(file, make([]byte, 1500), 0o644))

	exe := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	t.Run("regular file", func(t *testing.T) {
		info, err := Lstat(file)
		require.NoError(t, err)
		assert.Equal(t, File, info.Kind)
		assert.Equal(t, uint64(1500), info.Size)
		assert.Equal(t, uint64(1500), info.Bytes(false))
		assert.Equal(t, info.Usage, info.Bytes(true))
		assert.False(t, info.IsDir())
	})

	t.Run("executable bits", func(t *testing.T) {
		info, err := Lstat(exe)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode&0o111)
	})

	t.Run("directory has no logical footprint", func(t *testing.T) {
		info, err := Lstat(sub)
		require.NoError(t, err)
		assert.Equal(t, Directory, info.Kind)
		assert.True(t, info.IsDir())
		assert.Zero(t, info.Footprint(false))
		assert.Equal(t, info.Usage, info.Footprint(true))
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Lstat(filepath.Join(dir, "nope"))
		assert.Error(t, err)
	})
}

func TestLstatSymlink(t *testing.T) {
	dir := t.TempDir()

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	link := filepath.Join(dir, "link")
	if err := os.Symlink(sub, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), dangling))

	info, err := Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, Symlink, info.Kind)
	assert.True(t, info.TargetExists)
	assert.True(t, info.TargetIsDir)
	assert.True(t, info.IsDir())
	assert.Equal(t, uint64(len(sub)), info.Size)

	info, err = Lstat(dangling)
	require.NoError(t, err)
	assert.Equal(t, Symlink, info.Kind)
	assert.False(t, info.TargetExists)
	assert.False(t, info.IsDir())
}
