package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_Exists(t *testing.T) {
	fsys := OSFileSystem{}

	assert.True(t, fsys.Exists("filesystem.go"))
	assert.False(t, fsys.Exists("nonexistent_file_xyz.go"))
}

func TestOSFileSystem_CreateAndRead(t *testing.T) {
	fsys := OSFileSystem{}
	dir := filepath.Join(t.TempDir(), "out", "nested")

	require.NoError(t, fsys.MkdirAll(dir, 0755))

	name := filepath.Join(dir, "canvas.png")
	w, err := fsys.Create(name)
	require.NoError(t, err)
	_, err = w.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := fsys.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))

	info, err := fsys.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, int64(len("png bytes")), info.Size())
}

func TestMemoryFileSystem_AddFileAndStat(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/app/images/a.png", []byte("abc"))

	info, err := mfs.Stat("/app/images/a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png", info.Name())
	assert.Equal(t, int64(3), info.Size())
	assert.False(t, info.IsDir())

	dir, err := mfs.Stat("/app/images")
	require.NoError(t, err)
	assert.True(t, dir.IsDir())

	assert.True(t, mfs.Exists("/app"))
	assert.Equal(t, 2, mfs.StatCalls())
}

func TestMemoryFileSystem_StatNonExistent(t *testing.T) {
	mfs := NewMemoryFileSystem()

	_, err := mfs.Stat("/nonexistent.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_FailStat(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/locked/a.png", nil)
	mfs.FailStat("/locked/a.png", fs.ErrPermission)

	_, err := mfs.Stat("/locked/a.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_CreateVisibleOnClose(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/out/01_canvas.png")
	require.NoError(t, err)
	_, err = w.Write([]byte("created content"))
	require.NoError(t, err)

	data, err := mfs.ReadFile("/out/01_canvas.png")
	require.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, w.Close())

	data, err = mfs.ReadFile("/out/01_canvas.png")
	require.NoError(t, err)
	assert.Equal(t, "created content", string(data))
	assert.True(t, mfs.Exists("/out"))
}

func TestMemoryFileSystem_MkdirAll(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.MkdirAll("/a/b/c", 0755))

	assert.True(t, mfs.Exists("/a/b/c"))
	assert.True(t, mfs.Exists("/a/b"))
	assert.True(t, mfs.Exists("/a"))

	mfs.AddFile("/a/b/y.png", nil)
	assert.True(t, mfs.Exists("/a/b/y.png"))
	assert.False(t, mfs.Exists("/a/x.png"))
}
