package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	fsys := NewMemory()
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, afero.WriteFile(fsys, "/src/d3d11.dll", []byte("binary"), 0755))
	require.NoError(t, fsys.Chtimes("/src/d3d11.dll", mtime, mtime))
	require.NoError(t, fsys.MkdirAll("/dst", 0755))

	require.NoError(t, CopyFile(fsys, "/src/d3d11.dll", "/dst/d3d11.dll"))

	data, err := afero.ReadFile(fsys, "/dst/d3d11.dll")
	require.NoError(t, err)
	assert.Equal(t, "binary", string(data))

	info, err := fsys.Stat("/dst/d3d11.dll")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(mtime), "modification time should be preserved")
}

func TestCopyFileOverwrites(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/src/enblocal.ini", []byte("new"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/dst/enblocal.ini", []byte("old and longer"), 0644))

	require.NoError(t, CopyFile(fsys, "/src/enblocal.ini", "/dst/enblocal.ini"))

	data, err := afero.ReadFile(fsys, "/dst/enblocal.ini")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyFileRejectsDirectory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/src/enbseries", 0755))

	err := CopyFile(fsys, "/src/enbseries", "/dst/enbseries")
	assert.Error(t, err)
}

func TestCopyTreeMerges(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/src/enbseries/effect.fx", []byte("fx"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/src/enbseries/nested/deep.txt", []byte("deep"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/dst/enbseries/keep.txt", []byte("keep"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/dst/enbseries/effect.fx", []byte("stale"), 0644))

	require.NoError(t, CopyTree(fsys, "/src/enbseries", "/dst/enbseries"))

	for path, want := range map[string]string{
		"/dst/enbseries/effect.fx":       "fx",
		"/dst/enbseries/nested/deep.txt": "deep",
		"/dst/enbseries/keep.txt":        "keep",
	} {
		data, err := afero.ReadFile(fsys, path)
		require.NoError(t, err, path)
		assert.Equal(t, want, string(data), path)
	}
}

func TestCopyDispatch(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/src/dxgi.dll", []byte("dll"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/src/shaders/a.fx", []byte("a"), 0644))
	require.NoError(t, fsys.MkdirAll("/dst", 0755))

	require.NoError(t, Copy(fsys, "/src/dxgi.dll", "/dst/dxgi.dll"))
	require.NoError(t, Copy(fsys, "/src/shaders", "/dst/shaders"))

	assert.True(t, IsDir(fsys, "/dst/shaders"))
	ok, err := Exists(fsys, "/dst/dxgi.dll")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemovePath(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/game/d3d11.dll", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/game/enbseries/a/b.txt", []byte("x"), 0644))

	t.Run("file", func(t *testing.T) {
		removed, err := RemovePath(fsys, "/game/d3d11.dll")
		require.NoError(t, err)
		assert.True(t, removed)
		ok, _ := Exists(fsys, "/game/d3d11.dll")
		assert.False(t, ok)
	})

	t.Run("directory", func(t *testing.T) {
		removed, err := RemovePath(fsys, "/game/enbseries")
		require.NoError(t, err)
		assert.True(t, removed)
		ok, _ := Exists(fsys, "/game/enbseries/a/b.txt")
		assert.False(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		removed, err := RemovePath(fsys, "/game/nothing")
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestRemovePathReadOnly(t *testing.T) {
	base := NewMemory()
	require.NoError(t, afero.WriteFile(base, "/game/d3d11.dll", []byte("x"), 0644))

	removed, err := RemovePath(afero.NewReadOnlyFs(base), "/game/d3d11.dll")
	assert.Error(t, err)
	assert.True(t, removed, "the path existed even though it could not be deleted")
}

func TestWriteFileAtomicOnDisk(t *testing.T) {
	fsys := NewOS()
	path := filepath.Join(t.TempDir(), "sub", "version.ini")

	require.NoError(t, WriteFileAtomic(fsys, path, []byte("first"), 0644))
	require.NoError(t, WriteFileAtomic(fsys, path, []byte("second"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should not be left behind")
}

func TestWriteFileAtomicReadOnly(t *testing.T) {
	fsys := afero.NewReadOnlyFs(NewMemory())
	err := WriteFileAtomic(fsys, "/x/version.ini", []byte("data"), 0644)
	assert.Error(t, err)
}

func TestChecksum(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a", []byte("Hello, World!\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/empty", nil, 0644))

	sum, err := Checksum(fs, "/a")
	require.NoError(t, err)
	assert.Len(t, sum, 71)
	assert.Equal(t, "sha256:c98c24b677eff44860afea6f493bbaec5bb1c4cbb209c6fc2bbb47f66ff2ad31", sum)

	sum, err = Checksum(fs, "/empty")
	require.NoError(t, err)
	assert.Equal(t, "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", sum)

	_, err = Checksum(fs, "/missing")
	assert.Error(t, err)
}

func TestSameContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a", []byte("abc"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/b", []byte("abc"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/c", []byte("abd"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/d", []byte("abcd"), 0644))
	require.NoError(t, fs.MkdirAll("/dir", 0755))

	for _, tt := range []struct {
		b    string
		want bool
	}{{"/b", true}, {"/c", false}, {"/d", false}, {"/dir", false}} {
		got, err := SameContent(fs, "/a", tt.b)
		require.NoError(t, err, tt.b)
		assert.Equal(t, tt.want, got, tt.b)
	}

	_, err := SameContent(fs, "/a", "/missing")
	assert.Error(t, err)
}
