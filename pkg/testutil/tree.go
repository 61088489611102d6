package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Tree describes files by slash-separated relative path. A path ending in
// "/" is an empty directory.
type Tree map[string]string

// WriteTree creates the files of tree under root
func WriteTree(t *testing.T, fs afero.Fs, root string, tree Tree) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(root, 0755))
	for rel, content := range tree {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fs.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, afero.WriteFile(fs, p, []byte(content), 0644))
	}
}

// ReadTree returns every file under root with its content. Empty
// directories appear with a trailing "/". A missing root yields an empty
// tree.
func ReadTree(t *testing.T, fs afero.Fs, root string) Tree {
	t.Helper()

	tree := Tree{}
	if _, err := fs.Stat(root); os.IsNotExist(err) {
		return tree
	}

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			entries, err := afero.ReadDir(fs, path)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				tree[rel+"/"] = ""
			}
			return nil
		}

		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		tree[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}
