package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/cstyle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Load(t *testing.T) {
	t.Run("loads lines with terminators and hash", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		path := filepath.Join(root, "main.c")
		content := "int main(void)\n{\n    return 0;\n}\n"
		writeTestFile(t, path, content)

		doc, err := adapter.Load(m.Path(path))
		require.NoError(t, err)

		assert.Equal(t, m.Path(path), doc.Path)
		assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256([]byte(content))), doc.Hash)
		assert.Equal(t, 4, doc.Len())
		assert.Equal(t, "{\n", doc.Line(2))
	})

	t.Run("missing file", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.Load(m.Path(filepath.Join(t.TempDir(), "missing.c")))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceNotFound)
		assert.Contains(t, err.Error(), "missing.c")
	})

	t.Run("directory", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.Load(m.Path(t.TempDir()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("empty file", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		path := filepath.Join(t.TempDir(), "empty.c")
		writeTestFile(t, path, "")

		doc, err := adapter.Load(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Len())
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.c")
	content := "int main(void) { return 0; }\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.c")
	content := []byte("int main(void) { return 0; }\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, expected, hash)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.c")
	writeTestFile(t, path, "int x;\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)

	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
