// pkg/filesystem/write_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero memory filesystem
// PURPOSE: Test conditional file writes

package filesystem

import (
	"testing"

	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		in      string
		want    Condition
		wantErr bool
	}{
		{"changed", WriteIfChanged, false},
		{"", WriteIfChanged, false},
		{"Missing", WriteIfMissing, false},
		{" always ", WriteAlways, false},
		{"sometimes", WriteIfChanged, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCondition(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Condition {
	t.Helper()
	c, err := ParseCondition(s)
	require.NoError(t, err)
	return c
}

func TestWriteFileCreatesParents(t *testing.T) {
	fsys := NewMemory()

	wrote, err := WriteFile(fsys, "/out/nested/file.txt", []byte("hello"), 0644, WriteIfChanged)
	require.NoError(t, err)
	assert.True(t, wrote)

	content, err := fsys.ReadFile("/out/nested/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	_, err = fsys.Stat("/out/nested/file.txt.tmp")
	assert.Error(t, err, "temporary file should be gone")
}

func TestWriteFileIfChanged(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/out", 0755))
	require.NoError(t, fsys.WriteFile("/out/a.txt", []byte("same"), 0644))

	wrote, err := WriteFile(fsys, "/out/a.txt", []byte("same"), 0644, WriteIfChanged)
	require.NoError(t, err)
	assert.False(t, wrote, "identical content must not be rewritten")

	wrote, err = WriteFile(fsys, "/out/a.txt", []byte("different"), 0644, WriteIfChanged)
	require.NoError(t, err)
	assert.True(t, wrote)

	content, err := fsys.ReadFile("/out/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "different", string(content))
}

func TestWriteFileIfMissing(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/out", 0755))
	require.NoError(t, fsys.WriteFile("/out/a.txt", []byte("original"), 0644))

	wrote, err := WriteFile(fsys, "/out/a.txt", []byte("replacement"), 0644, WriteIfMissing)
	require.NoError(t, err)
	assert.False(t, wrote)

	content, err := fsys.ReadFile("/out/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))

	wrote, err = WriteFile(fsys, "/out/b.txt", []byte("new"), 0644, WriteIfMissing)
	require.NoError(t, err)
	assert.True(t, wrote)
}

func TestWriteFileAlways(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/out", 0755))
	require.NoError(t, fsys.WriteFile("/out/a.txt", []byte("same"), 0644))

	wrote, err := WriteFile(fsys, "/out/a.txt", []byte("same"), 0644, WriteAlways)
	require.NoError(t, err)
	assert.True(t, wrote)
}

func TestWriteFileOntoDirectory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/out/dir", 0755))

	wrote, err := WriteFile(fsys, "/out/dir", []byte("x"), 0644, WriteAlways)
	assert.False(t, wrote)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, "/out/dir", errors.GetErrorDetails(err)["path"])
}

func TestWriteFileOS(t *testing.T) {
	fsys := NewOS()
	path := t.TempDir() + "/sub/config.json"

	wrote, err := WriteFile(fsys, path, []byte("{}\n"), 0600, WriteIfChanged)
	require.NoError(t, err)
	assert.True(t, wrote)

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())

	wrote, err = WriteFile(fsys, path, []byte("{}\n"), 0600, WriteIfChanged)
	require.NoError(t, err)
	assert.False(t, wrote)
}
