package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/app.py", []byte("def foo():\n    pass\n"), 0644))

	got, err := NewReader(fs).Read("/src/app.py")
	require.NoError(t, err)
	assert.Equal(t, "def foo():\n    pass\n", got)
}

func TestReadNormalizesNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"lone cr", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
		{"plain", "a\nb", "a\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/f.txt", []byte(tt.input), 0644))

			got, err := NewReader(fs).Read("/f.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadNotFound(t *testing.T) {
	_, err := NewReader(afero.NewMemMapFs()).Read("/missing.py")
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrNotFound))

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, KindNotFound, readErr.Kind)
	assert.Equal(t, "/missing.py", readErr.Path)
	assert.Contains(t, err.Error(), "file not found")
}

func TestReadInvalidUTF8(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/blob.bin", []byte{0xff, 0xfe, 0x00, 0x81}, 0644))

	_, err := NewReader(fs).Read("/blob.bin")
	require.Error(t, err)

	assert.False(t, errors.Is(err, ErrNotFound))

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, KindIO, readErr.Kind)
	assert.Contains(t, err.Error(), "invalid UTF-8")
}

func TestReadDirectoryIsReadError(t *testing.T) {
	dir := t.TempDir()

	_, err := NewReader(afero.NewOsFs()).Read(dir)
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, KindIO, readErr.Kind)
}

func TestReadPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("hidden"), 0000))

	_, err := NewReader(afero.NewOsFs()).Read(path)
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, KindIO, readErr.Kind)
	assert.Contains(t, err.Error(), "error reading file")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "read_error", KindIO.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
