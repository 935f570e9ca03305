package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	existingFilePath := filepath.Join(tempDir, "existing-file.txt")
	if _, err := os.Create(existingFilePath); err != nil {
		t.Fatalf("Failed to create temporary file: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "FileExists",
			path:     existingFilePath,
			expected: true,
		},
		{
			name:     "FileDoesNotExist",
			path:     filepath.Join(tempDir, "non-existent-file.txt"),
			expected: false,
		},
		{
			name:     "DirectoryExists",
			path:     tempDir,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Exists(tt.path)
			if got != tt.expected {
				t.Errorf("Exists(%q) = %v; expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestMkdirAll(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	nested := filepath.Join(tempDir, "a", "b", "c")
	err := MkdirAll(nested)
	require.NoError(t, err)
	assert.True(t, Exists(nested))

	// creating an existing path is a no-op
	err = MkdirAll(nested)
	require.NoError(t, err)
}

func TestTouch(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	p := filepath.Join(tempDir, "new-file.txt")

	f, err := Touch(p, false)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.True(t, Exists(p))

	_, err = Touch(p, false)
	require.ErrorIs(t, err, ErrFileExists)

	f, err = Touch(p, true)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestRemove(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	p := filepath.Join(tempDir, "remove-me.txt")

	f, err := Touch(p, false)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, Remove(p))
	assert.False(t, Exists(p))

	err = Remove(p)
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestCopy(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src.txt")
	dst := filepath.Join(tempDir, "dst.txt")

	err := os.WriteFile(src, []byte("some content"), filePerm)
	require.NoError(t, err)

	require.NoError(t, Copy(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "some content", string(got))
}

func TestEnsureSuffix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		path     string
		suffix   string
		expected string
	}{
		{
			name:     "NoExtension",
			path:     "somefile",
			suffix:   ".db",
			expected: "somefile.db",
		},
		{
			name:     "AlreadyHasSuffix",
			path:     "somefile.db",
			suffix:   ".db",
			expected: "somefile.db",
		},
		{
			name:     "OtherExtensionKept",
			path:     "somefile.json",
			suffix:   ".db",
			expected: "somefile.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, EnsureSuffix(tt.path, tt.suffix))
		})
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	empty := filepath.Join(tempDir, "empty.txt")
	f, err := Touch(empty, false)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.True(t, Empty(empty))

	nonEmpty := filepath.Join(tempDir, "non-empty.txt")
	err = os.WriteFile(nonEmpty, []byte("data"), filePerm)
	require.NoError(t, err)
	assert.False(t, Empty(nonEmpty))
}

func TestYamlRoundTrip(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	p := filepath.Join(tempDir, "config.yml")

	type testCfg struct {
		Name  string `yaml:"name"`
		Count int    `yaml:"count"`
	}

	in := testCfg{Name: "pinb", Count: 3}
	require.NoError(t, YamlWrite(p, in, false))

	// refuses to overwrite without force
	err := YamlWrite(p, in, false)
	require.ErrorIs(t, err, ErrFileExists)
	require.NoError(t, YamlWrite(p, testCfg{Name: "pinb", Count: 4}, true))

	var out testCfg
	require.NoError(t, YamlRead(p, &out))
	assert.Equal(t, "pinb", out.Name)
	assert.Equal(t, 4, out.Count)
}

func TestYamlReadMissing(t *testing.T) {
	t.Parallel()
	var out struct{}
	err := YamlRead(filepath.Join(t.TempDir(), "nope.yml"), &out)
	require.ErrorIs(t, err, ErrFileNotFound)
}
