package lastdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesPathAndNewline(t *testing.T) {
	file := filepath.Join(t.TempDir(), "home", ".mfmdir")

	require.NoError(t, Save(file, "/usr/local/share"))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/share\n", string(data))

	require.NoError(t, Save(file, "/"))
	got, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/", got)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrEmpty)
}
