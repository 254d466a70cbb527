package scratch

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_WritesUniqueFiles(t *testing.T) {
	dir, err := New(t.TempDir())
	require.NoError(t, err)

	first, err := dir.Create(strings.NewReader("one"), ".wav")
	require.NoError(t, err)
	second, err := dir.Create(strings.NewReader("two"), ".wav")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestRemove(t *testing.T) {
	dir, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := dir.Create(strings.NewReader("bytes"), ".wav")
	require.NoError(t, err)

	require.NoError(t, dir.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing twice is fine.
	assert.NoError(t, dir.Remove(path))
}
