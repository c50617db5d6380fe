package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsToLight(t *testing.T) {
	assert.Equal(t, Light, Load(filepath.Join(t.TempDir(), "yoq.json")))
}

func TestLoadIgnoresGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte("buzilgan"), 0644))

	assert.Equal(t, Light, Load(path))
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")

	require.NoError(t, Save(path, Dark))
	assert.Equal(t, Dark, Load(path))

	require.NoError(t, Save(path, Light))
	assert.Equal(t, Light, Load(path))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Toggle(Light))
	assert.Equal(t, Light, Toggle(Dark))
}
