package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "gridview.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.Data)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridview.yaml")
	content := "addr: \":9090\"\ndata: initiatives.csv\npalette:\n  - \"#111111\"\n  - \"#222222\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "initiatives.csv", cfg.Data)
	assert.Equal(t, []string{"#111111", "#222222"}, cfg.Palette)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridview.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"addr":":7070"}`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}
