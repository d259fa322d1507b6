package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	_, vr := NormalizeAndValidate(Default())
	assert.True(t, vr.OK(), "errors: %v", vr.Errors)
	assert.Empty(t, vr.Warnings)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, SaveAtomic(path, Default()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.App.Port = -1
	err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.port")
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	first := Default()
	require.NoError(t, SaveAtomic(path, first))

	second := Default()
	second.App.Port = 6000
	require.NoError(t, SaveAtomic(path, second))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6000, got.App.Port)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, first.App.Port, bak.App.Port)
}

func TestEnsureUserConfigSeedsFromBuiltin(t *testing.T) {
	dir := t.TempDir()
	path, err := EnsureUserConfig(dir, filepath.Join(dir, "no-such-default.yml"))
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestEnsureUserConfigCopiesShippedDefault(t *testing.T) {
	dir := t.TempDir()
	shipped := filepath.Join(dir, "shipped.yml")
	cfg := Default()
	cfg.App.Port = 7777
	require.NoError(t, SaveAtomic(shipped, cfg))

	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	path, err := EnsureUserConfig(dataDir, shipped)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7777, got.App.Port)
}

func TestEnsureUserConfigKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "config.yml")
	cfg := Default()
	cfg.App.Port = 8888
	require.NoError(t, SaveAtomic(existing, cfg))

	path, err := EnsureUserConfig(dir, "ignored.yml")
	require.NoError(t, err)
	assert.Equal(t, existing, path)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8888, got.App.Port)
}
