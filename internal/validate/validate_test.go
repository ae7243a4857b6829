package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/moderntranslator/internal/store"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigMissingIsPending(t *testing.T) {
	result := Config(filepath.Join(t.TempDir(), "translator.yaml"))

	assert.True(t, result.OK())
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusPending, result.Items[0].Status)
}

func TestConfigInvalidColor(t *testing.T) {
	path := writeFile(t, "translator.yaml", "settings:\n  primary_color_id: magenta\n")

	result := Config(path)

	assert.False(t, result.OK())
	assert.Equal(t, StatusError, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Details, "magenta")
}

func TestConfigValid(t *testing.T) {
	path := writeFile(t, "translator.yaml", "settings:\n  primary_color_id: teal\nstore:\n  mode: production\n")

	result := Config(path)

	assert.True(t, result.OK())
	assert.Equal(t, StatusSuccess, result.Items[0].Status)
}

func TestEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "TRANSLATOR_APP_VERSION=7.1.0\nTRANSLATOR_STORE_MODE=staging\n")

	result := EnvFile(path)

	assert.False(t, result.OK())
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "staging")
}

func TestEnvFileMissing(t *testing.T) {
	result := EnvFile(filepath.Join(t.TempDir(), ".env"))

	assert.True(t, result.OK())
	assert.Equal(t, StatusPending, result.Items[0].Status)
}

func TestStoreSimulatorDefaults(t *testing.T) {
	result := Store(store.DefaultConfig())

	assert.True(t, result.OK())
	assert.Equal(t, "built-in defaults", result.Items[1].Details)
}

func TestStoreBadSimulatorFile(t *testing.T) {
	sim := writeFile(t, "sim.yaml", "products:\n  remove.ads.durable: refunded\n")
	cfg := store.DefaultConfig()
	cfg.Simulator = sim

	result := Store(cfg)

	assert.False(t, result.OK())
}

func TestStoreBridgeMissingCommand(t *testing.T) {
	cfg := store.DefaultConfig()
	cfg.Mode = string(store.ModeProduction)
	cfg.Bridge.Command = "translator-store-bridge-that-does-not-exist"
	cfg.Bridge.Args = []string{filepath.Join(t.TempDir(), "store-bridge.ps1")}

	result := Store(cfg)

	assert.True(t, result.OK())
	assert.Len(t, result.Warnings, 2)
}

func TestStringsComplete(t *testing.T) {
	result := Strings()

	assert.True(t, result.OK())
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Items, 4)
}
