package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/moderntranslator/internal/config"
	"github.com/iiroan/moderntranslator/internal/receipt"
	"github.com/iiroan/moderntranslator/internal/settings"
)

type harness struct {
	t       *testing.T
	dir     string
	cfgPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", config.EnvStoreMode, config.EnvPlatform} {
		t.Setenv(key, "")
	}
	t.Setenv("LANG", "en_US.UTF-8")

	dir := t.TempDir()
	return &harness{t: t, dir: dir, cfgPath: filepath.Join(dir, "translator.yaml")}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()

	cfgFile, platformName, assumeYes = "", "", false
	verbose, quiet, noColor = false, true, true

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(bytes.NewReader(nil))
	rootCmd.SetArgs(append([]string{
		"--config", h.cfgPath,
		"--env-file", filepath.Join(h.dir, "missing.env"),
		"--quiet",
		"--no-color",
	}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func (h *harness) saved() *config.Config {
	h.t.Helper()
	cfg, err := config.Load(h.cfgPath)
	require.NoError(h.t, err)
	return cfg
}

func (h *harness) write(name, content string) string {
	h.t.Helper()
	path := filepath.Join(h.dir, name)
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSettingsToggle(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("settings", "toggle", "darkMode")
	require.NoError(t, err)
	assert.Contains(t, out, "darkMode = true")
	assert.True(t, h.saved().Settings.DarkMode)

	_, err = h.run("settings", "toggle", "darkMode")
	require.NoError(t, err)
	assert.False(t, h.saved().Settings.DarkMode)
}

func TestSettingsToggleRejectsStringSetting(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("settings", "toggle", "primaryColorId")
	assert.ErrorIs(t, err, settings.ErrNotToggleable)
}

func TestSettingsSet(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("settings", "set", "primaryColorId", "teal")
	require.NoError(t, err)
	assert.Equal(t, "teal", h.saved().Settings.PrimaryColorID)

	_, err = h.run("settings", "set", "chinaMode", "true")
	require.NoError(t, err)
	assert.True(t, h.saved().Settings.ChinaMode)

	out, err := h.run("settings", "get", "primaryColorId")
	require.NoError(t, err)
	assert.Equal(t, "teal\n", out)
}

func TestSettingsSetRejectsBadValues(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("settings", "set", "primaryColorId", "magenta")
	assert.ErrorIs(t, err, settings.ErrInvalidValue)

	_, err = h.run("settings", "set", "darkMode", "yes")
	assert.ErrorIs(t, err, settings.ErrInvalidValue)

	_, err = h.run("settings", "get", "fontSize")
	assert.ErrorIs(t, err, settings.ErrUnknownSetting)
}

func TestSettingsSetRequiresValueWhenNotInteractive(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("settings", "set", "darkMode")
	assert.ErrorContains(t, err, "required in non-interactive mode")
}

func TestFirstRunDetectsDisplayLanguage(t *testing.T) {
	h := newHarness(t)
	t.Setenv("LANGUAGE", "ja_JP.UTF-8")

	out, err := h.run("settings", "get", "displayLanguage")
	require.NoError(t, err)
	assert.Equal(t, "ja\n", out)
}

func TestSavedDisplayLanguageWinsOverEnvironment(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("settings", "set", "displayLanguage", "vi")
	require.NoError(t, err)

	t.Setenv("LANGUAGE", "ja")
	out, err := h.run("settings", "get", "displayLanguage")
	require.NoError(t, err)
	assert.Equal(t, "vi\n", out)
}

func TestSettingsList(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("settings", "list")
	require.NoError(t, err)
	for _, name := range settings.Names() {
		assert.Contains(t, out, string(name)+":")
	}
}

func TestPlatformFlagIsNotSaved(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("--platform", "windows", "settings", "toggle", "realtime")
	require.NoError(t, err)

	saved := h.saved()
	assert.False(t, saved.Settings.Realtime)
	assert.Empty(t, saved.Platform)
}

func TestEnvStoreModeIsNotSaved(t *testing.T) {
	h := newHarness(t)
	t.Setenv(config.EnvStoreMode, "production")

	_, err := h.run("settings", "toggle", "realtime")
	require.NoError(t, err)

	saved := h.saved()
	assert.False(t, saved.Settings.Realtime)
	assert.Equal(t, "simulated", saved.Store.Mode)
}

func TestUnreadableConfigIsNotOverwritten(t *testing.T) {
	h := newHarness(t)
	broken := "settings:\n  primary_color_id: teal\n  dark_mode: [oops\n"
	h.write("translator.yaml", broken)

	out, err := h.run("settings", "toggle", "realtime")
	require.NoError(t, err)
	assert.Contains(t, out, "realtime = false")

	data, err := os.ReadFile(h.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, broken, string(data))

	out, err = h.run("doctor")
	assert.ErrorContains(t, err, "doctor found")
	assert.Contains(t, out, "Configuration")
}

func TestAdsRemove(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("--platform", "windows", "ads", "remove", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Activated")
	assert.False(t, h.saved().Ad.ShouldShowAd)

	out, err = h.run("--platform", "windows", "ads", "status")
	require.NoError(t, err)
	assert.Regexp(t, `Ads shown:\s+no`, out)
}

func TestAdsRemoveNeedsWindowsStore(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("--platform", "electron", "ads", "remove", "--yes")
	assert.ErrorContains(t, err, "Windows only")
}

func TestAdsRemoveDeclined(t *testing.T) {
	h := newHarness(t)
	sim := h.write("sim.yaml", "products:\n  remove.ads.durable: notPurchased\n")
	h.write("translator.yaml", "store:\n  mode: simulated\n  simulator: "+sim+"\n")

	out, err := h.run("--platform", "windows", "ads", "remove", "--yes")
	assert.ErrorContains(t, err, "notPurchased")
	assert.Contains(t, out, "Something went wrong")
}

func TestAdsRestoreNotQualified(t *testing.T) {
	h := newHarness(t)
	sim := h.write("sim.yaml", "receipt:\n  purchase_date: \"2018-01-01T00:00:00Z\"\n")
	h.write("translator.yaml", "store:\n  mode: simulated\n  simulator: "+sim+"\n")

	out, err := h.run("--platform", "windows", "ads", "restore", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "qualif")
	assert.True(t, h.saved().Ad.ShouldShowAd)
}

func TestAdsRestoreEarlyBuyer(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("--platform", "windows", "ads", "restore", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Activated")
	assert.False(t, h.saved().Ad.ShouldShowAd)
}

func TestReceiptCheck(t *testing.T) {
	h := newHarness(t)
	atCutoff := h.write("cutoff.xml", receipt.Build("app", "Full", receipt.Cutoff))
	late := h.write("late.xml", receipt.Build("app", "Full", receipt.Cutoff.Add(time.Microsecond)))
	broken := h.write("broken.xml", "<Receipt>")

	out, err := h.run("receipt", "check", atCutoff)
	require.NoError(t, err)
	assert.Contains(t, out, "eligible")
	assert.NotContains(t, out, "not-eligible")

	out, err = h.run("receipt", "check", late)
	require.NoError(t, err)
	assert.Contains(t, out, "not-eligible")

	_, err = h.run("receipt", "check", broken)
	assert.ErrorIs(t, err, receipt.ErrMalformedReceipt)

	undated := h.write("undated.xml", `<Receipt><AppReceipt AppId="app" PurchaseDate="not-a-date"/></Receipt>`)
	out, err = h.run("receipt", "check", undated)
	require.NoError(t, err)
	assert.Regexp(t, `Purchased:\s+unreadable`, out)
	assert.Contains(t, out, "not-eligible")
}

func TestRootPrintsRowsWhenNotInteractive(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("--platform", "electron")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "Mac App Store")
	assert.NotContains(t, out, "Remove ads")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	t.Setenv("TRANSLATOR_APP_VERSION", "7.1.0")

	out, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    7.1.0")
}

func TestDoctor(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration")
	assert.Contains(t, out, "built-in defaults")
}

func TestDoctorReportsBadSimulator(t *testing.T) {
	h := newHarness(t)
	sim := h.write("sim.yaml", "latency: soon\n")
	h.write("translator.yaml", "store:\n  mode: simulated\n  simulator: "+sim+"\n")

	_, err := h.run("doctor")
	assert.ErrorContains(t, err, "doctor found")
}
