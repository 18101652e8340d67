package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platform "github.com/beaconlabs/beacon/internal/platform/config"
)

func validSource(overrides map[string]string) platform.Source {
	m := map[string]string{
		"API_URL": "https://api.example.com",
		"PORT":    "3000",
	}
	for k, v := range overrides {
		m[k] = v
	}
	return platform.Map(m)
}

func TestLoadFrom_BindsTypedFields(t *testing.T) {
	cfg, err := LoadFrom(platform.Development, validSource(map[string]string{
		"LOG_LEVEL":     "debug",
		"LOG_FORMAT":    "json",
		"DEBUG":         "true",
		"ANALYTICS_KEY": "key-123",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "key-123", cfg.AnalyticsKey)
	assert.Equal(t, platform.Development, cfg.Variant)
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(platform.Production, validSource(nil))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "", cfg.AnalyticsKey)
}

func TestLoadFrom_PortDefault(t *testing.T) {
	cfg, err := LoadFrom(platform.Development, platform.Map(map[string]string{
		"API_URL": "https://api.example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadFrom_MissingRequired(t *testing.T) {
	_, err := LoadFrom(platform.Development, platform.Map(map[string]string{
		"PORT": "3000",
	}))

	var verrs platform.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "API_URL", verrs[0].Name)
	assert.Equal(t, platform.ReasonMissing, verrs[0].Reason)
}

func TestLoadFrom_AttachesStaticBundle(t *testing.T) {
	cfg, err := LoadFrom(platform.Staging, validSource(nil))
	require.NoError(t, err)

	assert.Equal(t, "Beacon", cfg.Static.AppName)
	assert.Equal(t, "com.beaconlabs.beacon.staging", cfg.Static.BundleID)
}

func TestLoad_ProcessEnvironmentOnly(t *testing.T) {
	// Selector unset, no .env.development on disk: the loader proceeds with
	// the real process environment and the development static bundle.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("APP_ENV", "")
	t.Setenv("API_URL", "https://env.example.com")
	t.Setenv("PORT", "4000")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("DEBUG", "")
	t.Setenv("ANALYTICS_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, platform.Development, cfg.Variant)
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "com.beaconlabs.beacon.dev", cfg.Static.BundleID)
}

func TestLoad_FileValuesOverriddenByProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := "API_URL=https://file.example.com\nPORT=9000\n"
	require.NoError(t, os.WriteFile(dir+"/.env.development", []byte(content), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("APP_ENV", "development")
	t.Setenv("API_URL", "https://env.example.com")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("DEBUG", "")
	t.Setenv("ANALYTICS_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	// Process environment wins; untouched file values still apply.
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoad_UnknownSelectorIsFatal(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("APP_ENV", "qa")

	_, err = Load()

	var verrs platform.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, platform.SelectorVar, verrs[0].Name)
	assert.Equal(t, platform.ReasonNotInEnum, verrs[0].Reason)
}

func TestConfig_Redacted(t *testing.T) {
	cfg, err := LoadFrom(platform.Development, validSource(map[string]string{
		"ANALYTICS_KEY": "super-secret",
	}))
	require.NoError(t, err)

	redacted := cfg.Redacted()

	assert.Equal(t, "https://api.example.com", redacted["API_URL"])
	assert.Equal(t, "3000", redacted["PORT"])
	assert.Equal(t, "*****", redacted["ANALYTICS_KEY"])
	assert.Equal(t, "development", redacted["APP_ENV"])
	assert.NotContains(t, redacted["ANALYTICS_KEY"], "super-secret")
}

func TestConfig_ValueSemantics(t *testing.T) {
	cfg, err := LoadFrom(platform.Development, validSource(nil))
	require.NoError(t, err)

	// A consumer mutating its copy never affects another copy.
	mutated := cfg
	mutated.Port = 1
	assert.Equal(t, 3000, cfg.Port)
}

func TestKeys_CoversDeclaredVariables(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "API_URL")
	assert.Contains(t, keys, "PORT")
	assert.Contains(t, keys, "LOG_LEVEL")
	assert.Contains(t, keys, "LOG_FORMAT")
	assert.Contains(t, keys, "DEBUG")
	assert.Contains(t, keys, "ANALYTICS_KEY")
}
